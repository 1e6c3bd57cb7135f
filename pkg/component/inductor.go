package component

import "fmt"

// Inductor is a dynamic element integrated with Backward-Euler:
//
//	companion(g = dt/L, i = -iLast)
//	post-step: iLast <- iLast + (vAnode - vCathode)*dt/L
type Inductor struct {
	base
	L     float64
	iLast float64
}

// NewInductor builds an inductor. L must be strictly positive. iInit is the
// initial branch current (anode to cathode) at t=0.
func NewInductor(name string, anode, cathode int, l, iInit float64) (*Inductor, error) {
	if l <= 0 {
		return nil, fmt.Errorf("inductor %s: L=%g: %w", name, l, ErrInvalidParameter)
	}
	return &Inductor{base: newBase(name, anode, cathode), L: l, iLast: iInit}, nil
}

func (l *Inductor) IsDynamic() bool { return true }

func (l *Inductor) Companion(dt, t float64) Companion {
	return ConductanceCurrentOf(dt/l.L, -l.iLast)
}

func (l *Inductor) UpdateState(vAnode, vCathode, dt float64) {
	l.iLast = l.iLast + (vAnode-vCathode)*dt/l.L
}
