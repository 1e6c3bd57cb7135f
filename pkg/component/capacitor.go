package component

import "fmt"

// Capacitor is a dynamic element integrated with Backward-Euler:
//
//	companion(g = C/dt, i = -vLast*C/dt)
//	post-step: vLast <- vAnode - vCathode
type Capacitor struct {
	base
	C     float64
	vLast float64
}

// NewCapacitor builds a capacitor. C must be strictly positive. vInit is
// the initial terminal voltage (anode - cathode) at t=0.
func NewCapacitor(name string, anode, cathode int, c, vInit float64) (*Capacitor, error) {
	if c <= 0 {
		return nil, fmt.Errorf("capacitor %s: C=%g: %w", name, c, ErrInvalidParameter)
	}
	return &Capacitor{base: newBase(name, anode, cathode), C: c, vLast: vInit}, nil
}

func (c *Capacitor) IsDynamic() bool { return true }

func (c *Capacitor) Companion(dt, t float64) Companion {
	g := c.C / dt
	return ConductanceCurrentOf(g, -c.vLast*g)
}

func (c *Capacitor) UpdateState(vAnode, vCathode, dt float64) {
	c.vLast = vAnode - vCathode
}
