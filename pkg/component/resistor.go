package component

import "fmt"

// Resistor is a linear, non-dynamic element: companion(g=1/R, i=0) at every
// (dt, t).
type Resistor struct {
	base
	R float64
}

// NewResistor builds a resistor. R must be strictly positive.
func NewResistor(name string, anode, cathode int, r float64) (*Resistor, error) {
	if r <= 0 {
		return nil, fmt.Errorf("resistor %s: R=%g: %w", name, r, ErrInvalidParameter)
	}
	return &Resistor{base: newBase(name, anode, cathode), R: r}, nil
}

func (r *Resistor) Companion(dt, t float64) Companion {
	return ConductanceCurrentOf(1.0/r.R, 0)
}
