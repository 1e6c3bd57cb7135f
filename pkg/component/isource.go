package component

// CurrentSource is an independent DC current source: companion(g=0, i=I).
type CurrentSource struct {
	base
	I float64
}

// NewCurrentSource builds an independent current source of value i amps,
// flowing through the source from anode to cathode, so a positive i is
// delivered into the cathode node.
func NewCurrentSource(name string, anode, cathode int, i float64) *CurrentSource {
	return &CurrentSource{base: newBase(name, anode, cathode), I: i}
}

func (c *CurrentSource) Companion(dt, t float64) Companion {
	return ConductanceCurrentOf(0, c.I)
}
