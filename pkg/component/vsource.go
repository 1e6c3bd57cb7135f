package component

import "math"

// VoltageSource is an ideal voltage source, DC or sinusoidal:
//
//	DC:  companion(V)
//	SIN: companion(A*sin(2*pi*f*t))
//
// Voltage sources are always voltage-defined (require an auxiliary current
// unknown in the MNA system).
type VoltageSource struct {
	base
	v    float64 // DC value, or offset for a SIN source
	amp  float64 // SIN amplitude; zero for a pure DC source
	freq float64 // SIN frequency in Hz
}

// NewVoltageSource builds a DC voltage source of value v volts.
func NewVoltageSource(name string, anode, cathode int, v float64) *VoltageSource {
	return &VoltageSource{base: newBase(name, anode, cathode), v: v}
}

// NewSinVoltageSource builds a sinusoidal voltage source: v(t) = A*sin(2*pi*f*t).
func NewSinVoltageSource(name string, anode, cathode int, amplitude, freqHz float64) *VoltageSource {
	return &VoltageSource{base: newBase(name, anode, cathode), amp: amplitude, freq: freqHz}
}

func (v *VoltageSource) Companion(dt, t float64) Companion {
	return VoltageOf(v.v + v.amp*math.Sin(2*math.Pi*v.freq*t))
}
