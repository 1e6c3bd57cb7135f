package component

import (
	"fmt"
	"math"
)

// Diode warm-start: the linearization point the diode resets to at the
// start of every timestep, before Newton iteration begins. Reflects
// typical forward-biased operation; a zero warm-start would need
// substantially more Newton iterations in the worst case.
const (
	diodeWarmStartV = 0.9
	diodeWarmStartI = 1.08
)

// Diode is an exponential large-signal diode, linearized per Newton
// iteration about an operating point (v*, i*):
//
//	companion: g = (Is/Vt)*exp(v*/Vt); i = i* - g*v*
//
// The operating point is updated with the large-signal (Newton-consistent)
// form, not the incremental one.
type Diode struct {
	base
	Is float64
	Vt float64

	vOp float64
	iOp float64
}

// NewDiode builds a diode. Is and Vt must be strictly positive. vInit and
// iInit seed the operating point before the first timestep; every
// timestep after that, including the first, ResetOperatingPoint
// overwrites it with the fixed warm start above, per the formula table.
func NewDiode(name string, anode, cathode int, is, vt, vInit, iInit float64) (*Diode, error) {
	if is <= 0 {
		return nil, fmt.Errorf("diode %s: Is=%g: %w", name, is, ErrInvalidParameter)
	}
	if vt <= 0 {
		return nil, fmt.Errorf("diode %s: Vt=%g: %w", name, vt, ErrInvalidParameter)
	}
	return &Diode{
		base: newBase(name, anode, cathode),
		Is:   is, Vt: vt,
		vOp: vInit, iOp: iInit,
	}, nil
}

func (d *Diode) IsNonlinear() bool { return true }

func (d *Diode) Companion(dt, t float64) Companion {
	g := (d.Is / d.Vt) * math.Exp(d.vOp/d.Vt)
	return ConductanceCurrentOf(g, d.iOp-g*d.vOp)
}

func (d *Diode) UpdateOperatingPoint(vAnode, vCathode float64) {
	d.vOp = vAnode - vCathode
	d.iOp = d.Is * (math.Exp(d.vOp/d.Vt) - 1)
}

func (d *Diode) ResetOperatingPoint() {
	d.vOp = diodeWarmStartV
	d.iOp = diodeWarmStartI
}
