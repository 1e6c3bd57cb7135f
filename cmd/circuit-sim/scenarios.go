package main

import (
	"fmt"

	"github.com/manuelmaiorano/circuit-simulator/pkg/circuit"
	"github.com/manuelmaiorano/circuit-simulator/pkg/component"
)

// scenario is one of the canonical demonstration circuits, used to
// exercise the simulator end to end without a graphical editor.
type scenario struct {
	name          string
	describe      string
	duration      float64
	timestep      float64
	probeNode     int // node whose voltage is the scenario's headline result
	build         func() (*circuit.Circuit, error)
}

func scenarios() []scenario {
	return []scenario{
		{
			name:      "current-divider",
			describe:  "current source feeding a resistive divider",
			duration:  1.0,
			timestep:  0.5,
			probeNode: 2,
			build:     buildCurrentDivider,
		},
		{
			name:      "voltage-divider",
			describe:  "DC voltage source feeding a resistive divider",
			duration:  1.0,
			timestep:  0.5,
			probeNode: 2,
			build:     buildVoltageDivider,
		},
		{
			name:      "rc-charging",
			describe:  "capacitor charging through a series resistor",
			duration:  1.0,
			timestep:  0.005,
			probeNode: 2,
			build:     buildRCCharging,
		},
		{
			name:      "half-wave-rectifier",
			describe:  "sinusoidal source through a diode into a load resistor",
			duration:  2.0,
			timestep:  0.01,
			probeNode: 2,
			build:     buildHalfWaveRectifier,
		},
		{
			name:      "lr-decay",
			describe:  "inductor current decaying through a series resistor",
			duration:  0.01,
			timestep:  1e-5,
			probeNode: 1,
			build:     buildLRDecay,
		},
	}
}

func buildCurrentDivider() (*circuit.Circuit, error) {
	ckt := circuit.New(0)

	if err := ckt.AddElement(component.NewCurrentSource("I1", 0, 1, 1.0)); err != nil {
		return nil, err
	}
	r1, err := component.NewResistor("R1", 1, 2, 0.1)
	if err != nil {
		return nil, err
	}
	if err := ckt.AddElement(r1); err != nil {
		return nil, err
	}
	r2, err := component.NewResistor("R2", 2, 0, 0.2)
	if err != nil {
		return nil, err
	}
	if err := ckt.AddElement(r2); err != nil {
		return nil, err
	}
	r3, err := component.NewResistor("R3", 2, 0, 0.2)
	if err != nil {
		return nil, err
	}
	if err := ckt.AddElement(r3); err != nil {
		return nil, err
	}

	return ckt, nil
}

func buildVoltageDivider() (*circuit.Circuit, error) {
	ckt := circuit.New(0)

	if err := ckt.AddElement(component.NewVoltageSource("V1", 1, 0, 10.0)); err != nil {
		return nil, err
	}
	r1, err := component.NewResistor("R1", 1, 2, 10.0)
	if err != nil {
		return nil, err
	}
	if err := ckt.AddElement(r1); err != nil {
		return nil, err
	}
	r2, err := component.NewResistor("R2", 2, 0, 10.0)
	if err != nil {
		return nil, err
	}
	if err := ckt.AddElement(r2); err != nil {
		return nil, err
	}

	return ckt, nil
}

func buildRCCharging() (*circuit.Circuit, error) {
	ckt := circuit.New(0)

	if err := ckt.AddElement(component.NewVoltageSource("V1", 1, 0, 10.0)); err != nil {
		return nil, err
	}
	r1, err := component.NewResistor("R1", 2, 1, 5000.0)
	if err != nil {
		return nil, err
	}
	if err := ckt.AddElement(r1); err != nil {
		return nil, err
	}
	c1, err := component.NewCapacitor("C1", 2, 0, 2e-5, 0.0)
	if err != nil {
		return nil, err
	}
	if err := ckt.AddElement(c1); err != nil {
		return nil, err
	}

	return ckt, nil
}

func buildHalfWaveRectifier() (*circuit.Circuit, error) {
	ckt := circuit.New(0)

	if err := ckt.AddElement(component.NewSinVoltageSource("V1", 1, 0, 10.0, 1.0)); err != nil {
		return nil, err
	}
	d1, err := component.NewDiode("D1", 1, 2, 1e-15, 0.026, 0.9, 1.08)
	if err != nil {
		return nil, err
	}
	if err := ckt.AddElement(d1); err != nil {
		return nil, err
	}
	r1, err := component.NewResistor("R1", 2, 0, 10.0)
	if err != nil {
		return nil, err
	}
	if err := ckt.AddElement(r1); err != nil {
		return nil, err
	}

	return ckt, nil
}

func buildLRDecay() (*circuit.Circuit, error) {
	ckt := circuit.New(0)

	l1, err := component.NewInductor("L1", 1, 0, 1e-3, 1.0)
	if err != nil {
		return nil, err
	}
	if err := ckt.AddElement(l1); err != nil {
		return nil, err
	}
	r1, err := component.NewResistor("R1", 1, 0, 1.0)
	if err != nil {
		return nil, err
	}
	if err := ckt.AddElement(r1); err != nil {
		return nil, err
	}

	return ckt, nil
}

func findScenario(name string) (scenario, error) {
	for _, s := range scenarios() {
		if s.name == name {
			return s, nil
		}
	}
	return scenario{}, fmt.Errorf("unknown scenario %q", name)
}
