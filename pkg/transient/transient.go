// Package transient implements the nonlinear (Newton) solver and the
// fixed-timestep transient driver, plus the simulation output container.
package transient

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/manuelmaiorano/circuit-simulator/pkg/circuit"
	"github.com/manuelmaiorano/circuit-simulator/pkg/linsolve"
	"github.com/manuelmaiorano/circuit-simulator/pkg/mna"
)

// Simulate walks time in nSteps = floor(tSim/dt) fixed steps, invoking the
// Newton solver at each step, recording outputs, and updating dynamic
// element state, in that order: recording before the state update is a
// correctness requirement, not an optimization. On a per-step failure
// (SingularSystem or NumericDivergence) it returns the output recorded up
// to the last successfully completed step alongside the error.
func Simulate(ckt *circuit.Circuit, solver linsolve.Solver, tSim, dt float64, log zerolog.Logger) (*Output, error) {
	if solver == nil {
		solver = linsolve.LUSolver{}
	}

	nSteps := int(tSim / dt)

	elementNames := ckt.ElementNames()
	nodeIDs := make([]int, 0)
	seen := make(map[int]struct{})
	for _, name := range elementNames {
		el := ckt.Element(name)
		for _, n := range [2]int{el.Anode(), el.Cathode()} {
			if _, ok := seen[n]; !ok {
				seen[n] = struct{}{}
				nodeIDs = append(nodeIDs, n)
			}
		}
	}

	out := newOutput(elementNames, nodeIDs, nSteps)

	n := ckt.NumNodes()
	auxIdx := ckt.VoltageAuxIndices()
	m := len(auxIdx)
	sys := mna.NewSystem(n, m)
	ground := ckt.Ground()

	log.Debug().Int("n_steps", nSteps).Int("nodes", n).Int("aux", m).Msg("transient simulation starting")

	for step := 0; step < nSteps; step++ {
		t := float64(step) * dt

		x, err := newtonSolve(ckt, sys, solver, auxIdx, dt, t, log)
		if err != nil {
			log.Error().Err(err).Float64("t", t).Msg("step failed")
			return out, fmt.Errorf("transient step at t=%g: %w", t, err)
		}

		for _, name := range elementNames {
			el := ckt.Element(name)
			if k, ok := auxIdx[name]; ok {
				out.Currents[name][step] = x[k]
				continue
			}
			comp := el.Companion(dt, t)
			out.Currents[name][step] = comp.G*(x[el.Anode()]-x[el.Cathode()]) + comp.I
		}

		for _, nodeID := range nodeIDs {
			out.Voltages[nodeID][step] = x[nodeID] - x[ground]
		}

		for _, name := range ckt.DynamicNames() {
			el := ckt.Element(name)
			el.UpdateState(x[el.Anode()], x[el.Cathode()], dt)
		}
	}

	return out, nil
}
