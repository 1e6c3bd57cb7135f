package transient

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/manuelmaiorano/circuit-simulator/pkg/circuit"
	"github.com/manuelmaiorano/circuit-simulator/pkg/linsolve"
	"github.com/manuelmaiorano/circuit-simulator/pkg/mna"
)

// newtonSolve resolves one timestep: resets every nonlinear element's
// operating point, then repeats assemble-and-solve a fixed number of
// times (30 if any nonlinear element is present, else 1), updating
// operating points between iterations. The fixed iteration cap is
// deliberate, with no convergence-tolerance tuning.
func newtonSolve(ckt *circuit.Circuit, sys *mna.System, solver linsolve.Solver, auxIdx map[string]int, dt, t float64, log zerolog.Logger) ([]float64, error) {
	for _, name := range ckt.NonlinearNames() {
		ckt.Element(name).ResetOperatingPoint()
	}

	iterations := 1
	if len(ckt.NonlinearNames()) > 0 {
		iterations = 30
	}

	var x []float64
	for iter := 0; iter < iterations; iter++ {
		sys.Reset()

		for _, name := range ckt.ElementNames() {
			el := ckt.Element(name)
			aux := -1
			if k, ok := auxIdx[name]; ok {
				aux = k
			}
			sys.Stamp(el, aux, dt, t)
		}

		solved, err := solver.Solve(sys.A, sys.B)
		if err != nil {
			return nil, fmt.Errorf("t=%g iter=%d: %w", t, iter, err)
		}
		if hasNonFinite(solved) {
			return nil, fmt.Errorf("t=%g iter=%d: %w", t, iter, ErrNumericDivergence)
		}
		x = solved

		for _, name := range ckt.NonlinearNames() {
			el := ckt.Element(name)
			el.UpdateOperatingPoint(x[el.Anode()], x[el.Cathode()])
		}

		log.Debug().Float64("t", t).Int("iter", iter).Msg("newton iteration")
	}

	return x, nil
}
