// Package linsolve is the dense linear-system solver collaborator: a
// swappable interface over gonum's LU-based solve, kept external to the
// assembler and the transient driver.
package linsolve

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrSingularSystem is returned when the assembled A matrix cannot be
// factored.
var ErrSingularSystem = errors.New("singular system")

// Solver solves A*x = b for x.
type Solver interface {
	Solve(a *mat.Dense, b []float64) ([]float64, error)
}

// LUSolver solves via gonum's dense LU decomposition with partial
// pivoting.
type LUSolver struct{}

func (LUSolver) Solve(a *mat.Dense, b []float64) ([]float64, error) {
	n, _ := a.Dims()
	bVec := mat.NewVecDense(n, b)
	xVec := mat.NewVecDense(n, nil)

	if err := xVec.SolveVec(a, bVec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularSystem, err)
	}

	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = xVec.AtVec(i)
	}
	return x, nil
}
