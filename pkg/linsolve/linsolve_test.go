package linsolve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestLUSolverSolvesKnownSystem(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{2, 1, 1, 3})
	b := []float64{5, 10}

	x, err := (LUSolver{}).Solve(a, b)
	require.NoError(t, err)
	require.Len(t, x, 2)

	assert.InDelta(t, 1.0, x[0], 1e-9)
	assert.InDelta(t, 3.0, x[1], 1e-9)
}

func TestLUSolverReportsSingularSystem(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 1, 1, 1})
	b := []float64{1, 2}

	_, err := (LUSolver{}).Solve(a, b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSingularSystem))
}
