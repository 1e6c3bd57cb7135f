package mna

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manuelmaiorano/circuit-simulator/pkg/component"
)

func TestStampResistorIsSymmetric(t *testing.T) {
	sys := NewSystem(3, 0)
	r, err := component.NewResistor("R1", 1, 2, 10.0)
	require.NoError(t, err)

	sys.Stamp(r, -1, 0.1, 0)

	g := 1.0 / 10.0
	assert.InDelta(t, g, sys.A.At(1, 1), 1e-12)
	assert.InDelta(t, g, sys.A.At(2, 2), 1e-12)
	assert.InDelta(t, -g, sys.A.At(1, 2), 1e-12)
	assert.InDelta(t, -g, sys.A.At(2, 1), 1e-12)
}

func TestStampCurrentSourceUpdatesRHS(t *testing.T) {
	sys := NewSystem(2, 0)
	src := component.NewCurrentSource("I1", 0, 1, 2.0)

	sys.Stamp(src, -1, 0.1, 0)

	assert.InDelta(t, -2.0, sys.B[0], 1e-12)
	assert.InDelta(t, 2.0, sys.B[1], 1e-12)
}

func TestStampVoltageSourceUsesAuxRowAndColumn(t *testing.T) {
	n, m := 2, 1
	sys := NewSystem(n, m)
	src := component.NewVoltageSource("V1", 1, 0, 5.0)

	aux := n
	sys.Stamp(src, aux, 0.1, 0)

	assert.Equal(t, 1.0, sys.A.At(1, aux))
	assert.Equal(t, -1.0, sys.A.At(0, aux))
	assert.Equal(t, 1.0, sys.A.At(aux, 1))
	assert.Equal(t, -1.0, sys.A.At(aux, 0))
	assert.Equal(t, 5.0, sys.B[aux])
}

func TestResetZeroesSystem(t *testing.T) {
	sys := NewSystem(2, 0)
	r, err := component.NewResistor("R1", 0, 1, 5.0)
	require.NoError(t, err)
	sys.Stamp(r, -1, 0.1, 0)

	sys.Reset()

	for i := 0; i < sys.Size(); i++ {
		assert.Equal(t, 0.0, sys.B[i])
		for j := 0; j < sys.Size(); j++ {
			assert.Equal(t, 0.0, sys.A.At(i, j))
		}
	}
}

func TestSizeIsNPlusM(t *testing.T) {
	sys := NewSystem(4, 2)
	assert.Equal(t, 6, sys.Size())
}
