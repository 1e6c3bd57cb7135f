package component

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResistorCompanion(t *testing.T) {
	r, err := NewResistor("R1", 1, 2, 10.0)
	require.NoError(t, err)

	comp := r.Companion(0.1, 0.0)
	assert.Equal(t, ConductanceCurrent, comp.Kind)
	assert.InDelta(t, 0.1, comp.G, 1e-12)
	assert.InDelta(t, 0, comp.I, 1e-12)
}

func TestResistorRejectsNonPositiveR(t *testing.T) {
	_, err := NewResistor("R1", 1, 2, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	_, err = NewResistor("R1", 1, 2, -5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestCurrentSourceCompanion(t *testing.T) {
	src := NewCurrentSource("I1", 0, 1, 2.5)
	comp := src.Companion(0.1, 0.0)
	assert.Equal(t, ConductanceCurrent, comp.Kind)
	assert.Equal(t, 0.0, comp.G)
	assert.Equal(t, 2.5, comp.I)
}

func TestVoltageSourceDC(t *testing.T) {
	src := NewVoltageSource("V1", 1, 0, 5.0)
	comp := src.Companion(0.1, 1.23)
	assert.Equal(t, Voltage, comp.Kind)
	assert.Equal(t, 5.0, comp.V)
}

func TestVoltageSourceSin(t *testing.T) {
	src := NewSinVoltageSource("V1", 1, 0, 10.0, 1.0)

	comp := src.Companion(0.01, 0.0)
	assert.InDelta(t, 0, comp.V, 1e-9)

	comp = src.Companion(0.01, 0.25)
	assert.InDelta(t, 10.0, comp.V, 1e-9)
}

func TestCapacitorCompanionAndStateUpdate(t *testing.T) {
	c, err := NewCapacitor("C1", 1, 0, 1e-6, 0.0)
	require.NoError(t, err)

	dt := 1e-3
	comp := c.Companion(dt, 0)
	wantG := 1e-6 / dt
	assert.InDelta(t, wantG, comp.G, 1e-15)
	assert.InDelta(t, 0, comp.I, 1e-15)

	c.UpdateState(2.0, 0.0, dt)
	comp = c.Companion(dt, dt)
	assert.InDelta(t, -2.0*wantG, comp.I, 1e-9)
}

func TestCapacitorRejectsNonPositiveC(t *testing.T) {
	_, err := NewCapacitor("C1", 1, 0, 0, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestInductorCompanionAndStateUpdate(t *testing.T) {
	l, err := NewInductor("L1", 1, 0, 1e-3, 1.0)
	require.NoError(t, err)

	dt := 1e-5
	comp := l.Companion(dt, 0)
	assert.InDelta(t, dt/1e-3, comp.G, 1e-15)
	assert.InDelta(t, -1.0, comp.I, 1e-12)

	l.UpdateState(1.0, 0.0, dt)
	assert.InDelta(t, 1.0+1.0*dt/1e-3, l.iLast, 1e-12)
}

func TestInductorRejectsNonPositiveL(t *testing.T) {
	_, err := NewInductor("L1", 1, 0, 0, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestDiodeWarmStartAndLinearization(t *testing.T) {
	d, err := NewDiode("D1", 1, 0, 1e-15, 0.026, 0.9, 1.08)
	require.NoError(t, err)

	comp := d.Companion(1e-3, 0)
	wantG := (1e-15 / 0.026) * math.Exp(0.9/0.026)
	assert.InDelta(t, wantG, comp.G, wantG*1e-9)
}

func TestDiodeOperatingPointUpdateAndReset(t *testing.T) {
	d, err := NewDiode("D1", 1, 0, 1e-15, 0.026, 0.9, 1.08)
	require.NoError(t, err)

	d.UpdateOperatingPoint(0.5, 0.0)
	assert.InDelta(t, 0.5, d.vOp, 1e-12)
	assert.InDelta(t, 1e-15*(math.Exp(0.5/0.026)-1), d.iOp, 1e-9)

	d.ResetOperatingPoint()
	assert.Equal(t, diodeWarmStartV, d.vOp)
	assert.Equal(t, diodeWarmStartI, d.iOp)
}

func TestDiodeRejectsNonPositiveParameters(t *testing.T) {
	_, err := NewDiode("D1", 1, 0, 0, 0.026, 0.9, 1.08)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	_, err = NewDiode("D1", 1, 0, 1e-15, 0, 0.9, 1.08)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestBaseHooksAreNoOps(t *testing.T) {
	r, err := NewResistor("R1", 1, 2, 10.0)
	require.NoError(t, err)

	assert.False(t, r.IsDynamic())
	assert.False(t, r.IsNonlinear())
	assert.NotPanics(t, func() {
		r.UpdateState(1, 0, 0.1)
		r.UpdateOperatingPoint(1, 0)
		r.ResetOperatingPoint()
	})
}
