// Package mna assembles the Modified Nodal Analysis system matrix and
// right-hand side for a snapshot of element companion models.
package mna

import (
	"gonum.org/v1/gonum/mat"

	"github.com/manuelmaiorano/circuit-simulator/pkg/component"
)

// System is the per-timestep scratch A*x=b system. It is sized once for a
// circuit (N nodes + M voltage-defined branches) and reused across every
// Newton iteration and every timestep via Reset.
type System struct {
	N int // node count
	M int // voltage-defined branch count
	A *mat.Dense
	B []float64
}

// NewSystem allocates a zeroed (N+M)x(N+M) system.
func NewSystem(n, m int) *System {
	size := n + m
	return &System{
		N: n, M: m,
		A: mat.NewDense(size, size, nil),
		B: make([]float64, size),
	}
}

// Size returns N+M, the dimension of A and b.
func (s *System) Size() int { return s.N + s.M }

// Reset zeroes A and b for the next assembly pass.
func (s *System) Reset() {
	s.A.Zero()
	for i := range s.B {
		s.B[i] = 0
	}
}

// Stamp applies one element's companion model to A and b. auxIndex is
// meaningful only when the element is voltage-defined (its companion
// evaluates to component.Voltage); pass -1 otherwise.
func (s *System) Stamp(el component.Element, auxIndex int, dt, t float64) {
	a, c := el.Anode(), el.Cathode()
	comp := el.Companion(dt, t)

	switch comp.Kind {
	case component.ConductanceCurrent:
		g, i := comp.G, comp.I
		s.B[a] -= i
		s.B[c] += i
		s.A.Set(a, a, s.A.At(a, a)+g)
		s.A.Set(c, c, s.A.At(c, c)+g)
		s.A.Set(a, c, s.A.At(a, c)-g)
		s.A.Set(c, a, s.A.At(c, a)-g)

	case component.Voltage:
		k := auxIndex
		s.A.Set(a, k, s.A.At(a, k)+1)
		s.A.Set(c, k, s.A.At(c, k)-1)
		s.A.Set(k, a, s.A.At(k, a)+1)
		s.A.Set(k, c, s.A.At(k, c)-1)
		s.B[k] = comp.V
	}
}
