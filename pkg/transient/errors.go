package transient

import (
	"errors"
	"math"
)

// ErrNumericDivergence is returned when a Newton iteration's solved vector
// contains a non-finite value (NaN or +/-Inf).
var ErrNumericDivergence = errors.New("numeric divergence")

func hasNonFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return false
}
