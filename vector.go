package anyon

import (
	"math"
	"math/cmplx"
)

// Amplitudes is a state vector expressed in the basis of a Generator.
type Amplitudes []complex128

// BasisVector returns the n-dimensional vector with a single 1 at position i.
func BasisVector(n, i int) Amplitudes {
	vector := make(Amplitudes, n)
	vector[i] = 1
	return vector
}

// Probabilities returns |a_i|² for every component.
func (a Amplitudes) Probabilities() []float64 {
	probs := make([]float64, len(a))
	for i, amplitude := range a {
		prob := cmplx.Abs(amplitude)
		probs[i] = prob * prob
	}
	return probs
}

func (a Amplitudes) Norm() float64 {
	var total float64
	for _, prob := range a.Probabilities() {
		total += prob
	}
	return math.Sqrt(total)
}

// Equal reports whether a and other have the same length and every component within tol.
func (a Amplitudes) Equal(other Amplitudes, tol float64) bool {
	if len(a) != len(other) {
		return false
	}

	for i := range a {
		if cmplx.Abs(a[i]-other[i]) > tol {
			return false
		}
	}
	return true
}
