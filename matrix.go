package anyon

import "math/cmplx"

/*
Matrix is a 2x2 complex operator on the two fusion channels of a single
vertex. Rows and columns are indexed by Label: [Vacuum, Tau].
*/
type Matrix [2][2]complex128

var Identity = Matrix{
	{1, 0},
	{0, 1},
}

func (m Matrix) Mul(other Matrix) Matrix {
	var out Matrix
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = m[i][0]*other[0][j] + m[i][1]*other[1][j]
		}
	}
	return out
}

// Dagger returns the conjugate transpose of m.
func (m Matrix) Dagger() Matrix {
	return Matrix{
		{cmplx.Conj(m[0][0]), cmplx.Conj(m[1][0])},
		{cmplx.Conj(m[0][1]), cmplx.Conj(m[1][1])},
	}
}

func (m Matrix) At(row, col Label) complex128 {
	return m[row][col]
}

// Equal reports whether every entry of m is within tol of other.
func (m Matrix) Equal(other Matrix, tol float64) bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if cmplx.Abs(m[i][j]-other[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

func (m Matrix) IsUnitary(tol float64) bool {
	return m.Mul(m.Dagger()).Equal(Identity, tol)
}
