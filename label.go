package anyon

import "strconv"

/*
Label is a fusion channel of the Fibonacci (SU(2)_3) model. There are only
two particle types: the vacuum and the τ anyon.
*/
type Label uint8

const (
	Vacuum Label = iota // trivial channel, 1
	Tau                 // Fibonacci anyon, τ
)

// Valid reports whether l is one of the two Fibonacci labels.
func (l Label) Valid() bool {
	return l <= Tau
}

func (l Label) String() string {
	return strconv.Itoa(int(l))
}

/*
CheckRule reports whether outcome is an allowed fusion channel of a1 and a2.

	τ ⊗ τ = 1 ⊕ τ
	τ ⊗ 1 = 1 ⊗ τ = τ
	1 ⊗ 1 = 1

Any label outside {0, 1} makes the fusion invalid.
*/
func CheckRule(a1, a2, outcome Label) bool {
	if !a1.Valid() || !a2.Valid() || !outcome.Valid() {
		return false
	}

	switch {
	case a1 == Tau && a2 == Tau:
		return true
	case a1 == Tau || a2 == Tau:
		return outcome == Tau
	default:
		return outcome == Vacuum
	}
}
