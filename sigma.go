package anyon

import "fmt"

/*
Sigma returns the amplitude <final|σ_index|initial> of the braid exchanging
anyons index and index+1 of a single qudit. The braid only touches the
outcome at position index-1 of the padded chain, so the amplitude vanishes
unless initial and final agree everywhere else. Both qudits must obey the
fusion rules.
*/
func Sigma(index int, final, initial Qudit) (complex128, error) {
	if index < 1 || index > len(initial) {
		return 0, fmt.Errorf("%w: σ_%d on %d outcomes", ErrInvalidIndex, index, len(initial))
	}

	if !final.Valid() || !initial.Valid() {
		return 0, fmt.Errorf("%w: %v -> %v", ErrInvalidState, initial, final)
	}

	if len(final) != len(initial) {
		return 0, nil
	}

	ket, bra := initial.padded(), final.padded()

	a0 := Vacuum
	switch {
	case index == 2:
		a0 = Tau
	case index > 2:
		a0 = initial[index-3]
	}

	a, b := ket[index-1], bra[index-1]
	if !ket.With(index-1, b).Equal(bra) {
		return 0, nil
	}

	return B(a0, Tau, Tau, initial[index-1]).At(a, b), nil
}
