package anyon

import "fmt"

/*
MultiSigma returns the amplitude <final|σ_index|initial> for anyons grouped
in qudits of q outcomes (q+1 anyons each).

When index falls inside a qudit the braid is local to it and Sigma is used,
gated on every other qudit and every root being unchanged. When index is a
multiple of q+1 the braid crosses from qudit m = index/(q+1) - 1 into qudit
m+1 and is evaluated through the sewing matrix S.

Both states must be valid and share the same shape.
*/
func MultiSigma(index int, final, initial State) (complex128, error) {
	if !initial.Valid() || !final.Valid() {
		return 0, fmt.Errorf("%w: %v -> %v", ErrInvalidState, initial, final)
	}

	if len(final.Qudits) != len(initial.Qudits) || final.QuditLen() != initial.QuditLen() {
		return 0, fmt.Errorf("%w: shapes of %v and %v differ", ErrInvalidState, initial, final)
	}

	perQudit := initial.QuditLen() + 1
	if index < 1 || index >= len(initial.Qudits)*perQudit {
		return 0, fmt.Errorf(
			"%w: σ_%d on %d qudits of %d anyons", ErrInvalidIndex, index, len(initial.Qudits), perQudit,
		)
	}

	if index%perQudit != 0 {
		m := index / perQudit

		if !initial.WithQudit(m, final.Qudits[m]).Equal(final) {
			return 0, nil
		}

		return Sigma(index%perQudit, final.Qudits[m], initial.Qudits[m])
	}

	return newCrossing(index/perQudit-1, final, initial).amplitude(final), nil
}
