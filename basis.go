package anyon

import (
	"fmt"
	"iter"
)

// MaxLabels bounds the brute-force enumeration to 2^30 label assignments.
const MaxLabels = 30

/*
combinations yields every assignment of n binary labels, in the order of an
integer counter running from all-vacuum to all-τ with position 0 as the least
significant bit. The yielded slice is reused between iterations.
*/
func combinations(n int) iter.Seq[[]Label] {
	return func(yield func([]Label) bool) {
		labels := make([]Label, n)

		for c := uint64(0); c < uint64(1)<<uint(n); c++ {
			for j := range labels {
				labels[j] = Label(c >> uint(j) & 1)
			}

			if !yield(labels) {
				return
			}
		}
	}
}

/*
FindBasis enumerates the basis of the fusion space of nAnyons τ anyons fused
left to right. The order of the returned states defines the row and column
order of the braiding generators built on it.
*/
func FindBasis(nAnyons int) ([]Qudit, error) {
	if nAnyons < 1 {
		return nil, fmt.Errorf("%w: %d anyons", ErrInvalidShape, nAnyons)
	}

	nLabels := nAnyons - 1
	if nLabels > MaxLabels {
		return nil, fmt.Errorf("%w: %d labels exceeds %d", ErrInvalidShape, nLabels, MaxLabels)
	}

	basis := make([]Qudit, 0, Dimension(nAnyons))
	for labels := range combinations(nLabels) {
		if state := Qudit(labels); state.Valid() {
			basis = append(basis, state.Clone())
		}
	}

	return basis, nil
}

/*
FindMultiBasis enumerates the basis of nQudits qudits of quditLen outcomes
each, fused qudit by qudit. The first nQudits*quditLen labels of every
assignment fill the qudits in order, the remaining ones are the roots.
*/
func FindMultiBasis(nQudits, quditLen int) ([]State, error) {
	if nQudits < 1 || quditLen < 1 {
		return nil, fmt.Errorf("%w: %d qudits of length %d", ErrInvalidShape, nQudits, quditLen)
	}

	nLabels := nQudits*quditLen + nQudits - 1
	if nLabels > MaxLabels {
		return nil, fmt.Errorf("%w: %d labels exceeds %d", ErrInvalidShape, nLabels, MaxLabels)
	}

	var basis []State
	for labels := range combinations(nLabels) {
		if state := fillState(labels, nQudits, quditLen); state.Valid() {
			basis = append(basis, state)
		}
	}

	return basis, nil
}

// fillState copies a flat label assignment into a State.
func fillState(labels []Label, nQudits, quditLen int) State {
	state := State{
		Qudits: make([]Qudit, nQudits),
		Roots:  make([]Label, nQudits-1),
	}

	for m := range state.Qudits {
		state.Qudits[m] = Qudit(labels[m*quditLen : (m+1)*quditLen]).Clone()
	}
	copy(state.Roots, labels[nQudits*quditLen:])

	return state
}

/*
Dimension returns the dimension of the fusion space of n τ anyons, which
follows the Fibonacci sequence U(n+2) = U(n+1) + U(n) with U(0) = U(1) = 1.
*/
func Dimension(n int) int {
	if n < 0 {
		return 0
	}

	u := [2]int{1, 1}
	for i := 0; i < n/2; i++ {
		u[0] += u[1]
		u[1] += u[0]
	}

	return u[n%2]
}
