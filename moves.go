package anyon

import (
	"math"
	"math/cmplx"
)

// invPhi is the inverse of the golden ratio, (√5 - 1) / 2.
var invPhi = (math.Sqrt(5) - 1) / 2

var (
	vacuumMove = Matrix{{1, 0}, {0, 0}}
	raiseMove  = Matrix{{0, 1}, {0, 0}}
	lowerMove  = Matrix{{0, 0}, {1, 0}}
	tauMove    = Matrix{{0, 0}, {0, 1}}

	recoupleMove = Matrix{
		{complex(invPhi, 0), complex(math.Sqrt(invPhi), 0)},
		{complex(math.Sqrt(invPhi), 0), complex(-invPhi, 0)},
	}

	braidPhases = Matrix{
		{cmplx.Exp(complex(0, -4*math.Pi/5)), 0},
		{0, cmplx.Exp(complex(0, 3*math.Pi/5))},
	}
)

/*
fMoves is indexed by the occupancy mask a1<<3 | a2<<2 | a3<<1 | outcome.
Only the all-τ vertex has a genuine 2x2 recoupling; every other pattern fixes
both intermediate channels, and the entry follows from which pair of the four
labels is τ. Masks with a single τ are forbidden vertices and stay zero.
*/
var fMoves = [16]Matrix{
	0b0000: vacuumMove,
	0b0011: raiseMove, // a3, outcome
	0b0101: tauMove,   // a2, outcome
	0b0110: lowerMove, // a2, a3
	0b0111: tauMove,
	0b1001: lowerMove, // a1, outcome
	0b1010: tauMove,   // a1, a3
	0b1011: tauMove,
	0b1100: raiseMove, // a1, a2
	0b1101: tauMove,
	0b1110: tauMove,
	0b1111: recoupleMove,
}

func occupancy(a1, a2, a3, outcome Label) (int, bool) {
	for _, label := range [...]Label{a1, a2, a3, outcome} {
		if !label.Valid() {
			return 0, false
		}
	}

	return int(a1)<<3 | int(a2)<<2 | int(a3)<<1 | int(outcome), true
}

/*
F returns the recoupling matrix taking ((a1 a2) a3) to (a1 (a2 a3)) with total
channel outcome. Row index is the (a1 a2) channel, column index the (a2 a3)
channel.
*/
func F(a1, a2, a3, outcome Label) Matrix {
	mask, ok := occupancy(a1, a2, a3, outcome)
	if !ok {
		return Matrix{}
	}

	return fMoves[mask]
}

// R returns the exchange phases of a1 and a2, which are trivial unless both are τ.
func R(a1, a2 Label) Matrix {
	if a1 == Tau && a2 == Tau {
		return braidPhases
	}

	return Identity
}

// B returns the braid matrix F·R·F† exchanging a1 and a2 under the left
// context a0 and total channel outcome.
func B(a0, a1, a2, outcome Label) Matrix {
	return F(a0, a1, a2, outcome).Mul(R(a1, a2)).Mul(F(a0, a2, a1, outcome).Dagger())
}
