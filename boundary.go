package anyon

/*
Boundary classifies where a braid crossing from qudit m into qudit m+1 sits
in the root chain. The position decides which label plays the grandparent
jmoo in the sewing matrix.
*/
type Boundary int

const (
	FirstBoundary  Boundary = iota // m == 0: qudit 0 outcome is the parent, jmoo is the vacuum
	SecondBoundary                 // m == 1: root 0 is the parent, qudit 0 outcome is jmoo
	Interior                       // m >= 2: root m-1 is the parent, root m-2 is jmoo
)

func boundaryAt(m int) Boundary {
	switch {
	case m == 0:
		return FirstBoundary
	case m == 1:
		return SecondBoundary
	default:
		return Interior
	}
}

func (b Boundary) String() string {
	switch b {
	case FirstBoundary:
		return "first"
	case SecondBoundary:
		return "second"
	default:
		return "interior"
	}
}

// grandparent returns jmoo for a crossing out of qudit m of initial.
func (b Boundary) grandparent(initial State, m int) Label {
	switch b {
	case FirstBoundary:
		return Vacuum
	case SecondBoundary:
		return initial.Qudits[0].Last()
	default:
		return initial.Roots[m-2]
	}
}

// parent returns the label entering the fusion with qudit m+1.
func (b Boundary) parent(s State, m int) Label {
	if b == FirstBoundary {
		return s.Qudits[0].Last()
	}
	return s.Roots[m-1]
}

// crossing holds everything S needs for one boundary braid.
type crossing struct {
	boundary Boundary
	m        int

	// candidate is initial with every label the braid may touch taken from final.
	candidate State

	jm, jmo, jmoo, jmoPrime Label
	h, i, iPrime            Label
	jj, jjPrime             Qudit
}

/*
newCrossing prepares the braid between the last anyon of qudit m and the
first anyon of qudit m+1. Neither state is modified.
*/
func newCrossing(m int, final, initial State) crossing {
	boundary := boundaryAt(m)

	candidate := initial.
		WithQudit(m, initial.Qudits[m].With(len(initial.Qudits[m])-1, final.Qudits[m].Last())).
		WithQudit(m+1, final.Qudits[m+1])
	if boundary != FirstBoundary {
		candidate = candidate.WithRoot(m-1, final.Roots[m-1])
	}

	source := initial.Qudits[m].padded()

	return crossing{
		boundary:  boundary,
		m:         m,
		candidate: candidate,
		jm:        initial.Roots[m],
		jmo:       boundary.parent(initial, m),
		jmoo:      boundary.grandparent(initial, m),
		jmoPrime:  boundary.parent(candidate, m),
		h:         source[len(source)-2],
		i:         initial.Qudits[m].Last(),
		iPrime:    candidate.Qudits[m].Last(),
		jj:        initial.Qudits[m+1].Clone(),
		jjPrime:   candidate.Qudits[m+1].Clone(),
	}
}

// amplitude evaluates the sewing matrix, gated on the candidate matching final.
func (c crossing) amplitude(final State) complex128 {
	if !c.candidate.Equal(final) {
		return 0
	}

	return S(c.jm, c.jmo, c.jmoo, c.jmoPrime, c.h, c.iPrime, c.i, c.jjPrime, c.jj)
}
