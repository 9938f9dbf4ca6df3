package anyon

import "strings"

/*
Qudit holds the fusion outcomes of a group of τ anyons fused left to right.

	1 1 1 1 1
	\/ / / /
	i\/ / /
	 j\/ /
	  k\/
	   l\

The tree above is the Qudit [i, j, k, l]: the outcomes of progressively
fusing five anyons, starting from an implicit leading τ.
*/
type Qudit []Label

// Last returns the total fusion channel of the qudit.
func (q Qudit) Last() Label {
	return q[len(q)-1]
}

// Clone returns a copy that shares no memory with q.
func (q Qudit) Clone() Qudit {
	out := make(Qudit, len(q))
	copy(out, q)
	return out
}

// With returns a copy of q with the label at pos replaced.
func (q Qudit) With(pos int, label Label) Qudit {
	out := q.Clone()
	out[pos] = label
	return out
}

func (q Qudit) Equal(other Qudit) bool {
	if len(q) != len(other) {
		return false
	}

	for i := range q {
		if q[i] != other[i] {
			return false
		}
	}

	return true
}

// padded prepends the leading τ so position i holds the left operand of the
// i-th fusion.
func (q Qudit) padded() Qudit {
	out := make(Qudit, 0, len(q)+1)
	out = append(out, Tau)
	return append(out, q...)
}

// Valid reports whether every step of the fusion chain obeys CheckRule.
func (q Qudit) Valid() bool {
	previous := Tau

	for _, outcome := range q {
		if !CheckRule(previous, Tau, outcome) {
			return false
		}
		previous = outcome
	}

	return true
}

func (q Qudit) String() string {
	var b strings.Builder
	for _, label := range q {
		b.WriteString(label.String())
	}
	return b.String()
}

/*
State is a multi-qudit fusion state. Each qudit is fused on its own, then the
qudit outcomes are fused left to right into the roots.

	1 1 1 1 1 1 1 1 1
	\/  / \/  / \/  /
	i\ /  k\ /  e\ /
	  \     /     /
	  j\  l/     /f
	    \ /     /
	    m\     /
	      \   /
	       \ /
	       t|

is State{Qudits: [[i, j], [k, l], [e, f]], Roots: [m, t]}.
*/
type State struct {
	Qudits []Qudit
	Roots  []Label
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := State{
		Qudits: make([]Qudit, len(s.Qudits)),
		Roots:  make([]Label, len(s.Roots)),
	}

	for i, qudit := range s.Qudits {
		out.Qudits[i] = qudit.Clone()
	}
	copy(out.Roots, s.Roots)

	return out
}

// WithQudit returns a deep copy of s with qudit m replaced by a copy of q.
func (s State) WithQudit(m int, q Qudit) State {
	out := s.Clone()
	out.Qudits[m] = q.Clone()
	return out
}

// WithRoot returns a deep copy of s with root i replaced.
func (s State) WithRoot(i int, label Label) State {
	out := s.Clone()
	out.Roots[i] = label
	return out
}

// QuditLen returns the number of outcomes per qudit, or 0 for an empty state.
func (s State) QuditLen() int {
	if len(s.Qudits) == 0 {
		return 0
	}
	return len(s.Qudits[0])
}

func (s State) Equal(other State) bool {
	if len(s.Qudits) != len(other.Qudits) || !Qudit(s.Roots).Equal(other.Roots) {
		return false
	}

	for i := range s.Qudits {
		if !s.Qudits[i].Equal(other.Qudits[i]) {
			return false
		}
	}

	return true
}

/*
Valid reports whether s is an acceptable Fibonacci state: all qudits are
non-empty, of equal length and individually valid, there is exactly one root
per pair of neighbouring qudits, and the root chain obeys the fusion rules.
*/
func (s State) Valid() bool {
	quditLen := s.QuditLen()
	if quditLen == 0 {
		return false
	}

	for _, qudit := range s.Qudits {
		if len(qudit) != quditLen || !qudit.Valid() {
			return false
		}
	}

	if len(s.Roots) != len(s.Qudits)-1 {
		return false
	}

	previous := s.Qudits[0].Last()
	for i, outcome := range s.Roots {
		if !CheckRule(previous, s.Qudits[i+1].Last(), outcome) {
			return false
		}
		previous = outcome
	}

	return true
}

// String renders s as qudits separated by "|" followed by ";" and the roots.
func (s State) String() string {
	parts := make([]string, len(s.Qudits))
	for i, qudit := range s.Qudits {
		parts[i] = qudit.String()
	}

	return strings.Join(parts, "|") + ";" + Qudit(s.Roots).String()
}

// CheckQudit reports whether outcomes form a valid single-qudit state.
func CheckQudit(outcomes Qudit) bool {
	return outcomes.Valid()
}

// CheckState reports whether s forms a valid multi-qudit state.
func CheckState(s State) bool {
	return s.Valid()
}
