package anyon

import (
	"errors"
	"math/cmplx"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMultiSigma(t *testing.T) {
	Convey("Given two qudits of two outcomes each", t, func() {
		basis, err := FindMultiBasis(2, 2)
		So(err, ShouldBeNil)
		So(len(basis), ShouldEqual, 13)

		Convey("A braid across the qudit boundary should match the reference amplitudes", func() {
			reference := []struct {
				f, i      int
				amplitude complex128
			}{
				{0, 0, complex(-0.5, 0.3632712640026805)},
				{0, 2, complex(-0.19098300562505258, -0.5877852522924732)},
				{0, 4, complex(0.15014155300038884, 0.46208818591522255)},
				{4, 4, complex(-0.42705098312484213, 0.5877852522924731)},
				{6, 7, complex(-0.15014155300038884, -0.46208818591522255)},
				{6, 9, complex(0.11803398874989482, 0.36327126400268045)},
				{12, 12, complex(-0.5450849718747369, 0.22451398828979274)},
				{6, 12, complex(-0.09279258287793402, -0.2855862046953879)},
			}

			for _, entry := range reference {
				amplitude, err := MultiSigma(3, basis[entry.f], basis[entry.i])
				So(err, ShouldBeNil)
				So(closeTo(amplitude, entry.amplitude), ShouldBeTrue)
			}
		})

		Convey("A braid inside a qudit should reduce to Sigma on that qudit", func() {
			amplitude, err := MultiSigma(1, basis[0], basis[0])
			So(err, ShouldBeNil)
			So(closeTo(amplitude, r1), ShouldBeTrue)

			amplitude, err = MultiSigma(1, basis[1], basis[1])
			So(err, ShouldBeNil)
			So(closeTo(amplitude, r0), ShouldBeTrue)

			amplitude, err = MultiSigma(2, basis[12], basis[12])
			So(err, ShouldBeNil)
			So(closeTo(amplitude, complex(-invPhi, 0)), ShouldBeTrue)

			for _, pair := range [][2]int{{1, 0}, {2, 5}, {4, 12}} {
				for _, index := range []int{4, 5} {
					local, err := Sigma(index-3, basis[pair[0]].Qudits[1], basis[pair[1]].Qudits[1])
					So(err, ShouldBeNil)

					amplitude, err := MultiSigma(index, basis[pair[0]], basis[pair[1]])
					So(err, ShouldBeNil)

					if basis[pair[0]].WithQudit(1, basis[pair[1]].Qudits[1]).Equal(basis[pair[1]]) {
						So(amplitude, ShouldEqual, local)
					} else {
						So(amplitude, ShouldEqual, complex(0, 0))
					}
				}
			}
		})

		Convey("A braid inside a qudit should vanish when anything else changes", func() {
			// basis[7] differs from basis[0] in qudit 1 and the root.
			amplitude, err := MultiSigma(1, basis[0], basis[7])
			So(err, ShouldBeNil)
			So(amplitude, ShouldEqual, complex(0, 0))

			// basis[0] and basis[5] differ in both qudits.
			amplitude, err = MultiSigma(2, basis[5], basis[0])
			So(err, ShouldBeNil)
			So(amplitude, ShouldEqual, complex(0, 0))
		})

		Convey("Inputs should never be modified", func() {
			final, initial := basis[6].Clone(), basis[12].Clone()
			for index := 1; index < 6; index++ {
				_, err := MultiSigma(index, final, initial)
				So(err, ShouldBeNil)
			}

			So(final.Equal(basis[6]), ShouldBeTrue)
			So(initial.Equal(basis[12]), ShouldBeTrue)
		})

		Convey("Indices outside [1, n-1] should fail", func() {
			_, err := MultiSigma(0, basis[0], basis[0])
			So(errors.Is(err, ErrInvalidIndex), ShouldBeTrue)

			_, err = MultiSigma(6, basis[0], basis[0])
			So(errors.Is(err, ErrInvalidIndex), ShouldBeTrue)
		})

		Convey("An invalid final state should fail even if the initial state is valid", func() {
			invalid := basis[0].WithQudit(0, Qudit{Vacuum, Vacuum})

			_, err := MultiSigma(3, invalid, basis[0])
			So(errors.Is(err, ErrInvalidState), ShouldBeTrue)

			_, err = MultiSigma(3, basis[0], invalid)
			So(errors.Is(err, ErrInvalidState), ShouldBeTrue)
		})

		Convey("States of different shapes should fail", func() {
			wider := State{Qudits: []Qudit{{Tau, Tau, Tau}, {Tau, Tau, Tau}}, Roots: []Label{Tau}}

			_, err := MultiSigma(3, wider, basis[0])
			So(errors.Is(err, ErrInvalidState), ShouldBeTrue)
		})
	})

	Convey("Given four qudits of two outcomes each", t, func() {
		basis, err := FindMultiBasis(4, 2)
		So(err, ShouldBeNil)
		So(len(basis), ShouldEqual, 233)

		Convey("A braid out of qudit 2 should take jmoo from the first root", func() {
			So(boundaryAt(9/3-1), ShouldEqual, Interior)

			reference := []struct {
				f, i      int
				amplitude complex128
			}{
				{0, 0, complex(-0.5, 0.3632712640026805)},
				{0, 26, complex(-0.19098300562505258, -0.5877852522924732)},
				{0, 36, complex(0.15014155300038884, 0.46208818591522255)},
				{5, 5, complex(-0.49999999999999994, 0.36327126400268045)},
				{5, 49, complex(-0.19098300562505258, -0.5877852522924731)},
				{5, 73, complex(0.1501415530003888, 0.46208818591522244)},
				{37, 37, complex(-0.42705098312484213, 0.5877852522924731)},
				{40, 4, complex(0.15014155300038884, 0.46208818591522255)},
				{40, 30, complex(0.15014155300038878, 0.46208818591522244)},
				{74, 74, complex(-0.42705098312484224, 0.5877852522924731)},
				{111, 111, complex(-0.4999999999999999, 0.3632712640026806)},
			}

			for _, entry := range reference {
				amplitude, err := MultiSigma(9, basis[entry.f], basis[entry.i])
				So(err, ShouldBeNil)
				So(closeTo(amplitude, entry.amplitude), ShouldBeTrue)
			}

			// basis[5] carries τ in the first root, basis[0] the vacuum.
			So(Interior.grandparent(basis[5], 2), ShouldEqual, Tau)
			So(Interior.grandparent(basis[0], 2), ShouldEqual, Vacuum)
		})

		Convey("Every column of the crossing should keep unit norm", func() {
			for i := range basis {
				column := make(Amplitudes, len(basis))
				for f := range basis {
					amplitude, err := MultiSigma(9, basis[f], basis[i])
					So(err, ShouldBeNil)
					column[f] = amplitude
				}
				So(column.Norm(), ShouldAlmostEqual, 1, 1e-9)
			}
		})
	})

	Convey("Given qudits of a single outcome", t, func() {
		basis, err := FindMultiBasis(2, 1)
		So(err, ShouldBeNil)

		Convey("The boundary braid should use τ as the hidden channel", func() {
			want := [][]complex128{
				{complex(-0.5, 0.363271264), complex(-0.242934136, -0.747674391), 0, 0, 0},
				{complex(-0.242934136, -0.747674391), complex(-0.618033989, 0), 0, 0, 0},
				{0, 0, complex(-0.5, 0.363271264), complex(-0.190983006, -0.587785252), complex(0.150141553, 0.462088186)},
				{0, 0, complex(-0.190983006, -0.587785252), complex(-0.5, 0.363271264), complex(0.150141553, 0.462088186)},
				{0, 0, complex(0.150141553, 0.462088186), complex(0.150141553, 0.462088186), complex(-0.427050983, 0.587785252)},
			}

			for f := range basis {
				for i := range basis {
					amplitude, err := MultiSigma(2, basis[f], basis[i])
					So(err, ShouldBeNil)
					So(cmplx.Abs(amplitude-want[f][i]), ShouldBeLessThan, 1e-8)
				}
			}
		})
	})
}

func TestBoundary(t *testing.T) {
	Convey("Given the position of a crossing in the root chain", t, func() {
		So(boundaryAt(0), ShouldEqual, FirstBoundary)
		So(boundaryAt(1), ShouldEqual, SecondBoundary)
		So(boundaryAt(2), ShouldEqual, Interior)
		So(boundaryAt(7), ShouldEqual, Interior)

		So(FirstBoundary.String(), ShouldEqual, "first")
		So(SecondBoundary.String(), ShouldEqual, "second")
		So(Interior.String(), ShouldEqual, "interior")

		Convey("The grandparent should walk up the root chain", func() {
			state := State{
				Qudits: []Qudit{{Tau}, {Tau}, {Tau}, {Tau}},
				Roots:  []Label{Vacuum, Tau, Tau},
			}
			So(state.Valid(), ShouldBeTrue)

			So(FirstBoundary.grandparent(state, 0), ShouldEqual, Vacuum)
			So(SecondBoundary.grandparent(state, 1), ShouldEqual, Tau)
			So(Interior.grandparent(state, 2), ShouldEqual, Vacuum)
			So(Interior.grandparent(state, 3), ShouldEqual, Tau)

			So(FirstBoundary.parent(state, 0), ShouldEqual, Tau)
			So(SecondBoundary.parent(state, 1), ShouldEqual, Vacuum)
			So(Interior.parent(state, 2), ShouldEqual, Tau)
		})
	})
}
