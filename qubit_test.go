package qlife

import (
	"math"
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQubitNormalization(t *testing.T) {
	Convey("Given arbitrary state vectors", t, func() {
		rng := rand.New(rand.NewSource(42))

		Convey("Normalize should produce unit-norm states", func() {
			for i := 0; i < 100; i++ {
				q := Qubit{
					Alpha: complex(rng.Float64()*4-2, rng.Float64()*4-2),
					Beta:  complex(rng.Float64()*4-2, rng.Float64()*4-2),
				}
				if q.Magnitude2() < normFloor {
					continue
				}
				So(q.Normalize().Magnitude2(), ShouldAlmostEqual, 1, 1e-9)
			}
		})

		Convey("A vanishing state should collapse to the canonical |0⟩", func() {
			q := Qubit{Alpha: complex(1e-9, 0), Beta: complex(0, 1e-9)}
			So(q.Normalize(), ShouldResemble, Zero())

			So(Qubit{}.Normalize(), ShouldResemble, Zero())
		})

		Convey("A state just above the floor should still rescale", func() {
			q := Qubit{Alpha: complex(1e-5, 0)}
			n := q.Normalize()
			So(n.Magnitude2(), ShouldAlmostEqual, 1, 1e-9)
			So(real(n.Alpha), ShouldAlmostEqual, 1, 1e-9)
		})
	})
}

func TestQubitArithmetic(t *testing.T) {
	Convey("Given basis states", t, func() {
		Convey("Add should sum component-wise without normalizing", func() {
			s := Zero().Add(One())
			So(s.Alpha, ShouldEqual, complex(1, 0))
			So(s.Beta, ShouldEqual, complex(1, 0))
			So(s.Magnitude2(), ShouldAlmostEqual, 2)
		})

		Convey("Probability should read |beta|²", func() {
			So(Zero().Probability(), ShouldEqual, 0)
			So(One().Probability(), ShouldEqual, 1)

			h := Qubit{
				Alpha: complex(1/math.Sqrt2, 0),
				Beta:  complex(0, 1/math.Sqrt2),
			}
			So(h.Probability(), ShouldAlmostEqual, 0.5, 1e-12)
		})

		Convey("Apply should perform the 2x2 complex multiply", func() {
			x := PauliCoefficients{X: 1}.Matrix()
			So(Zero().Apply(x), ShouldResemble, One())
			So(One().Apply(x), ShouldResemble, Zero())

			y := PauliCoefficients{Y: 1}.Matrix()
			flipped := Zero().Apply(y)
			So(flipped.Alpha, ShouldEqual, complex(0, 0))
			So(flipped.Beta, ShouldEqual, complex(0, 1))
		})
	})
}
