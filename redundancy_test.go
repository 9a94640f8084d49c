package qlife

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRedundancyExperiment(t *testing.T) {
	Convey("Given the seven-qubit redundancy model", t, func() {
		Convey("No coupling should leave every mutual information at zero", func() {
			r := RunRedundancyExperiment(0, 0)
			for i := 0; i < 3; i++ {
				So(math.Abs(r.IZ[i]), ShouldBeLessThan, 1e-10)
				So(math.Abs(r.IX[i]), ShouldBeLessThan, 1e-10)
			}
		})

		Convey("A pure Z coupling should write into block 0 only", func() {
			r := RunRedundancyExperiment(math.Pi/4, 0)

			So(r.IZ[0], ShouldBeGreaterThan, 0.01)
			So(math.Abs(r.IZ[1]), ShouldBeLessThan, 1e-10)
			So(math.Abs(r.IZ[2]), ShouldBeLessThan, 1e-10)
			So(r.DeltaGeometry(BasisZ), ShouldBeGreaterThan, 0)
		})

		Convey("A pure X coupling should write into block 2 only", func() {
			r := RunRedundancyExperiment(0, math.Pi/4)

			So(r.IX[2], ShouldBeGreaterThan, 0.01)
			So(r.DeltaGeometry(BasisX), ShouldBeGreaterThan, 0)
		})

		Convey("The dominant coupling should win the geometric contrast", func() {
			zDominated := RunRedundancyExperiment(math.Pi/4, math.Pi/12)
			xDominated := RunRedundancyExperiment(math.Pi/12, math.Pi/4)

			So(zDominated.DeltaGeometry(BasisZ), ShouldBeGreaterThan, 0)
			So(xDominated.DeltaGeometry(BasisX), ShouldBeGreaterThan, 0)
		})

		Convey("Randomized assignments should wash out the geometry", func() {
			r := RunRedundancyExperiment(math.Pi/4, 0)
			// Averaged over all environment permutations, every block sees
			// the same mixture of coupled and uncoupled qubits.
			So(math.Abs(r.IZRandom[0]-r.IZRandom[2]), ShouldBeLessThan, 1e-10)
		})

		Convey("Redundancy should report the strongest block", func() {
			r := RunRedundancyExperiment(math.Pi/6, 0)
			So(r.Redundancy(BasisZ), ShouldAlmostEqual, r.IZ[0], 1e-12)
		})

		Convey("The experiment should be deterministic", func() {
			a := RunRedundancyExperiment(math.Pi/6, math.Pi/8)
			b := RunRedundancyExperiment(math.Pi/6, math.Pi/8)
			So(a, ShouldResemble, b)
		})
	})
}
