package qlife

import (
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGridLifting(t *testing.T) {
	Convey("Given classical boards and quantum grids", t, func() {
		Convey("FromClassical and Classical should round-trip", func() {
			board := NewBoard(8, 8)
			board.LoadPattern(gliderPattern)

			grid := FromClassical(board)
			So(grid.Classical().Flips(board), ShouldEqual, 0)
		})

		Convey("Classical should threshold at probability one half", func() {
			grid := NewGrid(1, 2)
			grid.SetAt(0, 0, Qubit{Alpha: complex(0.8, 0), Beta: complex(0.6, 0)}) // p = 0.36
			grid.SetAt(0, 1, Qubit{Alpha: complex(0.6, 0), Beta: complex(0.8, 0)}) // p = 0.64

			board := grid.Classical()
			So(board.Get(0, 0), ShouldEqual, 0)
			So(board.Get(0, 1), ShouldEqual, 1)
		})

		Convey("Loaders should mirror their classical counterparts", func() {
			grid := NewGrid(9, 9)
			grid.LoadPattern(blinkerPattern)
			So(grid.Classical().Population(), ShouldEqual, 3)

			grid.LoadEmpty()
			So(grid.Classical().IsZero(), ShouldBeTrue)

			rng := rand.New(rand.NewSource(3))
			grid.LoadRandom(rng, 0.6)
			pop := grid.Classical().Population()
			So(pop, ShouldBeGreaterThan, 0)
			So(pop, ShouldBeLessThan, 81)
		})
	})
}

func TestGridTopology(t *testing.T) {
	Convey("Given a quantum grid", t, func() {
		grid := NewGrid(5, 7)
		grid.SetAt(0, 0, One())

		Convey("At should wrap both axes including negative offsets", func() {
			So(grid.At(5, 7), ShouldResemble, One())
			So(grid.At(-5, -7), ShouldResemble, One())
			So(grid.At(0, -7), ShouldResemble, One())
		})

		Convey("NeighborSum should gather all eight wrapped neighbors", func() {
			// The live cell at (0,0) is a neighbor of (4,6) across both edges.
			sum := grid.NeighborSum(4, 6)
			So(sum.Beta, ShouldEqual, complex(1, 0))

			// Its own neighborhood is all |0⟩: eight alpha contributions.
			own := grid.NeighborSum(0, 0)
			So(own.Alpha, ShouldEqual, complex(8, 0))
			So(own.Beta, ShouldEqual, complex(0, 0))
		})

		Convey("Translate should move cells with wraparound", func() {
			moved := grid.Translate(2, 3)
			So(moved.At(2, 3), ShouldResemble, One())
			So(moved.At(0, 0), ShouldResemble, Zero())

			back := moved.Translate(-2, -3)
			So(back.At(0, 0), ShouldResemble, One())
		})
	})
}
