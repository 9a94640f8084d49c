package qlife

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTrajectoryDeterminism(t *testing.T) {
	Convey("Given a fixed seed", t, func() {
		Convey("Repeated generation should be identical", func() {
			a := NewTrajectory(1337, 16, 16, 10, 0.6)
			b := NewTrajectory(1337, 16, 16, 10, 0.6)

			So(a.Len(), ShouldEqual, 11)
			So(b.Len(), ShouldEqual, a.Len())
			for i := range a.Steps {
				So(a.Steps[i].Population, ShouldEqual, b.Steps[i].Population)
				So(a.Steps[i].Flips, ShouldEqual, b.Steps[i].Flips)
				So(a.Steps[i].Board.Flips(b.Steps[i].Board), ShouldEqual, 0)
			}
		})

		Convey("A different seed should diverge", func() {
			a := NewTrajectory(1337, 16, 16, 0, 0.6)
			b := NewTrajectory(7331, 16, 16, 0, 0.6)
			So(a.Steps[0].Board.Flips(b.Steps[0].Board), ShouldNotEqual, 0)
		})

		Convey("A zero seed should still produce a usable sequence", func() {
			tr := NewTrajectory(0, 8, 8, 2, 0.6)
			So(tr.Len(), ShouldEqual, 3)
		})
	})
}

func TestTrajectoryRecording(t *testing.T) {
	Convey("Given a generated trajectory", t, func() {
		tr := NewTrajectory(1337, 12, 12, 6, 0.6)

		Convey("Step zero should record zero flips and the seeded population", func() {
			So(tr.Steps[0].Flips, ShouldEqual, 0)
			So(tr.Steps[0].Population, ShouldEqual, tr.Steps[0].Board.Population())
		})

		Convey("Each snapshot should agree with replaying the classical rule", func() {
			board := tr.Steps[0].Board
			for i := 1; i < tr.Len(); i++ {
				next := board.Step()
				So(tr.Steps[i].Board.Flips(next), ShouldEqual, 0)
				So(tr.Steps[i].Population, ShouldEqual, next.Population())
				So(tr.Steps[i].Flips, ShouldEqual, next.Flips(board))
				board = next
			}
		})

		Convey("Recorded boards should be independent snapshots", func() {
			pop := tr.Steps[3].Board.Population()
			tr.Steps[2].Board.Toggle(0, 0)
			So(tr.Steps[3].Board.Population(), ShouldEqual, pop)
		})

		Convey("A nil trajectory should report zero length", func() {
			var none *Trajectory
			So(none.Len(), ShouldEqual, 0)
		})
	})
}
