package qlife

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestConfig(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		cfg := NewConfig()

		Convey("Defaults should describe a usable small system", func() {
			So(cfg.GridHeight, ShouldEqual, 24)
			So(cfg.GridWidth, ShouldEqual, 24)
			So(cfg.TrajectorySeed, ShouldEqual, 1337)
			So(cfg.PopulationSize, ShouldBeGreaterThan, cfg.EliteCount)
			So(cfg.AliveThreshold, ShouldBeBetween, 0.0, 1.0)
			So(cfg.SuccessThreshold, ShouldBeLessThanOrEqualTo, cfg.StagnationBonus)
		})

		Convey("Environment overrides should win", func() {
			os.Setenv("QLIFE_SEARCH_POPULATION_SIZE", "8")
			Reset(func() { os.Unsetenv("QLIFE_SEARCH_POPULATION_SIZE") })

			So(NewConfig().PopulationSize, ShouldEqual, 8)
		})
	})
}
