package config_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	config "pulpito/internal/config"
)

func TestNew(t *testing.T) {
	Convey("Given a default configuration", t, func() {
		cfg := config.New()

		Convey("Then it carries the documented defaults", func() {
			So(cfg, ShouldNotBeNil)
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.Addr, ShouldEqual, ":9080")
			So(cfg.DataFile, ShouldEqual, "meeting-speakers.json")
			So(cfg.DedupeSize, ShouldEqual, 10_000)
			So(cfg.MaxSpeakers, ShouldEqual, 3)
			So(cfg.MaxRosterLimit, ShouldEqual, 1_000)
		})
	})
}
