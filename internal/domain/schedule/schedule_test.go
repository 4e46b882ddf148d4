package schedule_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	model "pulpito/internal/domain/model"
	schedule "pulpito/internal/domain/schedule"
)

func mustDate(s string) model.Date {
	d, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestWeeksSince(t *testing.T) {
	Convey("Given a fixed notion of today", t, func() {
		today := mustDate("2024-03-01")

		Convey("When the date is today", func() {
			So(schedule.WeeksSince(today, today), ShouldEqual, 0)
		})

		Convey("When the date is less than a week ago", func() {
			So(schedule.WeeksSince(mustDate("2024-02-26"), today), ShouldEqual, 0)
			So(schedule.WeeksSince(mustDate("2024-02-24"), today), ShouldEqual, 0)
		})

		Convey("When the date is exactly whole weeks ago", func() {
			So(schedule.WeeksSince(mustDate("2024-02-23"), today), ShouldEqual, 1)
			So(schedule.WeeksSince(mustDate("2024-02-09"), today), ShouldEqual, 3)
		})

		Convey("When the date is some weeks and days ago", func() {
			// 10 days elapsed: one whole week.
			So(schedule.WeeksSince(mustDate("2024-02-20"), today), ShouldEqual, 1)
			// 20 days elapsed: two whole weeks.
			So(schedule.WeeksSince(mustDate("2024-02-10"), today), ShouldEqual, 2)
		})

		Convey("When the date lies in the future", func() {
			Convey("Then partial future weeks round down, not toward zero", func() {
				So(schedule.WeeksSince(mustDate("2024-03-04"), today), ShouldEqual, -1)
				So(schedule.WeeksSince(mustDate("2024-03-08"), today), ShouldEqual, -1)
				So(schedule.WeeksSince(mustDate("2024-03-09"), today), ShouldEqual, -2)
			})
		})
	})
}
