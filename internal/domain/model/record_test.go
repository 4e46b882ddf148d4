package model_test

import (
	"encoding/json"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	model "pulpito/internal/domain/model"
)

func TestDate(t *testing.T) {
	Convey("Given ISO date strings", t, func() {
		Convey("When parsing a valid date", func() {
			d, err := model.ParseDate("2024-01-07")

			Convey("Then the value round-trips through String", func() {
				So(err, ShouldBeNil)
				So(d.String(), ShouldEqual, "2024-01-07")
				So(d.IsZero(), ShouldBeFalse)
			})
		})

		Convey("When parsing malformed input", func() {
			cases := []string{"", "07/01/2024", "2024-1-7", "2024-13-01", "yesterday"}
			for _, c := range cases {
				_, err := model.ParseDate(c)
				So(err, ShouldNotBeNil)
			}
		})

		Convey("When comparing dates", func() {
			earlier, _ := model.ParseDate("2024-01-07")
			later, _ := model.ParseDate("2024-01-14")

			So(later.After(earlier), ShouldBeTrue)
			So(earlier.After(later), ShouldBeFalse)
			So(earlier.After(earlier), ShouldBeFalse)
			So(earlier.Before(later), ShouldBeTrue)
			So(earlier.Equal(earlier), ShouldBeTrue)
			So(earlier.DaysUntil(later), ShouldEqual, 7)
			So(later.DaysUntil(earlier), ShouldEqual, -7)
		})

		Convey("When truncating a timestamp", func() {
			ts := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)
			d := model.DateOf(ts)

			So(d.String(), ShouldEqual, "2024-03-01")
		})
	})
}

func TestRecordJSON(t *testing.T) {
	Convey("Given a record", t, func() {
		d, _ := model.ParseDate("2024-01-07")
		rec := model.Record{Name: "João Silva", Date: d}

		Convey("When marshaling", func() {
			data, err := json.Marshal(rec)

			Convey("Then the date is a plain ISO string", func() {
				So(err, ShouldBeNil)
				So(string(data), ShouldEqual, `{"name":"João Silva","date":"2024-01-07"}`)
			})
		})

		Convey("When unmarshaling the backup file shape", func() {
			var roster model.Roster
			err := json.Unmarshal([]byte(`[{"name":"Ana Souza","date":"2024-01-14"}]`), &roster)

			So(err, ShouldBeNil)
			So(roster, ShouldHaveLength, 1)
			So(roster[0].Name, ShouldEqual, "Ana Souza")
			So(roster[0].Date.String(), ShouldEqual, "2024-01-14")
		})

		Convey("When unmarshaling a non-string date", func() {
			var got model.Record
			err := json.Unmarshal([]byte(`{"name":"Ana","date":20240114}`), &got)

			So(err, ShouldNotBeNil)
		})

		Convey("When unmarshaling a malformed date string", func() {
			var got model.Record
			err := json.Unmarshal([]byte(`{"name":"Ana","date":"14/01/2024"}`), &got)

			So(err, ShouldNotBeNil)
		})
	})
}
