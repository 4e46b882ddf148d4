package export_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/xuri/excelize/v2"

	. "github.com/smartystreets/goconvey/convey"

	export "pulpito/internal/adapters/export"
	model "pulpito/internal/domain/model"
)

func mustDate(s string) model.Date {
	d, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestWriteJSON(t *testing.T) {
	Convey("Given a roster to export", t, func() {
		roster := model.Roster{
			{Name: "João Silva", Date: mustDate("2024-01-07")},
			{Name: "Ana Souza", Date: mustDate("2024-01-14")},
		}

		Convey("When writing JSON", func() {
			var buf bytes.Buffer
			err := export.WriteJSON(&buf, roster)

			Convey("Then the output decodes back to the same roster", func() {
				So(err, ShouldBeNil)

				var out model.Roster
				So(json.Unmarshal(buf.Bytes(), &out), ShouldBeNil)
				So(out, ShouldResemble, roster)
			})
		})

		Convey("When writing an empty roster", func() {
			var buf bytes.Buffer
			err := export.WriteJSON(&buf, model.Roster{})

			Convey("Then an empty array is produced", func() {
				So(err, ShouldBeNil)
				So(buf.String(), ShouldEqual, "[]\n")
			})
		})
	})
}

func TestWriteXLSX(t *testing.T) {
	Convey("Given a roster to export as a spreadsheet", t, func() {
		roster := model.Roster{
			{Name: "João Silva", Date: mustDate("2024-01-07")},
			{Name: "Ana Souza", Date: mustDate("2024-01-14")},
		}

		Convey("When writing the workbook", func() {
			var buf bytes.Buffer
			err := export.WriteXLSX(&buf, roster)
			So(err, ShouldBeNil)

			f, err := excelize.OpenReader(&buf)
			So(err, ShouldBeNil)
			defer func() { _ = f.Close() }()

			Convey("Then the only sheet is the roster sheet", func() {
				So(f.GetSheetList(), ShouldResemble, []string{"Oradores"})
			})

			Convey("Then the header and rows carry name and date columns", func() {
				rows, err := f.GetRows("Oradores")
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 3)
				So(rows[0], ShouldResemble, []string{"Nome", "Data"})
				So(rows[1], ShouldResemble, []string{"João Silva", "2024-01-07"})
				So(rows[2], ShouldResemble, []string{"Ana Souza", "2024-01-14"})
			})
		})

		Convey("When writing an empty roster", func() {
			var buf bytes.Buffer
			err := export.WriteXLSX(&buf, model.Roster{})
			So(err, ShouldBeNil)

			f, err := excelize.OpenReader(&buf)
			So(err, ShouldBeNil)
			defer func() { _ = f.Close() }()

			rows, err := f.GetRows("Oradores")
			So(err, ShouldBeNil)

			Convey("Then only the header row is present", func() {
				So(rows, ShouldHaveLength, 1)
			})
		})
	})
}
