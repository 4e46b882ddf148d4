package site_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	site "pulpito/internal/adapters/http/site"
)

func TestRegister(t *testing.T) {
	Convey("Given the embedded site", t, func() {
		Convey("When registered on a mux", func() {
			mux := http.NewServeMux()
			site.Register(context.Background(), mux)
			srv := httptest.NewServer(mux)
			defer srv.Close()

			Convey("Then the root serves the form page", func() {
				resp, err := http.Get(srv.URL + "/")
				So(err, ShouldBeNil)
				defer resp.Body.Close()

				So(resp.StatusCode, ShouldEqual, http.StatusOK)

				body, err := io.ReadAll(resp.Body)
				So(err, ShouldBeNil)
				So(string(body), ShouldContainSubstring, "Oradores da Reunião")
			})
		})

		Convey("When registered on a nil mux", func() {
			So(func() { site.Register(context.Background(), nil) }, ShouldPanic)
		})
	})
}
