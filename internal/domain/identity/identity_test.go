package identity_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	identity "pulpito/internal/domain/identity"
)

func TestKey(t *testing.T) {
	Convey("Given names with mixed case and diacritics", t, func() {
		Convey("When deriving canonical keys", func() {
			Convey("Then case is folded", func() {
				So(identity.Key("JOÃO"), ShouldEqual, "joao")
				So(identity.Key("joão"), ShouldEqual, "joao")
			})

			Convey("Then diacritics are stripped", func() {
				So(identity.Key("José"), ShouldEqual, "jose")
				So(identity.Key("Conceição"), ShouldEqual, "conceicao")
				So(identity.Key("André Müller"), ShouldEqual, "andre muller")
			})

			Convey("Then variant spellings share a key", func() {
				So(identity.Key("JOSÉ ALMEIDA"), ShouldEqual, identity.Key("jose almeida"))
				So(identity.Key("Ana Souza"), ShouldEqual, identity.Key("ANA SOUZA"))
			})

			Convey("Then plain ASCII names pass through lowered", func() {
				So(identity.Key("Bruno Costa"), ShouldEqual, "bruno costa")
			})
		})
	})
}

func TestDisplay(t *testing.T) {
	Convey("Given user-entered names", t, func() {
		Convey("When normalizing for display", func() {
			Convey("Then each word is capitalized", func() {
				So(identity.Display("ana souza"), ShouldEqual, "Ana Souza")
				So(identity.Display("ANA SOUZA"), ShouldEqual, "Ana Souza")
				So(identity.Display("aNa sOuZa"), ShouldEqual, "Ana Souza")
			})

			Convey("Then diacritics are preserved", func() {
				So(identity.Display("joão silva"), ShouldEqual, "João Silva")
				So(identity.Display("JOSÉ"), ShouldEqual, "José")
			})

			Convey("Then a capitalizable first rune handles multibyte runes", func() {
				So(identity.Display("ágata"), ShouldEqual, "Ágata")
			})

			Convey("Then interior whitespace runs survive untouched", func() {
				So(identity.Display("ana  souza"), ShouldEqual, "Ana  Souza")
			})

			Convey("Then empty input stays empty", func() {
				So(identity.Display(""), ShouldEqual, "")
			})
		})
	})
}

func TestStripDiacritics(t *testing.T) {
	Convey("Given strings containing combining marks", t, func() {
		Convey("When stripping diacritics", func() {
			Convey("Then marks are removed and base letters kept", func() {
				So(identity.StripDiacritics("ação"), ShouldEqual, "acao")
				So(identity.StripDiacritics("Inês"), ShouldEqual, "Ines")
			})

			Convey("Then mark-free strings are unchanged", func() {
				So(identity.StripDiacritics("plain text"), ShouldEqual, "plain text")
				So(identity.StripDiacritics(""), ShouldEqual, "")
			})
		})
	})
}
