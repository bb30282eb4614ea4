package util

import (
	"testing"

	"github.com/lifo-cli/lifo/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "value", "values"), ShouldEqual, "1 value")
		So(Quantify(0, "value", "values"), ShouldEqual, "0 values")
		So(Quantify(2, "value", "values"), ShouldEqual, "2 values")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		fs := filesystem.API()

		Convey("Should remove a directory tree", func() {
			So(fs.MkdirAll("/logs/old", 0o755), ShouldBeNil)
			So(fs.WriteFile("/logs/old/a.log", []byte("x"), 0o644), ShouldBeNil)
			So(Delete("/logs"), ShouldBeNil)
			So(lo.Must(fs.Exists("/logs")), ShouldBeFalse)
		})

		Convey("Should remove a single file", func() {
			So(fs.WriteFile("/a.log", []byte("x"), 0o644), ShouldBeNil)
			So(Delete("/a.log"), ShouldBeNil)
			So(lo.Must(fs.Exists("/a.log")), ShouldBeFalse)
		})

		Convey("Should fail for a missing path", func() {
			So(Delete("/missing"), ShouldNotBeNil)
		})
	})
}
