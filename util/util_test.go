package util

import (
	"testing"

	"github.com/aizenverse/aizen/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "episode", "episodes"), ShouldEqual, "1 episode")
		So(Quantify(12, "episode", "episodes"), ShouldEqual, "12 episodes")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestEllipsize(t *testing.T) {
	Convey("Ellipsize", t, func() {
		So(Ellipsize("Frieren", 20), ShouldEqual, "Frieren")
		So(Ellipsize("Frieren: Beyond Journey's End", 8), ShouldEqual, "Frieren…")
		So(Ellipsize("葬送のフリーレン", 3), ShouldEqual, "葬送…")
	})
}

func TestClamp(t *testing.T) {
	Convey("Clamp", t, func() {
		So(Clamp(-1, 0, 4), ShouldEqual, 0)
		So(Clamp(9, 0, 4), ShouldEqual, 4)
		So(Clamp(2, 0, 4), ShouldEqual, 2)
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a directory on the in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		So(filesystem.API().MkdirAll("tmp/aizen", 0o755), ShouldBeNil)
		So(filesystem.API().WriteFile("tmp/aizen/a.json", []byte("{}"), 0o644), ShouldBeNil)

		Convey("Delete removes it recursively", func() {
			So(Delete("tmp/aizen"), ShouldBeNil)
			exists, _ := filesystem.API().Exists("tmp/aizen/a.json")
			So(exists, ShouldBeFalse)
		})
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[int]
		s.Push(1)
		s.Push(2)
		So(s.Len(), ShouldEqual, 2)
		So(s.Peek(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 1)
		So(s.Pop(), ShouldEqual, 0)
	})
}
