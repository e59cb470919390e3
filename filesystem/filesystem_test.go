package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestGacheFs(t *testing.T) {
	Convey("Given the gache adapter over an in-memory backend", t, func() {
		SetMemMapFs()
		fs := GacheFs{}
		dir := filepath.Join("store", "nested")

		Convey("MkdirAll creates directories on the active backend", func() {
			So(fs.MkdirAll(dir, os.ModePerm), ShouldBeNil)
			isDir, err := API().IsDir(dir)
			So(err, ShouldBeNil)
			So(isDir, ShouldBeTrue)
		})

		Convey("OpenFile writes through to the active backend", func() {
			So(fs.MkdirAll(dir, os.ModePerm), ShouldBeNil)
			path := filepath.Join(dir, "blob.json")

			f, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
			So(err, ShouldBeNil)
			_, err = f.Write([]byte(`{"ok":true}`))
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)

			data, err := API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `{"ok":true}`)
		})
	})
}

func TestSetReadOnly(t *testing.T) {
	Convey("Given a read-only view of an in-memory backend", t, func() {
		SetMemMapFs()
		So(API().WriteFile("kept.json", []byte("{}"), 0o644), ShouldBeNil)
		SetReadOnly()
		defer SetMemMapFs()

		Convey("Existing files are still readable", func() {
			data, err := API().ReadFile("kept.json")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "{}")
		})

		Convey("Writes fail", func() {
			So(API().WriteFile("new.json", []byte("{}"), 0o644), ShouldNotBeNil)
			_, err := GacheFs{}.OpenFile("kept.json", os.O_WRONLY|os.O_TRUNC, 0o644)
			So(err, ShouldNotBeNil)
		})
	})
}
