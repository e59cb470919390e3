package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/aizenverse/aizen/constant"
	"github.com/aizenverse/aizen/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		for _, tc := range []struct {
			a, b string
			want int
		}{
			{"1.2.3", "1.2.3", 0},
			{"v1.2.4", "1.2.3", 1},
			{"0.9.9", "1.0.0", -1},
			{"2.0.0", "v1.99.99", 1},
		} {
			got, err := Compare(tc.a, tc.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, tc.want)
		}

		_, err := Compare("latest", "1.0.0")
		So(err, ShouldNotBeNil)
	})
}

func TestLatest(t *testing.T) {
	Convey("Given a release endpoint", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v9.8.7"}`))
		}))
		defer srv.Close()

		old := releasesURL
		releasesURL = srv.URL
		defer func() { releasesURL = old }()

		Convey("Latest strips the v prefix", func() {
			ver, err := Latest(context.Background())
			So(err, ShouldBeNil)
			So(ver, ShouldEqual, "9.8.7")
		})
	})
}

func TestCurrent(t *testing.T) {
	Convey("Current describes the running binary", t, func() {
		build := Current()
		So(build.App, ShouldEqual, constant.App)
		So(build.Version, ShouldEqual, constant.Version)
		So(build.Platform, ShouldEqual, runtime.GOOS+"/"+runtime.GOARCH)

		rows := build.Rows()
		So(rows[0], ShouldResemble, [2]string{"Version", constant.Version})
		So(rows, ShouldHaveLength, 6)
	})
}
