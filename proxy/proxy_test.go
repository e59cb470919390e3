package proxy

import (
	"testing"

	"github.com/aizenverse/aizen/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

const host = "http://localhost:8080"

func TestBuild(t *testing.T) {
	Convey("Given a proxy builder", t, func() {
		b := New(host)
		source := "https://cdn.example.net/hls/master.m3u8?token=a+b/c"
		headers := map[string]string{"Referer": "https://megacloud.tv/", "User-Agent": "aizen"}

		Convey("Build targets the proxy host", func() {
			out := b.Build(source, headers, "https://aizen.local")
			So(out, ShouldStartWith, host+"/?u=")
			So(out, ShouldContainSubstring, "&h=")
			So(out, ShouldContainSubstring, "&o=")

			Convey("And Decode recovers the original target", func() {
				target, err := b.Decode(out)
				So(err, ShouldBeNil)
				So(target.URL, ShouldEqual, source)
				So(target.Headers, ShouldResemble, headers)
				So(target.Origin, ShouldEqual, "https://aizen.local")
			})

			Convey("And building again returns it unchanged", func() {
				So(b.Build(out, headers, "https://aizen.local"), ShouldEqual, out)
			})
		})

		Convey("Empty headers and origin are left out", func() {
			out := b.Build(source, nil, "")
			So(out, ShouldNotContainSubstring, "&h=")
			So(out, ShouldNotContainSubstring, "&o=")

			target, err := b.Decode(out)
			So(err, ShouldBeNil)
			So(target.Headers, ShouldBeNil)
		})

		Convey("The url parameter is standard base64", func() {
			So(b.Build("abc", nil, ""), ShouldEqual, host+"/?u=YWJj")
		})

		Convey("Decode rejects foreign urls", func() {
			_, err := b.Decode(source)
			So(err, ShouldEqual, ErrNotProxied)
		})

		Convey("Decode rejects malformed parameters", func() {
			_, err := b.Decode(host + "/?u=%%%")
			So(err, ShouldNotBeNil)

			_, err = b.Decode(host + "/?u=***")
			So(err, ShouldNotBeNil)
		})
	})

	Convey("FromConfig reads the configured host", t, func() {
		viper.Set(key.ProxyURL, "http://proxy.internal:9000/")
		So(FromConfig().Host(), ShouldEqual, "http://proxy.internal:9000")
	})
}
