package config

import (
	"errors"
	"testing"

	"github.com/aizenverse/aizen/filesystem"
	"github.com/aizenverse/aizen/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Should use the documented recency caps", func() {
			_ = Setup()
			So(viper.GetInt(key.HistoryMax), ShouldEqual, 50)
			So(viper.GetInt(key.HistoryContinueMax), ShouldEqual, 20)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("api.base_url"), ShouldEqual, "api_base_url")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.ProxyURL]

		Convey("Its env name carries the application prefix", func() {
			So(field.Env(), ShouldEqual, "AIZEN_PROXY_URL")
		})

		Convey("Its type name follows the default value", func() {
			So(field.typeName(), ShouldEqual, "string")
			timeout := Default[key.APITimeout]
			So(timeout.typeName(), ShouldEqual, "int")
		})
	})
}

func TestLookup(t *testing.T) {
	Convey("Lookup", t, func() {
		Convey("Finds registered keys", func() {
			field, err := Lookup(key.PlayerServer)
			So(err, ShouldBeNil)
			So(field.Value, ShouldEqual, "vidcloud")
		})

		Convey("Suggests the closest key for a typo", func() {
			_, err := Lookup("player.servr")
			var unknown *UnknownKeyError
			So(errors.As(err, &unknown), ShouldBeTrue)
			So(unknown.Closest, ShouldEqual, key.PlayerServer)
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Given registered fields", t, func() {
		parse := func(k string, raw ...string) (any, error) {
			field := Default[k]
			return field.Parse(raw)
		}

		Convey("Integers are converted", func() {
			v, err := parse(key.HistoryMax, "75")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 75)

			_, err = parse(key.HistoryMax, "many")
			So(err, ShouldNotBeNil)

			_, err = parse(key.APITimeout, "-1")
			So(err, ShouldNotBeNil)
		})

		Convey("Booleans are converted", func() {
			v, err := parse(key.HomeFallback, "false")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, false)

			_, err = parse(key.HomeFallback, "maybe")
			So(err, ShouldNotBeNil)
		})

		Convey("Enumerated keys only take their listed values", func() {
			v, err := parse(key.PlayerServer, "streamtape")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "streamtape")

			_, err = parse(key.PlayerServer, "megacloud")
			So(err, ShouldNotBeNil)

			_, err = parse(key.Player, "vlc")
			So(err, ShouldNotBeNil)

			_, err = parse(key.LogsLevel, "debug")
			So(err, ShouldBeNil)
		})

		Convey("Free-form strings are kept", func() {
			v, err := parse(key.ProxyURL, "http://proxy.local:8080")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "http://proxy.local:8080")
		})

		Convey("A missing value is rejected", func() {
			_, err := parse(key.ProxyURL)
			So(err, ShouldNotBeNil)
		})
	})
}
