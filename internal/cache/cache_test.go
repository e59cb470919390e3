package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aizenverse/aizen/filesystem"
	"github.com/aizenverse/aizen/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

type payload struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

func TestKey(t *testing.T) {
	Convey("Key", t, func() {
		Convey("Ignores surrounding whitespace", func() {
			So(Key("search", " Frieren "), ShouldEqual, Key("search", "Frieren"))
		})

		Convey("Keeps parts that differ only by case apart", func() {
			So(Key("info", "Frieren-18542"), ShouldNotEqual, Key("info", "frieren-18542"))
		})

		Convey("Keeps parts apart", func() {
			So(Key("ab", "c"), ShouldNotEqual, Key("a", "bc"))
		})

		Convey("Is a hex sha256 digest", func() {
			So(len(Key("x")), ShouldEqual, 64)
		})
	})
}

func TestFile(t *testing.T) {
	Convey("Given a file cache", t, func() {
		ctx := context.Background()
		now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		dir := filepath.Join("cache", "responses", t.Name())
		store := NewFile(dir)
		store.now = func() time.Time { return now }

		Convey("A stored value can be read back while fresh", func() {
			So(store.Set(ctx, "k", payload{Title: "Frieren", Count: 28}, time.Hour), ShouldBeNil)

			var got payload
			So(store.Get(ctx, "k", &got), ShouldBeTrue)
			So(got, ShouldResemble, payload{Title: "Frieren", Count: 28})

			Convey("And is a miss once expired", func() {
				now = now.Add(2 * time.Hour)
				So(store.Get(ctx, "k", &got), ShouldBeFalse)

				Convey("And is pruned by garbage collection", func() {
					So(store.Prune(), ShouldEqual, 1)
					exists, _ := filesystem.API().Exists(store.path("k"))
					So(exists, ShouldBeFalse)
				})
			})
		})

		Convey("A non-positive ttl stores nothing", func() {
			So(store.Set(ctx, "zero", payload{}, 0), ShouldBeNil)
			var got payload
			So(store.Get(ctx, "zero", &got), ShouldBeFalse)
		})

		Convey("Missing keys are misses", func() {
			var got payload
			So(store.Get(ctx, "missing", &got), ShouldBeFalse)
		})

		Convey("Corrupt entries are misses and get pruned", func() {
			So(filesystem.API().MkdirAll(dir, 0o755), ShouldBeNil)
			So(filesystem.API().WriteFile(store.path("bad"), []byte("{"), 0o644), ShouldBeNil)

			var got payload
			So(store.Get(ctx, "bad", &got), ShouldBeFalse)
			So(store.Prune(), ShouldBeGreaterThanOrEqualTo, 1)
		})
	})
}

func TestOpen(t *testing.T) {
	Convey("Given no redis address", t, func() {
		viper.Set(key.CacheRedisAddr, "")

		Convey("Open returns the file backend", func() {
			_, ok := Open(context.Background()).(*File)
			So(ok, ShouldBeTrue)
		})
	})

	Convey("Given an unreachable redis address", t, func() {
		viper.Set(key.CacheRedisAddr, "127.0.0.1:1")
		defer viper.Set(key.CacheRedisAddr, "")

		Convey("Open falls back to the file backend", func() {
			_, ok := Open(context.Background()).(*File)
			So(ok, ShouldBeTrue)
		})
	})
}
