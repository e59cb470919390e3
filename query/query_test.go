package query

import (
	"testing"

	"github.com/aizenverse/aizen/filesystem"
	"github.com/aizenverse/aizen/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given remembered queries", t, func() {
		So(Remember("frieren", 1), ShouldBeNil)
		So(Remember("fire force", 10), ShouldBeNil)

		Convey("Suggestions are ordered by rank", func() {
			s := SuggestMany("fr")
			So(len(s), ShouldBeGreaterThanOrEqualTo, 1)
			So(s[0], ShouldEqual, "fire force")
		})

		Convey("Remembering again updates suggestions", func() {
			So(Remember("frieren", 100), ShouldBeNil)
			So(Suggest("fr").MustGet(), ShouldEqual, "frieren")
		})

		Convey("Nothing is suggested when the feature is off", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			defer viper.Set(key.SearchShowQuerySuggestions, true)
			So(Suggest("fr").IsAbsent(), ShouldBeTrue)
		})

		Convey("Blank queries are ignored", func() {
			So(Remember("   ", 1), ShouldBeNil)
			So(SuggestMany("zzzz"), ShouldBeEmpty)
		})
	})

	Convey("sanitize trims and lowercases", t, func() {
		So(sanitize("  FRIEREN  "), ShouldEqual, "frieren")
	})
}
