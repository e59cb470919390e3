package history

import (
	"testing"
	"time"

	"github.com/aizenverse/aizen/filesystem"
	"github.com/aizenverse/aizen/key"
	"github.com/aizenverse/aizen/source"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.HistoryMax, 50)
	viper.Set(key.HistoryContinueMax, 20)
	viper.Set(key.HistorySaveOnWatch, true)
}

func TestRecord(t *testing.T) {
	Convey("Given an anime with episodes", t, func() {
		History().Clear()
		Continue().Clear()

		at := time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)
		now = func() time.Time { return at }

		anime := &source.AnimeDetail{
			AnimeSummary: source.AnimeSummary{ID: "frieren-18542", Title: "Frieren"},
			Episodes: []*source.Episode{
				{ID: "frieren-18542$episode$107257", Number: 1, Title: "The Journey's End"},
				{ID: "frieren-18542$episode$107258", Number: 2},
			},
		}

		Convey("When watching the first episode", func() {
			Record(anime, anime.Episodes[0])

			Convey("It is in the history under its episode label", func() {
				entries := History().List()
				So(len(entries), ShouldEqual, 1)
				So(entries[0], ShouldResemble, WatchEntry{
					ID:         anime.Episodes[0].ID,
					Title:      "Episode 1",
					AnimeTitle: "Frieren",
					AnimeID:    "frieren-18542",
					WatchedAt:  at,
				})
			})

			Convey("It can be resumed", func() {
				latest := Latest()
				So(latest.IsPresent(), ShouldBeTrue)
				So(latest.MustGet().Episode().Title, ShouldEqual, "The Journey's End")
			})

			Convey("And then the second one", func() {
				Record(anime, anime.Episodes[1])

				Convey("The newest episode comes first", func() {
					So(Latest().MustGet().Number, ShouldEqual, 2)
					So(History().List()[1].Title, ShouldEqual, "Episode 1")
				})
			})

			Convey("And watching it again", func() {
				Record(anime, anime.Episodes[0])

				Convey("It is not duplicated", func() {
					So(len(History().List()), ShouldEqual, 1)
					So(len(Continue().List()), ShouldEqual, 1)
				})
			})
		})

		Convey("When saving is disabled", func() {
			viper.Set(key.HistorySaveOnWatch, false)
			defer viper.Set(key.HistorySaveOnWatch, true)
			Record(anime, anime.Episodes[0])

			Convey("Nothing is recorded", func() {
				So(History().List(), ShouldBeEmpty)
				So(Latest().IsAbsent(), ShouldBeTrue)
			})
		})
	})
}
