package source

import (
	"testing"

	"github.com/aizenverse/aizen/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAnimeIDFromEpisode(t *testing.T) {
	Convey("Given episode identifiers in the shapes the API produces", t, func() {
		Convey("The $episode$ marker splits the anime id off", func() {
			So(AnimeIDFromEpisode("one-piece-100$episode$2142"), ShouldEqual, "one-piece-100")
		})

		Convey("Dashed ids drop their last segment", func() {
			So(AnimeIDFromEpisode("frieren-18542-121087"), ShouldEqual, "frieren-18542")
		})

		Convey("Ids without separators are returned unchanged", func() {
			So(AnimeIDFromEpisode("standalone"), ShouldEqual, "standalone")
		})
	})
}

func TestEmbedID(t *testing.T) {
	Convey("EmbedID", t, func() {
		So(EmbedID("one-piece-100$episode$121087"), ShouldEqual, "21087")
		So(EmbedID("frieren-18542-121087"), ShouldEqual, "21087")
		So(EmbedID("short-42"), ShouldBeEmpty)
		So(EmbedID("frieren-18542$episode$107"), ShouldBeEmpty)
	})
}

func TestParsing(t *testing.T) {
	Convey("ParseCategory", t, func() {
		c, err := ParseCategory(" DUB ")
		So(err, ShouldBeNil)
		So(c, ShouldEqual, Dub)
		So(c.Other(), ShouldEqual, Sub)

		_, err = ParseCategory("raw")
		So(err, ShouldNotBeNil)
	})

	Convey("ParseServer", t, func() {
		s, err := ParseServer("VidCloud")
		So(err, ShouldBeNil)
		So(s, ShouldEqual, VidCloud)

		_, err = ParseServer("megacloud")
		So(err, ShouldNotBeNil)
	})
}

func TestModels(t *testing.T) {
	Convey("Given an anime detail", t, func() {
		detail := &AnimeDetail{
			AnimeSummary: AnimeSummary{ID: "frieren", Title: "Frieren", ReleaseDate: "2023", EpisodeCount: 28, Rating: 9.1},
			Episodes: []*Episode{
				{ID: "frieren-1", Number: 1, Title: "The Journey's End"},
				{ID: "frieren-2", Number: 2},
			},
		}

		Convey("Episodes are found by linear lookup", func() {
			So(detail.EpisodeIndex("frieren-2"), ShouldEqual, 1)
			So(detail.EpisodeIndex("missing"), ShouldEqual, -1)
		})

		Convey("Untitled episodes fall back to their number", func() {
			So(detail.Episodes[1].DisplayTitle(), ShouldEqual, "Episode 2")
			So(detail.Episodes[0].DisplayTitle(), ShouldEqual, "The Journey's End")
		})

		Convey("Posters fall back to the placeholder", func() {
			So(detail.PosterOrPlaceholder(), ShouldEqual, constant.PlaceholderImage)
		})

		Convey("Facts joins what is known", func() {
			So(detail.Facts(), ShouldEqual, "2023 • 28 eps • ★ 9.1")
		})
	})

	Convey("Given stream sources", t, func() {
		Convey("Primary is the first source", func() {
			s := &StreamSource{Sources: []*Video{{URL: "a", Quality: "1080p"}, {URL: "b"}}}
			So(s.Primary().MustGet().URL, ShouldEqual, "a")
		})

		Convey("Primary is empty without sources", func() {
			So((&StreamSource{}).Primary().IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("Given a page", t, func() {
		p := Page[AnimeSummary]{CurrentPage: 1, HasNextPage: true}
		So(p.NextPage(), ShouldEqual, 2)
		So(p.PrevPage(), ShouldEqual, 0)
	})
}
