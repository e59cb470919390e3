package favorites

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/aizenverse/aizen/filesystem"
	"github.com/aizenverse/aizen/source"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSet(t *testing.T) {
	Convey("Given an empty set", t, func() {
		path := filepath.Join("favorites", "set.json")
		_ = filesystem.API().Remove(path)
		set := New(path)

		Convey("Toggling an id adds it", func() {
			So(set.Toggle("frieren"), ShouldBeTrue)
			So(set.Has("frieren"), ShouldBeTrue)

			Convey("Toggling it again removes it", func() {
				So(set.Toggle("frieren"), ShouldBeFalse)
				So(set.Has("frieren"), ShouldBeFalse)
				So(set.List(), ShouldBeEmpty)
			})
		})

		Convey("Add keeps insertion order and ignores duplicates", func() {
			set.Add("a")
			set.Add("b")
			set.Add("a")
			So(set.List(), ShouldResemble, []string{"a", "b"})

			Convey("Remove drops only that id", func() {
				set.Remove("a")
				So(set.List(), ShouldResemble, []string{"b"})
			})

			Convey("The set survives reopening", func() {
				So(New(path).List(), ShouldResemble, []string{"a", "b"})
			})
		})
	})

	Convey("Favorites and the watchlist are separate sets", t, func() {
		Favorites().Add("solo-leveling")
		So(Watchlist().Has("solo-leveling"), ShouldBeFalse)
		Favorites().Remove("solo-leveling")
	})
}

type stubResolver map[string]string

func (s stubResolver) Info(_ context.Context, id string) (*source.AnimeDetail, error) {
	title, ok := s[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &source.AnimeDetail{AnimeSummary: source.AnimeSummary{ID: id, Title: title}}, nil
}

func TestResolve(t *testing.T) {
	Convey("Resolve keeps the stored order and skips unknown ids", t, func() {
		r := stubResolver{"frieren": "Frieren", "dandadan": "Dandadan"}
		animes := Resolve(context.Background(), r, []string{"dandadan", "gone", "frieren"})

		So(animes, ShouldHaveLength, 2)
		So(animes[0].Title, ShouldEqual, "Dandadan")
		So(animes[1].Title, ShouldEqual, "Frieren")
	})
}
