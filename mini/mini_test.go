package mini

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/aizenverse/aizen/constant"
	"github.com/aizenverse/aizen/filesystem"
	"github.com/aizenverse/aizen/history"
	"github.com/aizenverse/aizen/key"
	"github.com/aizenverse/aizen/player"
	"github.com/aizenverse/aizen/source"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.ProxyURL, constant.DefaultProxyURL)
	viper.Set(key.PlayerEmbedURL, constant.DefaultEmbedURL)
	viper.Set(key.PlayerCategory, string(source.Sub))
	viper.Set(key.PlayerServer, string(source.VidCloud))
	viper.Set(key.HistorySaveOnWatch, true)
	viper.Set(key.HistoryMax, 50)
	viper.Set(key.HistoryContinueMax, 20)
}

// scripted answers prompts in order. Select answers are option labels.
type scripted struct {
	answers []string
	asked   []string
}

func (s *scripted) pop(message string) (string, error) {
	s.asked = append(s.asked, message)
	if len(s.answers) == 0 {
		return "", terminal.InterruptErr
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func (s *scripted) Input(message string, _ func(string) []string) (string, error) {
	return s.pop(message)
}

func (s *scripted) Select(message string, options []string) (int, error) {
	answer, err := s.pop(message)
	if err != nil {
		return 0, err
	}

	_, i, ok := lo.FindIndexOf(options, func(o string) bool { return o == answer })
	if !ok {
		return 0, fmt.Errorf("%q is not one of %v", answer, options)
	}
	return i, nil
}

type fakeClient struct {
	watched []source.Category
}

func frieren() *source.AnimeDetail {
	return &source.AnimeDetail{
		AnimeSummary: source.AnimeSummary{ID: "frieren-18542", Title: "Frieren"},
		Episodes: []*source.Episode{
			{ID: "frieren-18542$episode$107257", Number: 1, Title: "The Journey's End"},
			{ID: "frieren-18542$episode$107258", Number: 2},
		},
	}
}

func (f *fakeClient) Search(_ context.Context, q string, page int) (*source.Page[*source.AnimeSummary], error) {
	if q != "frieren" {
		return &source.Page[*source.AnimeSummary]{CurrentPage: page}, nil
	}
	return &source.Page[*source.AnimeSummary]{CurrentPage: page, Results: []*source.AnimeSummary{&frieren().AnimeSummary}}, nil
}

func (f *fakeClient) Info(_ context.Context, id string) (*source.AnimeDetail, error) {
	if id != "frieren-18542" {
		return nil, errors.New("not found")
	}
	return frieren(), nil
}

func (f *fakeClient) InfoForEpisode(ctx context.Context, episodeID string) (*source.AnimeDetail, error) {
	return f.Info(ctx, source.AnimeIDFromEpisode(episodeID))
}

func (f *fakeClient) Watch(_ context.Context, _ string, _ source.Server, category source.Category) (*source.StreamSource, error) {
	f.watched = append(f.watched, category)
	return &source.StreamSource{Sources: []*source.Video{{URL: "https://cdn.example.net/master.m3u8"}}}, nil
}

type fakePlayer struct {
	played []player.Target
}

func (f *fakePlayer) Name() string { return "fake" }

func (f *fakePlayer) Play(_ context.Context, target player.Target) error {
	f.played = append(f.played, target)
	return nil
}

func TestRun(t *testing.T) {
	Convey("Given a scripted session", t, func() {
		history.Continue().Clear()
		history.History().Clear()

		client := &fakeClient{}
		p := &fakePlayer{}
		prompts := &scripted{}
		m := newMini(context.Background(), client, p, prompts)

		Convey("Search, pick, play, go to the next episode and quit", func() {
			prompts.answers = []string{
				"frieren",
				"Frieren",
				"1. The Journey's End",
				string(next),
				string(quit),
			}

			So(run(m, &Options{}), ShouldBeNil)
			So(p.played, ShouldHaveLength, 2)
			So(p.played[0].Title, ShouldEqual, "Frieren · The Journey's End")
			So(p.played[1].Title, ShouldEqual, "Frieren · Episode 2")

			latest, ok := history.Latest().Get()
			So(ok, ShouldBeTrue)
			So(latest.Number, ShouldEqual, 2)
		})

		Convey("Switching the category opens the episode again", func() {
			prompts.answers = []string{
				"frieren",
				"Frieren",
				"2. Episode 2",
				"Switch to dub",
				string(quit),
			}

			So(run(m, &Options{}), ShouldBeNil)
			So(client.watched, ShouldResemble, []source.Category{source.Sub, source.Dub})
			So(p.played, ShouldHaveLength, 2)
		})

		Convey("Back from the episode list returns to the results", func() {
			prompts.answers = []string{"frieren", "Frieren", string(back), string(quit)}

			So(run(m, &Options{}), ShouldBeNil)
			So(prompts.asked[len(prompts.asked)-1], ShouldEqual, `Results for "frieren"`)
			So(p.played, ShouldBeEmpty)
		})

		Convey("An empty query quits", func() {
			prompts.answers = []string{""}
			So(run(m, &Options{}), ShouldBeNil)
			So(prompts.asked, ShouldHaveLength, 1)
		})

		Convey("Continue with an empty list falls back to search", func() {
			prompts.answers = []string{""}
			So(run(m, &Options{Continue: true}), ShouldBeNil)
			So(prompts.asked, ShouldResemble, []string{"Query (leave empty to quit)"})
		})

		Convey("Ctrl+C ends the session quietly", func() {
			So(run(m, &Options{}), ShouldBeNil)
		})
	})
}
