// Package watch prepares an episode for playback: it resolves the parent anime,
// the stream links and the proxied and embeddable player URLs, and records the visit.
package watch

import (
	"context"
	"fmt"
	"strings"

	"github.com/aizenverse/aizen/history"
	"github.com/aizenverse/aizen/key"
	"github.com/aizenverse/aizen/log"
	"github.com/aizenverse/aizen/navigation"
	"github.com/aizenverse/aizen/player"
	"github.com/aizenverse/aizen/proxy"
	"github.com/aizenverse/aizen/source"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// forwardedHeaders are the upstream headers the proxy must replay.
var forwardedHeaders = []string{"Referer", "User-Agent"}

// Resolver is the part of the API client a session needs.
type Resolver interface {
	InfoForEpisode(ctx context.Context, episodeID string) (*source.AnimeDetail, error)
	Watch(ctx context.Context, episodeID string, server source.Server, category source.Category) (*source.StreamSource, error)
}

// Session is an opened episode.
type Session struct {
	Anime     *source.AnimeDetail
	Episode   *source.Episode
	Navigator *navigation.Episodes
	Category  source.Category

	// Stream and StreamErr are exclusive. A stream failure is not fatal,
	// the embedded player works without it.
	Stream     *source.StreamSource
	StreamErr  error
	ProxiedURL string
	EmbedURL   string
}

// Open resolves everything needed to play episodeID in the given category.
// Only a failure to find the anime is returned as an error.
func Open(ctx context.Context, r Resolver, episodeID string, category source.Category) (*Session, error) {
	if category == "" {
		category = source.Category(viper.GetString(key.PlayerCategory))
	}

	anime, err := r.InfoForEpisode(ctx, episodeID)
	if err != nil {
		return nil, fmt.Errorf("resolve anime for episode %q: %w", episodeID, err)
	}

	s := &Session{
		Anime:     anime,
		Navigator: navigation.NewEpisodes(anime.Episodes, episodeID),
		Category:  category,
		EmbedURL:  EmbedURL(episodeID, category),
	}

	episode, found := anime.Episode(episodeID)
	if found {
		s.Episode = episode
	} else {
		s.Episode = &source.Episode{ID: episodeID}
	}

	server := source.Server(viper.GetString(key.PlayerServer))
	s.Stream, s.StreamErr = r.Watch(ctx, episodeID, server, category)
	if s.StreamErr != nil {
		log.WithFields(logrus.Fields{
			"episode":  episodeID,
			"server":   server,
			"category": category,
		}).WithError(s.StreamErr).Warn("failed to resolve stream links")
	} else {
		s.ProxiedURL = proxiedURL(s.Stream)
	}

	if found {
		history.Record(anime, episode)
	}

	return s, nil
}

// Title is "Anime · Episode" for window titles and banners.
func (s *Session) Title() string {
	return fmt.Sprintf("%s · %s", s.Anime.Title, s.Episode.DisplayTitle())
}

// Prev is the id of the previous episode, if there is one.
func (s *Session) Prev() mo.Option[string] {
	return episodeID(s.Navigator.Prev())
}

// Next is the id of the following episode, if there is one.
func (s *Session) Next() mo.Option[string] {
	return episodeID(s.Navigator.Next())
}

// Headers are the upstream headers of the stream, limited to those the proxy replays.
func (s *Session) Headers() map[string]string {
	if s.Stream == nil {
		return nil
	}
	return lo.PickByKeys(s.Stream.Headers, forwardedHeaders)
}

// Target is what a player should open. The proxied stream is preferred, the embed page is
// used when embed is set or no stream could be resolved.
func (s *Session) Target(embed bool) (player.Target, error) {
	if embed || s.ProxiedURL == "" {
		if s.EmbedURL == "" {
			return player.Target{}, fmt.Errorf("nothing to play for %s", s.Title())
		}
		return player.Target{URL: s.EmbedURL, Title: s.Title()}, nil
	}

	target := player.Target{URL: s.ProxiedURL, Title: s.Title()}
	for _, sub := range s.Stream.Subtitles {
		target.Subtitles = append(target.Subtitles, sub.URL)
	}
	return target, nil
}

// Play hands the session to p. The browser player always gets the embed page.
func (s *Session) Play(ctx context.Context, p player.Player) error {
	target, err := s.Target(p.Name() == player.NameBrowser)
	if err != nil {
		return err
	}
	return p.Play(ctx, target)
}

func episodeID(e mo.Option[*source.Episode]) mo.Option[string] {
	if ep, ok := e.Get(); ok {
		return mo.Some(ep.ID)
	}
	return mo.None[string]()
}

func proxiedURL(stream *source.StreamSource) string {
	video, ok := stream.Primary().Get()
	if !ok {
		return ""
	}

	headers := lo.PickByKeys(stream.Headers, forwardedHeaders)
	return proxy.FromConfig().Build(video.URL, headers, viper.GetString(key.ProxyOrigin))
}

// EmbedURL is the third-party player page for an episode.
// It is empty when the episode has no embed id.
func EmbedURL(episodeID string, category source.Category) string {
	id := source.EmbedID(episodeID)
	if id == "" {
		return ""
	}

	template := viper.GetString(key.PlayerEmbedURL)
	if strings.Count(template, "%s") != 2 {
		log.Warnf("malformed %s %q, expected two %%s verbs", key.PlayerEmbedURL, template)
		return ""
	}
	return fmt.Sprintf(template, id, category)
}
