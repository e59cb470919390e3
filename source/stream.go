package source

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Server is a streaming server the API can resolve links from.
type Server string

const (
	VidStreaming Server = "vidstreaming"
	VidCloud     Server = "vidcloud"
	StreamTape   Server = "streamtape"
)

// Servers lists every supported server.
var Servers = []Server{VidStreaming, VidCloud, StreamTape}

// ParseServer validates a server name.
func ParseServer(s string) (Server, error) {
	server := Server(strings.ToLower(strings.TrimSpace(s)))
	if !lo.Contains(Servers, server) {
		return "", fmt.Errorf("unknown server %q, expected one of %v", s, Servers)
	}
	return server, nil
}

// Category selects subtitled or dubbed audio.
type Category string

const (
	Sub Category = "sub"
	Dub Category = "dub"
)

// ParseCategory validates a category name.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case Sub, Dub:
		return c, nil
	default:
		return "", fmt.Errorf("unknown category %q, expected sub or dub", s)
	}
}

// Other returns the opposite category.
func (c Category) Other() Category {
	if c == Dub {
		return Sub
	}
	return Dub
}

// Video is one playable rendition of an episode.
type Video struct {
	URL     string `json:"url"`
	Quality string `json:"quality,omitempty"`
	IsM3U8  bool   `json:"isM3U8"`
	Server  string `json:"server,omitempty"`
}

func (v *Video) String() string {
	if v.Quality != "" {
		return v.Quality
	}
	return v.URL
}

// Subtitle is a caption track.
type Subtitle struct {
	Lang string `json:"lang"`
	URL  string `json:"url"`
}

// StreamSource is everything needed to play an episode.
type StreamSource struct {
	Sources   []*Video          `json:"sources"`
	Headers   map[string]string `json:"headers,omitempty"`
	Subtitles []*Subtitle       `json:"subtitles,omitempty"`
	Download  string            `json:"download,omitempty"`
}

// Primary is the source auto-selected for playback, the first one listed.
func (s *StreamSource) Primary() mo.Option[*Video] {
	if s == nil || len(s.Sources) == 0 {
		return mo.None[*Video]()
	}
	return mo.Some(s.Sources[0])
}
