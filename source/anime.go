// Package source defines the domain models shared by the API client, the stores and every front-end.
package source

import (
	"fmt"
	"strings"

	"github.com/aizenverse/aizen/constant"
)

// AnimeSummary is a catalog entry as returned by listings and search.
type AnimeSummary struct {
	ID           string   `json:"id" jsonschema:"required"`
	Title        string   `json:"title" jsonschema:"required"`
	URL          string   `json:"url,omitempty"`
	Image        string   `json:"image,omitempty"`
	Banner       string   `json:"bannerUrl,omitempty"`
	ReleaseDate  string   `json:"releaseDate,omitempty"`
	Rating       float64  `json:"rating,omitempty"`
	Genres       []string `json:"genres,omitempty"`
	EpisodeCount int      `json:"episodes,omitempty"`
	Status       string   `json:"status,omitempty"`
	Type         string   `json:"type,omitempty"`
	SubOrDub     string   `json:"subOrDub,omitempty"`
	Description  string   `json:"description,omitempty"`
}

func (a *AnimeSummary) String() string {
	return a.Title
}

// PosterOrPlaceholder returns the poster URL, or the placeholder when the API sent none.
func (a *AnimeSummary) PosterOrPlaceholder() string {
	if a.Image == "" {
		return constant.PlaceholderImage
	}
	return a.Image
}

// BannerOrPoster prefers the wide banner for hero slides.
func (a *AnimeSummary) BannerOrPoster() string {
	if a.Banner != "" {
		return a.Banner
	}
	return a.PosterOrPlaceholder()
}

// Facts renders the short "2023 • TV • 24 eps • ★ 8.7" line shown under titles.
func (a *AnimeSummary) Facts() string {
	var parts []string
	if a.ReleaseDate != "" {
		parts = append(parts, a.ReleaseDate)
	}
	if a.Type != "" {
		parts = append(parts, a.Type)
	}
	if a.EpisodeCount > 0 {
		parts = append(parts, fmt.Sprintf("%d eps", a.EpisodeCount))
	}
	if a.Rating > 0 {
		parts = append(parts, fmt.Sprintf("★ %.1f", a.Rating))
	}
	if a.Status != "" {
		parts = append(parts, a.Status)
	}
	return strings.Join(parts, " • ")
}

// AnimeDetail is the full record behind an anime page.
type AnimeDetail struct {
	AnimeSummary

	OtherName     string     `json:"otherName,omitempty"`
	TotalEpisodes int        `json:"totalEpisodes,omitempty"`
	Episodes      []*Episode `json:"episodes"`
}

// EpisodeIndex returns the position of the episode in the ordered list, or -1.
func (d *AnimeDetail) EpisodeIndex(id string) int {
	for i, e := range d.Episodes {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Episode looks an episode up by id.
func (d *AnimeDetail) Episode(id string) (*Episode, bool) {
	if i := d.EpisodeIndex(id); i >= 0 {
		return d.Episodes[i], true
	}
	return nil, false
}
