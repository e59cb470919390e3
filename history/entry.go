package history

import (
	"fmt"
	"time"

	"github.com/aizenverse/aizen/source"
)

// WatchEntry is one line of the watch history.
type WatchEntry struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	AnimeTitle string    `json:"animeTitle"`
	AnimeID    string    `json:"animeId"`
	WatchedAt  time.Time `json:"watchedAt"`
}

// Key is the episode id.
func (w WatchEntry) Key() string { return w.ID }

func (w WatchEntry) String() string {
	return fmt.Sprintf("%s · %s", w.AnimeTitle, w.Title)
}

// ContinueEntry is an episode the user can resume.
type ContinueEntry struct {
	ID         string    `json:"id"`
	Number     int       `json:"number"`
	Title      string    `json:"title,omitempty"`
	URL        string    `json:"url,omitempty"`
	AnimeTitle string    `json:"animeTitle"`
	AnimeID    string    `json:"animeId"`
	WatchedAt  time.Time `json:"watchedAt"`
}

// Key is the episode id.
func (c ContinueEntry) Key() string { return c.ID }

func (c ContinueEntry) String() string {
	return fmt.Sprintf("%s · %s", c.AnimeTitle, c.Episode().DisplayTitle())
}

// Episode rebuilds the episode the entry was recorded from.
func (c ContinueEntry) Episode() *source.Episode {
	return &source.Episode{ID: c.ID, Number: c.Number, Title: c.Title, URL: c.URL}
}

func newWatchEntry(anime *source.AnimeDetail, episode *source.Episode, at time.Time) WatchEntry {
	return WatchEntry{
		ID:         episode.ID,
		Title:      episode.Label(),
		AnimeTitle: anime.Title,
		AnimeID:    anime.ID,
		WatchedAt:  at,
	}
}

func newContinueEntry(anime *source.AnimeDetail, episode *source.Episode, at time.Time) ContinueEntry {
	return ContinueEntry{
		ID:         episode.ID,
		Number:     episode.Number,
		Title:      episode.Title,
		URL:        episode.URL,
		AnimeTitle: anime.Title,
		AnimeID:    anime.ID,
		WatchedAt:  at,
	}
}
