// Package history keeps what the user watched: a full watch history and a shorter
// continue-watching list, both newest first.
package history

import (
	"sync"
	"time"

	"github.com/aizenverse/aizen/key"
	"github.com/aizenverse/aizen/recency"
	"github.com/aizenverse/aizen/source"
	"github.com/aizenverse/aizen/where"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

var now = time.Now

var history = sync.OnceValue(func() *recency.Store[WatchEntry] {
	return recency.New[WatchEntry](where.History(), viper.GetInt(key.HistoryMax))
})

var continued = sync.OnceValue(func() *recency.Store[ContinueEntry] {
	return recency.New[ContinueEntry](where.Continue(), viper.GetInt(key.HistoryContinueMax))
})

// History is the watch history store.
func History() *recency.Store[WatchEntry] {
	return history()
}

// Continue is the continue-watching store.
func Continue() *recency.Store[ContinueEntry] {
	return continued()
}

// Record notes that episode of anime was opened.
// Continue-watching is written first, then the history.
func Record(anime *source.AnimeDetail, episode *source.Episode) {
	if !viper.GetBool(key.HistorySaveOnWatch) || anime == nil || episode == nil {
		return
	}

	at := now()
	Continue().Record(newContinueEntry(anime, episode, at))
	History().Record(newWatchEntry(anime, episode, at))
}

// Latest is the most recently watched episode that can be resumed.
func Latest() mo.Option[ContinueEntry] {
	entries := Continue().List()
	if len(entries) == 0 {
		return mo.None[ContinueEntry]()
	}
	return mo.Some(entries[0])
}
