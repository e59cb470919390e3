package tui

import (
	"fmt"

	"github.com/aizenverse/aizen/favorites"
	"github.com/aizenverse/aizen/history"
	"github.com/aizenverse/aizen/icon"
	"github.com/aizenverse/aizen/source"
	"github.com/aizenverse/aizen/style"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

type menuItem int

const (
	menuContinue menuItem = iota
	menuSearch
	menuTrending
	menuTopAiring
	menuMostPopular
	menuMostFavorite
	menuMovies
	menuRecentlyAdded
	menuFavorites
	menuWatchlist
	menuHistory
)

func (m menuItem) String() string {
	switch m {
	case menuContinue:
		return "Continue Watching"
	case menuSearch:
		return "Search"
	case menuTrending:
		return "Trending"
	case menuTopAiring:
		return "Top Airing"
	case menuMostPopular:
		return "Most Popular"
	case menuMostFavorite:
		return "Most Favorite"
	case menuMovies:
		return "Movies"
	case menuRecentlyAdded:
		return "Recently Added"
	case menuFavorites:
		return "Favorites"
	case menuWatchlist:
		return "My List"
	case menuHistory:
		return "History"
	default:
		return ""
	}
}

func homeMenu() []list.Item {
	var items []list.Item
	for m := menuContinue; m <= menuHistory; m++ {
		items = append(items, &listItem{internal: m})
	}
	return items
}

// loadMore is the trailing item of a paginated anime list.
type loadMore struct {
	page int
}

type listItem struct {
	internal interface{}
	marked   bool
}

func (t *listItem) getMark() string {
	switch t.internal.(type) {
	case *source.Episode:
		return lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).Render(icon.Get(icon.Mark))
	case *source.AnimeSummary:
		return icon.Get(icon.Favorite)
	default:
		return ""
	}
}

func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case *source.Episode:
		title = fmt.Sprintf("%d. %s", e.Number, e.DisplayTitle())
	case *source.AnimeSummary:
		title = e.Title
	case history.ContinueEntry:
		title = e.AnimeTitle
	case history.WatchEntry:
		title = e.AnimeTitle
	case *loadMore:
		title = style.Faint("Load more…")
	case menuItem:
		title = e.String()
	default:
		title = t.FilterValue()
	}

	if title != "" && t.marked {
		title = fmt.Sprintf("%s %s", title, t.getMark())
	}

	return
}

func (t *listItem) Description() (description string) {
	switch e := t.internal.(type) {
	case *source.Episode:
		if e.Title != "" {
			description = style.Faint(e.Label())
		}
	case *source.AnimeSummary:
		description = e.Facts()
		if favorites.Watchlist().Has(e.ID) {
			description += style.Fg(style.Yellow)(" • in my list")
		}
	case history.ContinueEntry:
		description = fmt.Sprintf("%s • %s", e.Episode().DisplayTitle(), humanize.Time(e.WatchedAt))
	case history.WatchEntry:
		description = fmt.Sprintf("%s • %s", e.Title, humanize.Time(e.WatchedAt))
	}

	return
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *source.Episode:
		return e.DisplayTitle()
	case *source.AnimeSummary:
		return e.Title
	case history.ContinueEntry:
		return e.AnimeTitle
	case history.WatchEntry:
		return e.AnimeTitle + " " + e.Title
	case menuItem:
		return e.String()
	case string:
		return e
	default:
		return ""
	}
}
