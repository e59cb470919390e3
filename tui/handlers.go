package tui

import (
	"fmt"
	"time"

	"github.com/aizenverse/aizen/api"
	"github.com/aizenverse/aizen/favorites"
	"github.com/aizenverse/aizen/history"
	"github.com/aizenverse/aizen/home"
	"github.com/aizenverse/aizen/icon"
	"github.com/aizenverse/aizen/log"
	"github.com/aizenverse/aizen/player"
	"github.com/aizenverse/aizen/source"
	"github.com/aizenverse/aizen/watch"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

type (
	tickMsg    time.Time
	landingMsg *home.Landing
	detailMsg  *source.AnimeDetail
	sessionMsg *watch.Session
)

// animesMsg is one page of an anime listing.
type animesMsg struct {
	page   *source.Page[*source.AnimeSummary]
	append bool
}

// collectionMsg carries the resolved entries of the favorites or watchlist sets.
type collectionMsg struct {
	title  string
	animes []*source.AnimeSummary
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (b *statefulBubble) loadLanding() tea.Cmd {
	return func() tea.Msg {
		return landingMsg(home.Load(b.ctx, b.client))
	}
}

func (b *statefulBubble) loadCatalog(kind api.Kind, page int) tea.Cmd {
	b.listing = listing{kind: mo.Some(kind), page: page}
	return b.fetchListing(page > 1)
}

func (b *statefulBubble) search(query string, page int) tea.Cmd {
	b.listing = listing{query: query, page: page}
	return b.fetchListing(page > 1)
}

func (b *statefulBubble) fetchListing(appending bool) tea.Cmd {
	l := b.listing
	return func() tea.Msg {
		var (
			page *source.Page[*source.AnimeSummary]
			err  error
		)

		if kind, ok := l.kind.Get(); ok {
			page, err = b.client.Catalog(b.ctx, kind, l.page)
		} else {
			page, err = b.client.Search(b.ctx, l.query, l.page)
		}

		if err != nil {
			return err
		}
		return animesMsg{page: page, append: appending}
	}
}

func (b *statefulBubble) loadDetail(id string) tea.Cmd {
	return func() tea.Msg {
		detail, err := b.client.Info(b.ctx, id)
		if err != nil {
			return err
		}
		return detailMsg(detail)
	}
}

// loadCollection resolves every id of the set. Ids that fail are skipped.
func (b *statefulBubble) loadCollection(title string, set *favorites.Set) tea.Cmd {
	ids := set.List()
	return func() tea.Msg {
		return collectionMsg{title: title, animes: favorites.Resolve(b.ctx, b.client, ids)}
	}
}

func (b *statefulBubble) openEpisode(id string, category source.Category) tea.Cmd {
	return func() tea.Msg {
		session, err := watch.Open(b.ctx, b.client, id, category)
		if err != nil {
			return err
		}
		return sessionMsg(session)
	}
}

// play hands the session to p and reports the outcome as a notification.
func (b *statefulBubble) play(s *watch.Session, p player.Player) tea.Cmd {
	return func() tea.Msg {
		if err := s.Play(b.ctx, p); err != nil {
			log.Error(err)
			return fmt.Sprintf("%s %v", icon.Get(icon.Fail), err)
		}
		return fmt.Sprintf("%s playing %s in %s", icon.Get(icon.Play), s.Title(), p.Name())
	}
}

func (b *statefulBubble) historyItems() []list.Item {
	if b.historyMode == continueMode {
		return lo.Map(history.Continue().List(), func(e history.ContinueEntry, _ int) list.Item {
			return &listItem{internal: e}
		})
	}

	return lo.Map(history.History().List(), func(e history.WatchEntry, _ int) list.Item {
		return &listItem{internal: e}
	})
}

func animeItems(animes []*source.AnimeSummary) []list.Item {
	return lo.Map(animes, func(a *source.AnimeSummary, _ int) list.Item {
		return &listItem{internal: a, marked: favorites.Favorites().Has(a.ID)}
	})
}

func (b *statefulBubble) episodeItems(detail *source.AnimeDetail) []list.Item {
	watched := lo.SliceToMap(history.History().List(), func(e history.WatchEntry) (string, struct{}) {
		return e.ID, struct{}{}
	})

	return lo.Map(detail.Episodes, func(e *source.Episode, _ int) list.Item {
		_, ok := watched[e.ID]
		return &listItem{internal: e, marked: ok}
	})
}
