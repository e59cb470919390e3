package mini

import (
	"fmt"

	"github.com/aizenverse/aizen/history"
	"github.com/aizenverse/aizen/log"
	"github.com/aizenverse/aizen/query"
	"github.com/aizenverse/aizen/source"
	"github.com/aizenverse/aizen/watch"
	"github.com/samber/lo"
)

type state int

const (
	searchState state = iota + 1
	animeSelectState
	episodeSelectState
	watchState
	historySelectState
	quitState
)

func (m *mini) handleSearchState() error {
	title("Search Anime")

	in, err := m.prompter.Input("Query (leave empty to quit)", query.SuggestMany)
	if err != nil {
		return err
	}

	if in == "" {
		m.newState(quitState)
		return nil
	}

	if err := query.Remember(in, 1); err != nil {
		log.Warn(err)
	}

	erase := progress("Searching...")
	page, err := m.client.Search(m.ctx, in, 1)
	erase()
	if err != nil {
		return err
	}

	if len(page.Results) == 0 {
		fail(fmt.Sprintf("Nothing found for %q", in))
		return nil
	}

	m.query = in
	m.animes = lo.Slice(page.Results, 0, searchLimit)
	m.newState(animeSelectState)
	return nil
}

func (m *mini) handleAnimeSelectState() error {
	items := lo.Map(m.animes, func(a *source.AnimeSummary, _ int) string {
		if facts := a.Facts(); facts != "" {
			return fmt.Sprintf("%s (%s)", a.Title, facts)
		}
		return a.Title
	})

	i, b, err := m.menu(fmt.Sprintf("Results for %q", m.query), items, back, quit)
	if err != nil {
		return err
	}

	switch b {
	case back:
		m.previousState()
		return nil
	case quit:
		m.newState(quitState)
		return nil
	}

	erase := progress("Fetching episodes...")
	m.anime, err = m.client.Info(m.ctx, m.animes[i].ID)
	erase()
	if err != nil {
		return err
	}

	if len(m.anime.Episodes) == 0 {
		fail(fmt.Sprintf("%s has no episodes yet", m.anime.Title))
		return nil
	}

	m.newState(episodeSelectState)
	return nil
}

func (m *mini) handleEpisodeSelectState() error {
	items := lo.Map(m.anime.Episodes, func(e *source.Episode, _ int) string {
		return fmt.Sprintf("%d. %s", e.Number, e.DisplayTitle())
	})

	i, b, err := m.menu(m.anime.Title, items, back, quit)
	if err != nil {
		return err
	}

	switch b {
	case back:
		m.previousState()
		return nil
	case quit:
		m.newState(quitState)
		return nil
	}

	m.episodeID = m.anime.Episodes[i].ID
	m.session = nil
	m.newState(watchState)
	return nil
}

// handleWatchState plays the current episode once, then offers what to do next.
func (m *mini) handleWatchState() error {
	if m.session == nil || m.session.Episode.ID != m.episodeID {
		erase := progress("Resolving stream...")
		session, err := watch.Open(m.ctx, m.client, m.episodeID, m.category)
		erase()
		if err != nil {
			return err
		}

		m.session = session
		m.category = session.Category
		if err := m.play(); err != nil {
			return err
		}
	}

	s := m.session
	var binds []bind
	if s.Navigator.HasNext() {
		binds = append(binds, next)
	}
	if s.Navigator.HasPrev() {
		binds = append(binds, prev)
	}
	switchCategory := bind("Switch to " + string(m.category.Other()))
	binds = append(binds, replay, switchCategory, back, search, quit)

	_, b, err := m.menu("Now playing "+s.Title(), nil, binds...)
	if err != nil {
		return err
	}

	switch b {
	case next:
		m.episodeID = s.Next().MustGet()
	case prev:
		m.episodeID = s.Prev().MustGet()
	case replay:
		return m.play()
	case switchCategory:
		m.category = m.category.Other()
		m.session = nil
	case back:
		m.previousState()
	case search:
		m.newState(searchState)
	case quit:
		m.newState(quitState)
	}

	return nil
}

func (m *mini) play() error {
	if m.session.StreamErr != nil {
		fail(fmt.Sprintf("stream unavailable, using the embedded player: %v", m.session.StreamErr))
	}

	if err := m.session.Play(m.ctx, m.player); err != nil {
		return err
	}

	fmt.Printf("Playing %s (%s)\n", m.session.Title(), m.session.Category)
	return nil
}

func (m *mini) handleHistorySelectState() error {
	entries := history.Continue().List()
	if len(entries) == 0 {
		fail("Nothing to continue, search for something to watch")
		m.setState(searchState)
		return nil
	}

	items := lo.Map(entries, func(e history.ContinueEntry, _ int) string {
		return e.String()
	})

	i, b, err := m.menu("Continue Watching", items, search, quit)
	if err != nil {
		return err
	}

	switch b {
	case search:
		m.newState(searchState)
		return nil
	case quit:
		m.newState(quitState)
		return nil
	}

	m.episodeID = entries[i].ID
	m.session = nil
	m.newState(watchState)
	return nil
}
