package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/aizenverse/aizen/api"
	"github.com/aizenverse/aizen/favorites"
	"github.com/aizenverse/aizen/history"
	"github.com/aizenverse/aizen/home"
	"github.com/aizenverse/aizen/icon"
	"github.com/aizenverse/aizen/internal/ui"
	"github.com/aizenverse/aizen/key"
	"github.com/aizenverse/aizen/log"
	"github.com/aizenverse/aizen/navigation"
	"github.com/aizenverse/aizen/player"
	"github.com/aizenverse/aizen/query"
	"github.com/aizenverse/aizen/source"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// cellWidth approximates the pixel width of a terminal cell for swipe distances.
const cellWidth = 8

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = uiCmd
	}

	switch msg := msg.(type) {
	case error:
		if b.state != loadingState {
			log.Warnf("dropping late error: %v", msg)
			return b, cmd
		}
		b.raiseError(msg)
		return b, cmd
	case tickMsg:
		b.carousel.Tick(time.Time(msg))
		return b, tea.Batch(cmd, tick())
	case landingMsg:
		return b, tea.Batch(cmd, b.onLanding(msg))
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		if bubblesKey.Matches(msg, b.keymap.back) {
			if l := b.activeList(); l != nil && l.FilterState() != list.Unfiltered {
				*l, cmd = l.Update(msg)
				return b, cmd
			}

			switch b.state {
			case homeState:
				return b, cmd
			case loadingState:
				b.stopLoading()
				if b.statesHistory.Len() == 0 {
					return b, tea.Quit
				}
			case searchState:
				b.inputC.SetValue("")
				b.searchSuggestion = mo.None[string]()
			}

			b.previousState()
			return b, cmd
		}
	}

	var stateCmd tea.Cmd
	switch b.state {
	case loadingState:
		stateCmd = b.updateLoading(msg)
	case homeState:
		stateCmd = b.updateHome(msg)
	case searchState:
		stateCmd = b.updateSearch(msg)
	case animesState:
		stateCmd = b.updateAnimes(msg)
	case episodesState:
		stateCmd = b.updateEpisodes(msg)
	case watchState:
		stateCmd = b.updateWatch(msg)
	case historyState:
		stateCmd = b.updateHistory(msg)
	case errorState:
		stateCmd = b.updateError(msg)
	}

	return b, tea.Batch(cmd, stateCmd)
}

func (b *statefulBubble) onLanding(landing *home.Landing) tea.Cmd {
	b.landing = landing
	b.carousel = navigation.NewCarousel(len(landing.Slides), b.carousel.Interval())

	var cmd tea.Cmd
	switch {
	case landing.Notice() != "":
		cmd = ui.Notify(landing.Notice())
	case landing.Err != nil:
		cmd = ui.Notifyf("%s %v", icon.Get(icon.Warn), landing.Err)
	}

	if b.state == loadingState && b.resume == "" && b.statesHistory.Len() == 0 {
		b.finishLoading(homeState)
	}
	return cmd
}

func (b *statefulBubble) updateLoading(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case animesMsg:
		b.listing.page = msg.page.CurrentPage

		items := animeItems(msg.page.Results)
		if msg.append {
			existing := b.animesC.Items()
			if n := len(existing); n > 0 {
				if _, ok := existing[n-1].(*listItem).internal.(*loadMore); ok {
					existing = existing[:n-1]
				}
			}
			items = append(existing, items...)
		} else {
			b.animesC.Title = b.listingTitle()
			b.animesC.ResetSelected()
		}

		if msg.page.HasNextPage {
			items = append(items, &listItem{internal: &loadMore{page: msg.page.NextPage()}})
		}

		cmd = b.animesC.SetItems(items)
		b.finishLoading(animesState)
	case collectionMsg:
		b.listing = listing{}
		b.animesC.Title = msg.title
		b.animesC.ResetSelected()
		cmd = b.animesC.SetItems(animeItems(msg.animes))
		b.finishLoading(animesState)
		if len(msg.animes) == 0 {
			cmd = tea.Batch(cmd, ui.Notifyf("%s is empty", msg.title))
		}
	case detailMsg:
		b.selectedAnime = msg
		b.episodesC.Title = msg.Title
		b.episodesC.ResetSelected()
		cmd = b.episodesC.SetItems(b.episodeItems(msg))
		b.finishLoading(episodesState)
	case sessionMsg:
		b.session = msg
		b.selectedAnime = msg.Anime
		b.resume = ""
		b.finishLoading(watchState)
		cmd = b.play(msg, b.player)
	default:
		b.spinnerC, cmd = b.spinnerC.Update(msg)
	}

	return cmd
}

func (b *statefulBubble) listingTitle() string {
	if kind, ok := b.listing.kind.Get(); ok {
		return kind.Title()
	}
	return fmt.Sprintf("Search: %s", b.listing.query)
}

func (b *statefulBubble) updateHome(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.MouseMsg:
		switch {
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y < heroHeight:
			b.dragStart = msg.X
			b.carousel.SetDragging(true)
		case msg.Action == tea.MouseActionRelease && b.carousel.Dragging():
			b.carousel.Swipe((b.dragStart - msg.X) * cellWidth)
		}
		return nil
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return tea.Quit
		case bubblesKey.Matches(msg, b.keymap.nextSlide):
			b.carousel.Next()
			return nil
		case bubblesKey.Matches(msg, b.keymap.prevSlide):
			b.carousel.Prev()
			return nil
		case bubblesKey.Matches(msg, b.keymap.openSlide):
			slide, ok := b.currentSlide().Get()
			if !ok {
				return nil
			}
			return tea.Batch(b.startLoading("Loading "+slide.Title), b.loadDetail(slide.ID))
		case bubblesKey.Matches(msg, b.keymap.confirm):
			item, ok := b.homeC.SelectedItem().(*listItem)
			if !ok {
				return nil
			}
			return b.onMenu(item.internal.(menuItem))
		}
	}

	b.homeC, cmd = b.homeC.Update(msg)
	return cmd
}

func (b *statefulBubble) currentSlide() mo.Option[*source.AnimeSummary] {
	if b.landing == nil || len(b.landing.Slides) == 0 {
		return mo.None[*source.AnimeSummary]()
	}
	return mo.Some(b.landing.Slides[b.carousel.Current()%len(b.landing.Slides)])
}

var menuKinds = map[menuItem]api.Kind{
	menuTrending:      api.Trending,
	menuTopAiring:     api.TopAiring,
	menuMostPopular:   api.MostPopular,
	menuMostFavorite:  api.MostFavorite,
	menuMovies:        api.Movies,
	menuRecentlyAdded: api.RecentlyAdded,
}

func (b *statefulBubble) onMenu(item menuItem) tea.Cmd {
	if kind, ok := menuKinds[item]; ok {
		return tea.Batch(b.startLoading("Loading "+kind.Title()), b.loadCatalog(kind, 1))
	}

	switch item {
	case menuSearch:
		b.newState(searchState)
		b.inputC.Focus()
		return textinput.Blink
	case menuContinue, menuHistory:
		b.historyMode = continueMode
		b.historyC.Title = menuContinue.String()
		if item == menuHistory {
			b.historyMode = watchedMode
			b.historyC.Title = menuHistory.String()
		}

		items := b.historyItems()
		if len(items) == 0 {
			return ui.Notifyf("%s is empty", b.historyC.Title)
		}

		b.historyC.ResetSelected()
		cmd := b.historyC.SetItems(items)
		b.newState(historyState)
		return cmd
	case menuFavorites:
		return tea.Batch(b.startLoading("Loading favorites"), b.loadCollection(menuFavorites.String(), favorites.Favorites()))
	case menuWatchlist:
		return tea.Batch(b.startLoading("Loading my list"), b.loadCollection(menuWatchlist.String(), favorites.Watchlist()))
	}

	return nil
}

func (b *statefulBubble) updateSearch(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion):
			if suggestion, ok := b.searchSuggestion.Get(); ok {
				b.inputC.SetValue(suggestion)
				b.inputC.CursorEnd()
				b.searchSuggestion = mo.None[string]()
			}
			return nil
		case bubblesKey.Matches(msg, b.keymap.confirm):
			q := strings.TrimSpace(b.inputC.Value())
			if q == "" {
				return nil
			}

			if err := query.Remember(q, 1); err != nil {
				log.Warnf("failed to remember query %q: %v", q, err)
			}
			b.searchSuggestion = mo.None[string]()
			return tea.Batch(b.startLoading(fmt.Sprintf("Searching for %q", q)), b.search(q, 1))
		}
	}

	b.inputC, cmd = b.inputC.Update(msg)

	if viper.GetBool(key.SearchShowQuerySuggestions) && strings.TrimSpace(b.inputC.Value()) != "" {
		b.searchSuggestion = query.Suggest(b.inputC.Value())
	} else {
		b.searchSuggestion = mo.None[string]()
	}

	return cmd
}

func (b *statefulBubble) updateAnimes(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && b.animesC.FilterState() != list.Filtering {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			item, ok := b.animesC.SelectedItem().(*listItem)
			if !ok {
				return nil
			}

			switch e := item.internal.(type) {
			case *source.AnimeSummary:
				return tea.Batch(b.startLoading("Loading "+e.Title), b.loadDetail(e.ID))
			case *loadMore:
				b.listing.page = e.page
				return tea.Batch(b.startLoading(fmt.Sprintf("Loading page %d", e.page)), b.fetchListing(true))
			}
			return nil
		case bubblesKey.Matches(msg, b.keymap.favorite), bubblesKey.Matches(msg, b.keymap.watchlist):
			item, ok := b.animesC.SelectedItem().(*listItem)
			if !ok {
				return nil
			}

			anime, ok := item.internal.(*source.AnimeSummary)
			if !ok {
				return nil
			}

			added, cmd := b.toggle(msg, anime.ID, anime.Title)
			if bubblesKey.Matches(msg, b.keymap.favorite) {
				item.marked = added
			}
			return cmd
		}
	}

	b.animesC, cmd = b.animesC.Update(msg)
	return cmd
}

// toggle flips id in the favorites or watchlist set depending on the pressed key.
func (b *statefulBubble) toggle(msg tea.KeyMsg, id, title string) (bool, tea.Cmd) {
	set, name := favorites.Watchlist(), menuWatchlist.String()
	if bubblesKey.Matches(msg, b.keymap.favorite) {
		set, name = favorites.Favorites(), menuFavorites.String()
	}

	if set.Toggle(id) {
		return true, ui.Notifyf("%s added %s to %s", icon.Get(icon.Favorite), title, name)
	}
	return false, ui.Notifyf("removed %s from %s", title, name)
}

func (b *statefulBubble) updateEpisodes(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && b.episodesC.FilterState() != list.Filtering {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			item, ok := b.episodesC.SelectedItem().(*listItem)
			if !ok {
				return nil
			}

			episode := item.internal.(*source.Episode)
			item.marked = true
			return tea.Batch(b.startLoading("Opening "+episode.DisplayTitle()), b.openEpisode(episode.ID, ""))
		case bubblesKey.Matches(msg, b.keymap.favorite), bubblesKey.Matches(msg, b.keymap.watchlist):
			if b.selectedAnime == nil {
				return nil
			}
			_, cmd = b.toggle(msg, b.selectedAnime.ID, b.selectedAnime.Title)
			return cmd
		}
	}

	b.episodesC, cmd = b.episodesC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateWatch(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || b.session == nil {
		return nil
	}

	s := b.session
	switch {
	case bubblesKey.Matches(keyMsg, b.keymap.quit):
		return tea.Quit
	case bubblesKey.Matches(keyMsg, b.keymap.replay):
		return b.play(s, b.player)
	case bubblesKey.Matches(keyMsg, b.keymap.openEmbed):
		return b.play(s, &player.Browser{})
	case bubblesKey.Matches(keyMsg, b.keymap.switchCategory):
		other := s.Category.Other()
		return tea.Batch(b.startLoading(fmt.Sprintf("Switching to %s", other)), b.openEpisode(s.Episode.ID, other))
	case bubblesKey.Matches(keyMsg, b.keymap.nextEp):
		id, ok := s.Next().Get()
		if !ok {
			return ui.Notify("this is the last episode")
		}
		return tea.Batch(b.startLoading("Opening next episode"), b.openEpisode(id, s.Category))
	case bubblesKey.Matches(keyMsg, b.keymap.prevEp):
		id, ok := s.Prev().Get()
		if !ok {
			return ui.Notify("this is the first episode")
		}
		return tea.Batch(b.startLoading("Opening previous episode"), b.openEpisode(id, s.Category))
	}

	return nil
}

func (b *statefulBubble) updateHistory(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && b.historyC.FilterState() != list.Filtering {
		item, ok := b.historyC.SelectedItem().(*listItem)

		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if !ok {
				return nil
			}

			var id string
			switch e := item.internal.(type) {
			case history.ContinueEntry:
				id = e.ID
			case history.WatchEntry:
				id = e.ID
			}
			return tea.Batch(b.startLoading("Resuming"), b.openEpisode(id, ""))
		case bubblesKey.Matches(msg, b.keymap.remove):
			if !ok {
				return nil
			}

			switch e := item.internal.(type) {
			case history.ContinueEntry:
				history.Continue().Remove(e.Key())
			case history.WatchEntry:
				history.History().Remove(e.Key())
			}

			cmd = b.historyC.SetItems(b.historyItems())
			return tea.Batch(cmd, ui.Notifyf("removed %s", item.FilterValue()))
		}
	}

	b.historyC, cmd = b.historyC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.quit) {
		return tea.Quit
	}
	return nil
}
