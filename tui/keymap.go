package tui

import (
	"github.com/aizenverse/aizen/color"
	"github.com/aizenverse/aizen/style"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
)

type statefulKeymap struct {
	state state

	quit, forceQuit,
	confirm, back,
	acceptSearchSuggestion,
	remove,
	favorite, watchlist,
	openEmbed, switchCategory, replay,
	nextEp, prevEp,
	nextSlide, prevSlide, openSlide,
	up, down, left, right,
	top, bottom,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		acceptSearchSuggestion: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "accept suggestion"),
		),
		remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove"),
		),
		favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorite"),
		),
		watchlist: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "my list"),
		),
		openEmbed: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open in browser"),
		),
		switchCategory: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "sub/dub"),
		),
		replay: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp(style.Fg(color.Orange)("enter"), style.Fg(color.Orange)("play")),
		),
		nextEp: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next episode"),
		),
		prevEp: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "prev episode"),
		),
		nextSlide: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next slide"),
		),
		prevSlide: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "prev slide"),
		),
		openSlide: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "open slide"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "left"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "right"),
		),
		top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case loadingState:
		return to2(h(k.forceQuit, k.back))
	case homeState:
		return h(k.confirm, k.prevSlide, k.nextSlide, k.openSlide), h(k.confirm, k.prevSlide, k.nextSlide, k.openSlide, k.quit)
	case searchState:
		return to2(h(k.confirm, k.acceptSearchSuggestion, k.back, k.forceQuit))
	case animesState:
		return to2(h(k.confirm, k.back))
	case episodesState:
		return h(k.confirm, k.favorite, k.watchlist, k.back), h(k.confirm, k.favorite, k.watchlist, k.back, k.quit)
	case watchState:
		return h(k.replay, k.nextEp, k.prevEp, k.openEmbed, k.back), h(k.replay, k.nextEp, k.prevEp, k.openEmbed, k.switchCategory, k.back, k.quit)
	case historyState:
		return to2(h(k.confirm, k.remove, k.back))
	case errorState:
		return to2(h(k.back, k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:             k.up,
		CursorDown:           k.down,
		NextPage:             k.right,
		PrevPage:             k.left,
		GoToStart:            k.top,
		GoToEnd:              k.bottom,
		ClearFilter:          k.back,
		CancelWhileFiltering: k.back,
		AcceptWhileFiltering: k.confirm,
		ShowFullHelp:         k.showHelp,
		CloseFullHelp:        k.showHelp,
		Quit:                 k.quit,
		ForceQuit:            k.forceQuit,
	}
}
