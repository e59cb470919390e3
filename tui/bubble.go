package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/aizenverse/aizen/api"
	"github.com/aizenverse/aizen/constant"
	"github.com/aizenverse/aizen/home"
	"github.com/aizenverse/aizen/internal/ui"
	"github.com/aizenverse/aizen/key"
	"github.com/aizenverse/aizen/navigation"
	"github.com/aizenverse/aizen/player"
	"github.com/aizenverse/aizen/preference"
	"github.com/aizenverse/aizen/source"
	"github.com/aizenverse/aizen/style"
	"github.com/aizenverse/aizen/util"
	"github.com/aizenverse/aizen/watch"
	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// heroHeight is the number of lines the carousel takes above the home menu.
const heroHeight = 9

// listing remembers what the anime list shows so the next page can be requested.
type listing struct {
	kind  mo.Option[api.Kind]
	query string
	page  int
}

type historyMode int

const (
	continueMode historyMode = iota
	watchedMode
)

type statefulBubble struct {
	ctx context.Context

	state         state
	statesHistory util.Stack[state]
	loading       bool

	keymap *statefulKeymap

	// components
	spinnerC  spinner.Model
	inputC    textinput.Model
	homeC     list.Model
	animesC   list.Model
	episodesC list.Model
	historyC  list.Model
	helpC     help.Model

	client   *api.Client
	player   player.Player
	landing  *home.Landing
	carousel *navigation.Carousel
	listing  listing

	selectedAnime *source.AnimeDetail
	session       *watch.Session
	historyMode   historyMode

	// resume is an episode id opened right after start.
	resume string

	// dragStart is the column a mouse drag on the hero started at.
	dragStart int

	progressStatus string
	lastError      error

	width, height    int
	searchSuggestion mo.Option[string]
	notifier         *ui.Model

	options *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.loading = false
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if !lo.Contains([]state{loadingState, errorState}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	for _, l := range []*list.Model{&b.animesC, &b.episodesC, &b.historyC} {
		l.SetSize(listWidth, listHeight)
		l.Help.Width = listWidth
	}

	b.homeC.SetSize(listWidth, util.Max(listHeight-heroHeight, 4))
	b.homeC.Help.Width = listWidth

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
	b.inputC.Width = listWidth
}

// startLoading switches to the spinner with the given status line.
func (b *statefulBubble) startLoading(status string) tea.Cmd {
	b.loading = true
	b.progressStatus = status
	b.newState(loadingState)
	return b.spinnerC.Tick
}

func (b *statefulBubble) stopLoading() {
	b.loading = false
	b.progressStatus = ""
}

// finishLoading leaves the spinner for s. Returning to the state loading started
// from pops it instead of stacking a duplicate.
func (b *statefulBubble) finishLoading(s state) {
	b.stopLoading()
	if b.statesHistory.Len() > 0 && b.statesHistory.Peek() == s {
		b.previousState()
		return
	}
	b.newState(s)
}

func (b *statefulBubble) activeList() *list.Model {
	switch b.state {
	case homeState:
		return &b.homeC
	case animesState:
		return &b.animesC
	case episodesState:
		return &b.episodesC
	case historyState:
		return &b.historyC
	default:
		return nil
	}
}

func (b *statefulBubble) accent() lipgloss.Color {
	if preference.Get() == preference.Light {
		return style.LightAccent
	}
	return style.AccentColor
}

func newBubble(ctx context.Context, client *api.Client, p player.Player, options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		ctx:           ctx,
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		client:        client,
		player:        p,
		carousel:      navigation.NewCarousel(0, time.Duration(viper.GetInt(key.TUICarouselInterval))*time.Second),
		notifier:      &ui.Model{},
		options:       options,
	}

	accent := bubble.accent()
	normal := lo.Ternary(preference.Get() == preference.Light, style.LightText, lipgloss.Color("7"))

	type listOptions struct {
		TitleStyle mo.Option[lipgloss.Style]
	}

	makeList := func(title string, description bool, options *listOptions) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.ShowDescription = description
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(accent).
			Foreground(accent).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(normal)
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.NoItems = paddingStyle
		if titleStyle, ok := options.TitleStyle.Get(); ok {
			listC.Styles.Title = titleStyle
		}
		listC.StatusMessageLifetime = time.Second * 3
		listC.SetShowPagination(false)
		listC.SetShowStatusBar(false)

		return listC
	}

	titled := func(bg lipgloss.Color) *listOptions {
		return &listOptions{
			TitleStyle: mo.Some(lipgloss.NewStyle().Foreground(style.Base).Background(bg).Padding(0, 1)),
		}
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(accent)

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = fmt.Sprintf("Search Anime (v%s)", constant.Version)
	bubble.inputC.CharLimit = 60
	bubble.inputC.Prompt = viper.GetString(key.TUISearchPromptString)

	bubble.homeC = makeList(constant.App, false, titled(accent))
	bubble.homeC.SetFilteringEnabled(false)
	bubble.homeC.SetItems(homeMenu())

	bubble.animesC = makeList("Anime", true, titled(style.Lavender))
	bubble.animesC.SetStatusBarItemName("anime", "anime")

	bubble.episodesC = makeList("Episodes", true, titled(style.Peach))
	bubble.episodesC.SetStatusBarItemName("episode", "episodes")

	bubble.historyC = makeList("Continue Watching", true, titled(style.Yellow))
	bubble.historyC.SetStatusBarItemName("entry", "entries")

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.setState(loadingState)
	bubble.loading = true
	return &bubble
}
