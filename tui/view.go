package tui

import (
	"fmt"
	"strings"

	"github.com/aizenverse/aizen/color"
	"github.com/aizenverse/aizen/constant"
	"github.com/aizenverse/aizen/icon"
	"github.com/aizenverse/aizen/source"
	"github.com/aizenverse/aizen/style"
	"github.com/aizenverse/aizen/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case homeState:
		output = b.viewHome()
	case searchState:
		output = b.viewSearch()
	case animesState:
		output = listExtraPaddingStyle.Render(b.animesC.View())
	case episodesState:
		output = listExtraPaddingStyle.Render(b.episodesC.View())
	case historyState:
		output = listExtraPaddingStyle.Render(b.historyC.View())
	case watchState:
		output = b.viewWatch()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + b.progressStatus,
		},
	)
}

func (b *statefulBubble) viewHome() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		paddingStyle.Render(strings.Join(b.heroLines(), "\n")),
		listExtraPaddingStyle.Render(b.homeC.View()),
	)
}

// heroLines renders the carousel. It always returns heroHeight-2 lines so the menu stays put.
func (b *statefulBubble) heroLines() []string {
	lines := make([]string, 0, heroHeight)

	header := style.Title(constant.App)
	if b.landing != nil && b.landing.Notice() != "" {
		header += " " + style.Fg(style.WarningColor)(b.landing.Notice())
	}
	lines = append(lines, header, "")

	slide, ok := b.currentSlide().Get()
	if !ok {
		lines = append(lines, style.Faint("Nothing to feature yet"))
	} else {
		width := util.Max(b.width, 20)
		position := style.Faint(fmt.Sprintf("◀ %d/%d ▶", b.carousel.Current()+1, b.carousel.Len()))
		title := lipgloss.NewStyle().Bold(true).Foreground(b.accent()).Render(util.Ellipsize(slide.Title, width-12))
		lines = append(lines, position+" "+title, style.Faint(slide.Facts()))

		description := strings.Split(wordwrap.String(slide.Description, width), "\n")
		lines = append(lines, lo.Slice(description, 0, 2)...)
	}

	if b.landing != nil && len(b.landing.Side) > 0 {
		titles := lo.Map(b.landing.Side, func(a *source.AnimeSummary, _ int) string {
			return util.Ellipsize(a.Title, 24)
		})
		lines = append(lines, style.Fg(style.SecondaryColor)("Also on now: ")+strings.Join(titles, " · "))
	}

	for len(lines) < heroHeight-2 {
		lines = append(lines, "")
	}
	return lines[:heroHeight-2]
}

func (b *statefulBubble) viewSearch() string {
	lines := []string{
		style.Title("Search Anime"),
		"",
		b.inputC.View(),
	}

	if suggestion, ok := b.searchSuggestion.Get(); ok && suggestion != b.inputC.Value() {
		lines = append(lines, "", style.Faint(fmt.Sprintf("%s %s (tab to accept)", icon.Get(icon.Search), suggestion)))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewWatch() string {
	s := b.session
	if s == nil {
		return b.renderLines(true, []string{style.Title("Now Playing")})
	}

	truncate := style.Truncate(b.width)
	lines := []string{
		style.Title("Now Playing"),
		"",
		truncate(fmt.Sprintf("%s %s", icon.Get(icon.Play), style.Fg(color.Purple)(s.Anime.Title))),
		truncate(fmt.Sprintf(
			"%s %s",
			s.Episode.DisplayTitle(),
			style.Faint(fmt.Sprintf("(%d of %d, %s)", s.Navigator.Index()+1, s.Navigator.Len(), s.Category)),
		)),
		"",
	}

	if s.StreamErr != nil {
		lines = append(lines, truncate(style.Fg(style.ErrorColor)(fmt.Sprintf("%s stream unavailable: %v", icon.Get(icon.Warn), s.StreamErr))))
	} else if video, ok := s.Stream.Primary().Get(); ok {
		lines = append(lines, truncate(fmt.Sprintf("%s %s", icon.Get(icon.Link), video.String())))
	}
	if s.EmbedURL != "" {
		lines = append(lines, truncate(style.Faint("embed "+s.EmbedURL)))
	}
	lines = append(lines, "")

	neighbour := func(label string, ok bool) string {
		if ok {
			return label
		}
		return style.Faint(label)
	}
	lines = append(lines, neighbour("◀ previous", s.Navigator.HasPrev())+"   "+neighbour("next ▶", s.Navigator.HasNext()))

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	errorMsg := wrap.String(errorStyle.Render(b.lastError.Error()), b.width)
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " Something went wrong:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
