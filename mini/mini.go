// Package mini implements a prompt-driven interface for searching and playing anime
// in terminals where the full-screen TUI is unwanted.
package mini

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/aizenverse/aizen/player"
	"github.com/aizenverse/aizen/source"
	"github.com/aizenverse/aizen/util"
	"github.com/aizenverse/aizen/watch"
	"github.com/samber/lo"
)

// searchLimit caps how many results are offered in one menu.
const searchLimit = 20

type Options struct {
	// Continue starts from the continue-watching list instead of a search.
	Continue bool
}

// Client is the part of the API client mini mode needs.
type Client interface {
	watch.Resolver
	Search(ctx context.Context, query string, page int) (*source.Page[*source.AnimeSummary], error)
	Info(ctx context.Context, id string) (*source.AnimeDetail, error)
}

type mini struct {
	ctx      context.Context
	client   Client
	player   player.Player
	prompter prompter

	state         state
	statesHistory util.Stack[state]

	query     string
	animes    []*source.AnimeSummary
	anime     *source.AnimeDetail
	episodeID string
	category  source.Category
	session   *watch.Session
}

func newMini(ctx context.Context, client Client, p player.Player, prompter prompter) *mini {
	return &mini{
		ctx:           ctx,
		client:        client,
		player:        p,
		prompter:      prompter,
		statesHistory: util.Stack[state]{},
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
		return
	}
	m.setState(quitState)
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	if !lo.Contains([]state{watchState}, m.state) {
		m.statesHistory.Push(m.state)
	}

	m.setState(s)
}

// Run prompts until the user quits. Ctrl+C quits without an error.
func Run(ctx context.Context, client Client, p player.Player, options *Options) error {
	return run(newMini(ctx, client, p, surveyPrompter{}), options)
}

func run(m *mini, options *Options) error {
	m.state = searchState
	if options.Continue {
		m.state = historySelectState
	}

	for m.state != quitState {
		if err := m.handleState(); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}

		if err := m.ctx.Err(); err != nil {
			return nil
		}
	}

	return nil
}

func (m *mini) handleState() error {
	switch m.state {
	case historySelectState:
		return m.handleHistorySelectState()
	case searchState:
		return m.handleSearchState()
	case animeSelectState:
		return m.handleAnimeSelectState()
	case episodeSelectState:
		return m.handleEpisodeSelectState()
	case watchState:
		return m.handleWatchState()
	}

	return nil
}
