package tui

import (
	"context"
	"errors"

	"github.com/aizenverse/aizen/api"
	"github.com/aizenverse/aizen/history"
	"github.com/aizenverse/aizen/player"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configure a TUI session.
type Options struct {
	// Continue opens the latest continue-watching entry right away.
	Continue bool
}

// Run starts the terminal UI and blocks until the user quits.
func Run(ctx context.Context, options *Options) error {
	p, err := player.FromConfig()
	if err != nil {
		return err
	}

	bubble := newBubble(ctx, api.FromConfig(ctx), p, options)

	if options.Continue {
		latest, ok := history.Latest().Get()
		if !ok {
			return errors.New("nothing to continue, watch something first")
		}
		bubble.resume = latest.ID
	}

	_, err = tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
