// Package player launches media players for a resolved stream.
package player

import (
	"context"
	"fmt"

	"github.com/aizenverse/aizen/key"
	"github.com/spf13/viper"
)

// Target is what to play.
type Target struct {
	URL       string
	Title     string
	Headers   map[string]string
	Subtitles []string
}

// Player starts playback of a target. Play returns once the player has been launched,
// it does not wait for playback to end.
type Player interface {
	Name() string
	Play(ctx context.Context, target Target) error
}

const (
	NameMPV     = "mpv"
	NameBrowser = "browser"
)

// Names lists the available players.
var Names = []string{NameMPV, NameBrowser}

// New returns the player called name.
func New(name string) (Player, error) {
	switch name {
	case NameMPV:
		return NewMPV(), nil
	case NameBrowser:
		return &Browser{}, nil
	default:
		return nil, fmt.Errorf("unknown player %q, expected one of %v", name, Names)
	}
}

// FromConfig returns the player configured as player.default.
func FromConfig() (Player, error) {
	return New(viper.GetString(key.Player))
}
