// Package icon renders the status symbols printed next to CLI and TUI messages.
// The look is chosen with the icons.variant setting.
package icon

import (
	"github.com/aizenverse/aizen/key"
	"github.com/spf13/viper"
)

const (
	plain   = "plain"
	emoji   = "emoji"
	kaomoji = "kaomoji"
	squares = "squares"
	nerd    = "nerd"
)

// AvailableVariants lists the values accepted by icons.variant.
func AvailableVariants() []string {
	return []string{plain, emoji, kaomoji, squares, nerd}
}

// symbol is one icon drawn in every variant.
type symbol struct {
	plain, emoji, kaomoji, squares, nerd string
}

func (s *symbol) in(variant string) string {
	switch variant {
	case plain:
		return s.plain
	case emoji:
		return s.emoji
	case kaomoji:
		return s.kaomoji
	case squares:
		return s.squares
	case nerd:
		return s.nerd
	}
	return ""
}

// Get renders i in the configured variant. Unknown variants render nothing.
func Get(i Icon) string {
	s, ok := icons[i]
	if !ok {
		return ""
	}
	return s.in(viper.GetString(key.IconsVariant))
}
