// Package preference persists user interface preferences.
package preference

import (
	"fmt"
	"strings"
	"sync"

	"github.com/aizenverse/aizen/filesystem"
	"github.com/aizenverse/aizen/log"
	"github.com/aizenverse/aizen/where"
	"github.com/metafates/gache"
)

// Theme is the color scheme of the front-ends.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// DefaultTheme applies when nothing was saved.
const DefaultTheme = Dark

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case Dark, Light:
		return t, nil
	default:
		return "", fmt.Errorf("unknown theme %q, expected dark or light", s)
	}
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

type preferences struct {
	Theme Theme `json:"theme"`
}

var (
	mu     sync.Mutex
	cacher = sync.OnceValue(func() *gache.Cache[*preferences] {
		return gache.New[*preferences](&gache.Options{
			Path:       where.Preferences(),
			FileSystem: &filesystem.GacheFs{},
		})
	})
)

func load() *preferences {
	p, expired, err := cacher().Get()
	if err != nil {
		log.Warnf("failed to read preferences: %v", err)
	}
	if err != nil || expired || p == nil {
		return &preferences{Theme: DefaultTheme}
	}
	if _, err := ParseTheme(string(p.Theme)); err != nil {
		p.Theme = DefaultTheme
	}
	return p
}

func save(p *preferences) {
	if err := cacher().Set(p); err != nil {
		log.Warnf("failed to write preferences: %v", err)
	}
}

// Get returns the saved theme, dark by default.
func Get() Theme {
	mu.Lock()
	defer mu.Unlock()

	return load().Theme
}

// Set saves the theme.
func Set(theme Theme) {
	mu.Lock()
	defer mu.Unlock()

	p := load()
	p.Theme = theme
	save(p)
}

// Toggle switches between dark and light and returns the new theme.
func Toggle() Theme {
	mu.Lock()
	defer mu.Unlock()

	p := load()
	p.Theme = p.Theme.Opposite()
	save(p)
	return p.Theme
}
