// Package navigation holds the small state machines behind browsing: moving between
// episodes and cycling the hero carousel.
package navigation

import (
	"github.com/aizenverse/aizen/source"
	"github.com/samber/mo"
)

// Episodes moves through an anime's ordered episode list.
type Episodes struct {
	episodes []*source.Episode
	index    int
}

// NewEpisodes positions the navigator at currentID. An unknown id leaves it at -1,
// where neither direction is available.
func NewEpisodes(episodes []*source.Episode, currentID string) *Episodes {
	n := &Episodes{episodes: episodes, index: -1}
	for i, e := range episodes {
		if e.ID == currentID {
			n.index = i
			break
		}
	}
	return n
}

// Index of the current episode, or -1.
func (n *Episodes) Index() int { return n.index }

// Len is the number of episodes.
func (n *Episodes) Len() int { return len(n.episodes) }

// Current returns the current episode.
func (n *Episodes) Current() mo.Option[*source.Episode] {
	return n.at(n.index)
}

func (n *Episodes) HasPrev() bool {
	return n.index > 0
}

func (n *Episodes) HasNext() bool {
	return n.index >= 0 && n.index < len(n.episodes)-1
}

// Prev returns the previous episode without moving.
func (n *Episodes) Prev() mo.Option[*source.Episode] {
	if !n.HasPrev() {
		return mo.None[*source.Episode]()
	}
	return n.at(n.index - 1)
}

// Next returns the following episode without moving.
func (n *Episodes) Next() mo.Option[*source.Episode] {
	if !n.HasNext() {
		return mo.None[*source.Episode]()
	}
	return n.at(n.index + 1)
}

func (n *Episodes) at(i int) mo.Option[*source.Episode] {
	if i < 0 || i >= len(n.episodes) {
		return mo.None[*source.Episode]()
	}
	return mo.Some(n.episodes[i])
}
