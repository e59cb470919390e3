package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aizenverse/aizen/log"
	"github.com/aizenverse/aizen/source"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
)

// ErrNotFound is returned by FindClosest when a search has no results.
var ErrNotFound = errors.New("no anime found")

// Info fetches an anime with its episode list.
func (c *Client) Info(ctx context.Context, id string) (*source.AnimeDetail, error) {
	if id == "" {
		return nil, fmt.Errorf("anime id cannot be empty")
	}

	var resp animeInfo
	if err := c.get(ctx, "/info", url.Values{"id": {id}}, &resp, true); err != nil {
		return nil, err
	}
	return resp.detail(), nil
}

// InfoForEpisode finds the anime an episode belongs to. The id derived from the
// episode id is tried first, the episode id itself second.
func (c *Client) InfoForEpisode(ctx context.Context, episodeID string) (*source.AnimeDetail, error) {
	animeID := source.AnimeIDFromEpisode(episodeID)

	detail, err := c.Info(ctx, animeID)
	if err == nil || animeID == episodeID || ctx.Err() != nil {
		return detail, err
	}

	log.Warnf("info for %q failed, retrying with the episode id: %v", animeID, err)
	return c.Info(ctx, episodeID)
}

// FindClosest searches for title and returns the result whose title is nearest to it.
func (c *Client) FindClosest(ctx context.Context, title string) (*source.AnimeSummary, error) {
	page, err := c.Search(ctx, title, 1)
	if err != nil {
		return nil, err
	}

	if len(page.Results) == 0 {
		return nil, fmt.Errorf("%w for %q", ErrNotFound, title)
	}

	return closest(title, page.Results), nil
}

func closest(title string, candidates []*source.AnimeSummary) *source.AnimeSummary {
	title = strings.ToLower(title)

	best, bestDistance := candidates[0], -1
	for _, candidate := range candidates {
		d := levenshtein.Distance(title, strings.ToLower(candidate.Title))
		if bestDistance == -1 || d < bestDistance {
			best, bestDistance = candidate, d
		}
	}

	return best
}
