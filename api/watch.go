package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/aizenverse/aizen/source"
)

// Watch resolves the streaming links of an episode. Links expire, so they are never cached.
func (c *Client) Watch(ctx context.Context, episodeID string, server source.Server, category source.Category) (*source.StreamSource, error) {
	if episodeID == "" {
		return nil, fmt.Errorf("episode id cannot be empty")
	}

	if server == "" {
		server = source.VidStreaming
	}

	if category == "" {
		category = source.Sub
	}

	params := url.Values{
		"server":   {string(server)},
		"category": {string(category)},
	}

	var resp streamingLinks
	if err := c.get(ctx, "/watch/"+url.PathEscape(episodeID), params, &resp, false); err != nil {
		return nil, err
	}
	return resp.stream(), nil
}
