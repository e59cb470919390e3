package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aizenverse/aizen/source"
)

// Kind is one of the catalog listings.
type Kind string

const (
	RecentlyAdded Kind = "recently-added"
	Trending      Kind = "trending"
	MostPopular   Kind = "most-popular"
	TopAiring     Kind = "top-airing"
	MostFavorite  Kind = "most-favorite"
	Movies        Kind = "movies"
)

// Kinds lists every catalog in menu order.
var Kinds = []Kind{Trending, TopAiring, MostPopular, MostFavorite, Movies, RecentlyAdded}

var titles = map[Kind]string{
	RecentlyAdded: "Recently Added",
	Trending:      "Trending",
	MostPopular:   "Most Popular",
	TopAiring:     "Top Airing",
	MostFavorite:  "Most Favorite",
	Movies:        "Movies",
}

// Title is the human readable name of the listing.
func (k Kind) Title() string {
	return titles[k]
}

func (k Kind) endpoint() string {
	if k == Movies {
		return "/movie"
	}
	return "/" + string(k)
}

// Catalog fetches a page of a listing.
func (c *Client) Catalog(ctx context.Context, kind Kind, page int) (*source.Page[*source.AnimeSummary], error) {
	if _, ok := titles[kind]; !ok {
		return nil, fmt.Errorf("unknown catalog %q", kind)
	}

	var resp searchResponse
	if err := c.get(ctx, kind.endpoint(), pageParams(page), &resp, true); err != nil {
		return nil, err
	}
	return resp.page(), nil
}

// Search looks anime up by title.
func (c *Client) Search(ctx context.Context, query string, page int) (*source.Page[*source.AnimeSummary], error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}

	var resp searchResponse
	if err := c.get(ctx, "/"+url.PathEscape(query), pageParams(page), &resp, true); err != nil {
		return nil, err
	}
	return resp.page(), nil
}
