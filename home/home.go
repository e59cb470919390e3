// Package home assembles the landing page: the featured title, the hero carousel and
// the top-airing, recently added and movie sections.
package home

import (
	"context"

	"github.com/aizenverse/aizen/api"
	"github.com/aizenverse/aizen/key"
	"github.com/aizenverse/aizen/log"
	"github.com/aizenverse/aizen/navigation"
	"github.com/aizenverse/aizen/source"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

// FallbackNotice is shown when the landing page is built from the static dataset.
const FallbackNotice = "Using fallback data due to API connectivity issues."

const heroSize = 8

// Cataloger fetches catalog listings.
type Cataloger interface {
	Catalog(ctx context.Context, kind api.Kind, page int) (*source.Page[*source.AnimeSummary], error)
}

// Landing is everything the landing page renders.
type Landing struct {
	Featured  *source.AnimeSummary
	TopAiring []*source.AnimeSummary
	Recent    []*source.AnimeSummary
	Movies    []*source.AnimeSummary

	// Slides and Side split the hero list between the carousel and the list beside it.
	Slides []*source.AnimeSummary
	Side   []*source.AnimeSummary

	// Err is the first fetch error. The sections are empty or fallback data when set.
	Err          error
	UsedFallback bool
}

// Notice is the banner explaining degraded content, if any.
func (l *Landing) Notice() string {
	if l.UsedFallback {
		return FallbackNotice
	}
	return ""
}

// Load fetches the three sections concurrently. If any of them fails the page falls
// back to the static dataset, unless home.fallback is off.
func Load(ctx context.Context, c Cataloger) *Landing {
	var (
		recent, movies, airing *source.Page[*source.AnimeSummary]
		g, gctx                = errgroup.WithContext(ctx)
	)

	g.Go(func() (err error) { recent, err = c.Catalog(gctx, api.RecentlyAdded, 1); return })
	g.Go(func() (err error) { movies, err = c.Catalog(gctx, api.Movies, 1); return })
	g.Go(func() (err error) { airing, err = c.Catalog(gctx, api.TopAiring, 1); return })

	landing := &Landing{}
	if err := g.Wait(); err != nil {
		log.Warnf("failed to load landing page: %v", err)
		landing.Err = err

		if viper.GetBool(key.HomeFallback) {
			landing.UsedFallback = true
			landing.TopAiring = Trending()
			landing.Recent = Popular()
			landing.Movies = Popular()
			landing.Featured = landing.TopAiring[0]
		}
	} else {
		landing.Recent = recent.Results
		landing.Movies = movies.Results
		landing.TopAiring = airing.Results
		if len(landing.Recent) > 0 {
			landing.Featured = landing.Recent[0]
		}
	}

	landing.Slides, landing.Side = navigation.SplitHero(landing.hero())
	return landing
}

// hero is the featured title followed by top-airing and recent ones.
func (l *Landing) hero() []*source.AnimeSummary {
	var all []*source.AnimeSummary
	if l.Featured != nil {
		all = append(all, l.Featured)
	}
	all = append(all, l.TopAiring...)
	all = append(all, l.Recent...)
	return all[:min(len(all), heroSize)]
}
