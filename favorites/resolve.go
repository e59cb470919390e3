package favorites

import (
	"context"
	"sync"

	"github.com/aizenverse/aizen/log"
	"github.com/aizenverse/aizen/source"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Resolver looks an anime up by id.
type Resolver interface {
	Info(ctx context.Context, id string) (*source.AnimeDetail, error)
}

// resolveLimit bounds concurrent lookups.
const resolveLimit = 4

// Resolve turns stored ids into summaries, keeping the order of ids.
// Ids that cannot be resolved are skipped.
func Resolve(ctx context.Context, r Resolver, ids []string) []*source.AnimeSummary {
	var (
		mu      sync.Mutex
		byID    = make(map[string]*source.AnimeSummary, len(ids))
		g, gctx = errgroup.WithContext(ctx)
	)
	g.SetLimit(resolveLimit)

	for _, id := range ids {
		id := id
		g.Go(func() error {
			detail, err := r.Info(gctx, id)
			if err != nil {
				log.Warnf("skipping unresolvable anime %s: %v", id, err)
				return nil
			}

			mu.Lock()
			byID[id] = &detail.AnimeSummary
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return lo.FilterMap(ids, func(id string, _ int) (*source.AnimeSummary, bool) {
		a, ok := byID[id]
		return a, ok
	})
}
