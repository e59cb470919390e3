// Package query remembers past searches and suggests them back while typing.
package query

import (
	"slices"
	"strings"
	"sync"

	"github.com/aizenverse/aizen/filesystem"
	"github.com/aizenverse/aizen/key"
	"github.com/aizenverse/aizen/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

type record struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var cacher = sync.OnceValue(func() *gache.Cache[map[string]*record] {
	return gache.New[map[string]*record](&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	})
})

var (
	mu          sync.Mutex
	suggestions = make(map[string][]*record)
)

func load() map[string]*record {
	cached, expired, err := cacher().Get()
	if expired || err != nil || cached == nil {
		return make(map[string]*record)
	}
	return cached
}

// Remember records a search query, raising its rank by weight if it was seen before.
func Remember(q string, weight int) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	cached := load()
	if r, ok := cached[q]; ok {
		r.Rank += weight
	} else {
		cached[q] = &record{Rank: weight, Query: q}
	}

	clear(suggestions)
	return cacher().Set(cached)
}

// Suggest returns the best ranked past query matching q.
func Suggest(q string) mo.Option[string] {
	many := SuggestMany(q)
	if len(many) == 0 {
		return mo.None[string]()
	}
	return mo.Some(many[0])
}

// SuggestMany returns past queries fuzzily matching q, highest rank first.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)

	mu.Lock()
	defer mu.Unlock()

	records, ok := suggestions[q]
	if !ok {
		for _, r := range load() {
			if fuzzy.Match(q, r.Query) {
				records = append(records, r)
			}
		}

		slices.SortFunc(records, func(a, b *record) int {
			if a.Rank != b.Rank {
				return b.Rank - a.Rank
			}
			return strings.Compare(a.Query, b.Query)
		})
		suggestions[q] = records
	}

	return lo.Map(records, func(r *record, _ int) string {
		return r.Query
	})
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
