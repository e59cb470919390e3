// Package favorites keeps ordered sets of anime ids: the favorites and the watchlist.
package favorites

import (
	"slices"
	"sync"

	"github.com/aizenverse/aizen/filesystem"
	"github.com/aizenverse/aizen/log"
	"github.com/aizenverse/aizen/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Set is an insertion-ordered set of ids persisted to disk.
// Storage failures are logged and leave the set unchanged.
type Set struct {
	mu     sync.Mutex
	path   string
	cacher *gache.Cache[[]string]
}

// New opens the set persisted at path.
func New(path string) *Set {
	return &Set{
		path: path,
		cacher: gache.New[[]string](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

var (
	favorites = sync.OnceValue(func() *Set { return New(where.Favorites()) })
	watchlist = sync.OnceValue(func() *Set { return New(where.Watchlist()) })
)

// Favorites is the set toggled from anime pages.
func Favorites() *Set { return favorites() }

// Watchlist is the "my list" set.
func Watchlist() *Set { return watchlist() }

func (s *Set) load() []string {
	ids, expired, err := s.cacher.Get()
	if err != nil {
		log.WithFields(logrus.Fields{"path": s.path}).WithError(err).Warn("failed to read set")
		return nil
	}
	if expired {
		return nil
	}
	return ids
}

func (s *Set) save(ids []string) {
	if err := s.cacher.Set(ids); err != nil {
		log.WithFields(logrus.Fields{"path": s.path}).WithError(err).Warn("failed to write set")
	}
}

// List returns the ids in the order they were added.
func (s *Set) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.load())
}

// Has reports whether id is in the set.
func (s *Set) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lo.Contains(s.load(), id)
}

// Add appends id unless it is already present.
func (s *Set) Add(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.load()
	if !lo.Contains(ids, id) {
		s.save(append(ids, id))
	}
}

// Remove drops id.
func (s *Set) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.load()
	if lo.Contains(ids, id) {
		s.save(lo.Without(ids, id))
	}
}

// Toggle adds id if absent and removes it otherwise. It reports whether id was added.
func (s *Set) Toggle(id string) (added bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.load()
	if lo.Contains(ids, id) {
		s.save(lo.Without(ids, id))
		return false
	}

	s.save(append(ids, id))
	return true
}
