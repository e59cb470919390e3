// Package recency implements a bounded, most-recent-first list persisted to disk.
//
// Recording an entry moves it to the front, dropping any earlier entry with the same key,
// and the list never grows past its cap. Storage failures are logged and otherwise ignored:
// a broken history file must never break browsing.
package recency

import (
	"sync"

	"github.com/aizenverse/aizen/filesystem"
	"github.com/aizenverse/aizen/log"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Entry is anything identified by a key.
type Entry interface {
	Key() string
}

// Store is a capped recency list of T.
type Store[T Entry] struct {
	mu     sync.Mutex
	path   string
	max    int
	cacher *gache.Cache[[]T]
}

// New opens the store persisted at path, holding at most max entries.
func New[T Entry](path string, max int) *Store[T] {
	return &Store[T]{
		path: path,
		max:  max,
		cacher: gache.New[[]T](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

func (s *Store[T]) load() []T {
	cached, expired, err := s.cacher.Get()
	if err != nil {
		s.warn(err, "failed to read")
		return nil
	}
	if expired {
		return nil
	}
	return cached
}

// save persists entries. When the write fails the in-memory copy goes back to previous,
// so a failed operation leaves the list as it was.
func (s *Store[T]) save(previous, entries []T) {
	if err := s.cacher.Set(entries); err != nil {
		s.warn(err, "failed to write")
		_ = s.cacher.Set(previous)
	}
}

func (s *Store[T]) warn(err error, msg string) {
	log.WithFields(logrus.Fields{"path": s.path}).WithError(err).Warn(msg)
}

// List returns the entries, newest first.
func (s *Store[T]) List() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]T(nil), s.load()...)
}

// Record puts entry at the front of the list.
func (s *Store[T]) Record(entry T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load()
	s.save(entries, prepend(entries, entry, s.max))
}

// Remove drops the entry with the given key, if any.
func (s *Store[T]) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load()
	kept := lo.Reject(entries, func(e T, _ int) bool { return e.Key() == key })
	if len(kept) != len(entries) {
		s.save(entries, kept)
	}
}

// Clear empties the list.
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.save(s.load(), []T{})
}

func prepend[T Entry](entries []T, entry T, max int) []T {
	key := entry.Key()
	result := make([]T, 0, len(entries)+1)
	result = append(result, entry)
	for _, e := range entries {
		if e.Key() != key {
			result = append(result, e)
		}
	}

	if max > 0 && len(result) > max {
		result = result[:max]
	}
	return result
}
