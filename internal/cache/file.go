package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aizenverse/aizen/filesystem"
	"github.com/aizenverse/aizen/log"
	"github.com/aizenverse/aizen/where"
	"github.com/spf13/afero"
)

const tmpSuffix = ".tmp"

type envelope struct {
	ExpiresAt time.Time       `json:"expires_at"`
	Value     json.RawMessage `json:"value"`
}

func (e *envelope) expired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}

// File keeps one JSON file per key in a directory of the virtual filesystem.
type File struct {
	dir string
	now func() time.Time
	mu  sync.Mutex
}

// NewFile returns a file backend rooted at dir.
func NewFile(dir string) *File {
	return &File{dir: dir, now: time.Now}
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *File) Get(_ context.Context, key string, target any) bool {
	data, err := filesystem.API().ReadFile(f.path(key))
	if err != nil {
		return false
	}

	var e envelope
	if err := json.Unmarshal(data, &e); err != nil || e.expired(f.now()) {
		return false
	}

	return json.Unmarshal(e.Value, target) == nil
}

// Set writes the entry to a temporary file first and renames it over the old one.
func (f *File) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	data, err := json.Marshal(envelope{ExpiresAt: f.now().Add(ttl), Value: raw})
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	fs := filesystem.API()
	if err := fs.MkdirAll(f.dir, os.ModePerm); err != nil {
		return err
	}

	path := f.path(key)
	tmp := path + tmpSuffix
	if err := fs.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	return fs.Rename(tmp, path)
}

// Prune removes expired, unreadable and leftover temporary entries.
// It returns the number of removed files.
func (f *File) Prune() int {
	fs := filesystem.API()
	now := f.now()
	removed := 0

	_ = fs.Walk(f.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		if strings.HasSuffix(path, tmpSuffix) || f.stale(fs, path, now) {
			if fs.Remove(path) == nil {
				removed++
			}
		}
		return nil
	})

	return removed
}

func (f *File) stale(fs afero.Afero, path string, now time.Time) bool {
	data, err := fs.ReadFile(path)
	if err != nil {
		return false
	}

	var e envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return true
	}
	return e.expired(now)
}

// CollectGarbage prunes the default response directory.
func CollectGarbage() {
	if n := NewFile(where.Responses()).Prune(); n > 0 {
		log.Debugf("pruned %d cached responses", n)
	}
}
