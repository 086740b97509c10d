// SPDX-License-Identifier: MPL-2.0

package assetcache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"assetkit/pkg/assetid"
)

type (
	// Cache loads and retains decoded asset values for one root
	// directory. Entries are keyed by (format name, identifier) so
	// distinct formats can track the same identifier independently.
	// All methods are safe for concurrent use.
	Cache struct {
		root string
		mut  mutability

		mu     sync.RWMutex
		assets map[entryKey]any
		dirs   map[entryKey]*DirIndex
	}

	// Option configures a Cache at construction time.
	Option func(*Cache)

	entryKey struct {
		format string
		id     assetid.ID
	}
)

// WithHotReload makes the cache's directory indexes mutable so a
// filesystem watcher can apply add/remove events. Without this option
// indexes are frozen after their scan and mutation calls are no-ops.
func WithHotReload() Option {
	return func(c *Cache) {
		c.mut = liveMutability{}
	}
}

// New creates a cache rooted at the given directory. The directory is
// not validated here; a missing root surfaces naturally as not-found
// load errors and failed scans.
func New(root string, opts ...Option) *Cache {
	c := &Cache{
		root:   root,
		mut:    frozenMutability{},
		assets: make(map[entryKey]any),
		dirs:   make(map[entryKey]*DirIndex),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Root returns the cache's root directory.
func (c *Cache) Root() string { return c.root }

// HotReload reports whether the cache was created with hot reload
// enabled.
func (c *Cache) HotReload() bool {
	_, live := c.mut.(liveMutability)
	return live
}

// Load returns the cached value for id, or reads and decodes it from
// disk, caching the result. The identifier resolves to a path under the
// cache root by mapping dot segments to path separators; each accepted
// extension of the format is probed in order. Returns a NotFoundError
// when no candidate file exists and a DecodeError when the file's bytes
// fail to decode.
func (c *Cache) Load(f *Format, id assetid.ID) (any, error) {
	if v, ok := c.LoadCached(f, id); ok {
		return v, nil
	}

	v, err := c.loadFromDisk(f, id)
	if err != nil {
		return nil, err
	}

	// Two goroutines may race to load the same asset; both decode the
	// same bytes, so keeping the later store is harmless.
	c.mu.Lock()
	c.assets[entryKey{f.Name, id}] = v
	c.mu.Unlock()
	return v, nil
}

// LoadCached returns the cached value for id without touching the
// filesystem. The second result reports whether a value was present.
func (c *Cache) LoadCached(f *Format, id assetid.ID) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.assets[entryKey{f.Name, id}]
	return v, ok
}

// Remove evicts the cached value for id and reports whether one was
// present. Tracked directory indexes are unaffected: the identifier
// stays listed and a later load can re-read it from disk.
func (c *Cache) Remove(f *Format, id assetid.ID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := entryKey{f.Name, id}
	_, ok := c.assets[key]
	delete(c.assets, key)
	return ok
}

// LoadDir scans the directory named by id (non-recursively) and returns
// a reader over its matching assets. The first scan of a directory is
// retained; subsequent calls return a reader over the same live index,
// so hot-reload mutations are visible to every reader of the directory.
// Fails only if the directory itself cannot be listed.
func (c *Cache) LoadDir(f *Format, id assetid.ID) (DirReader, error) {
	key := entryKey{f.Name, id}

	c.mu.RLock()
	idx, ok := c.dirs[key]
	c.mu.RUnlock()

	if !ok {
		scanned, err := scanDir(c, f, filepath.Join(c.root, id.RelPath()), id)
		if err != nil {
			return DirReader{}, err
		}

		c.mu.Lock()
		// A concurrent LoadDir may have won the scan race; the stored
		// index stays authoritative so all readers share one index.
		if existing, raced := c.dirs[key]; raced {
			idx = existing
		} else {
			c.dirs[key] = scanned
			idx = scanned
		}
		c.mu.Unlock()
	}

	return DirReader{cache: c, format: f, index: idx}, nil
}

// dirIndex returns the retained index for a scanned directory, if any.
func (c *Cache) dirIndex(f *Format, id assetid.ID) (*DirIndex, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	idx, ok := c.dirs[entryKey{f.Name, id}]
	return idx, ok
}

// loadFromDisk resolves id to a file and decodes it.
func (c *Cache) loadFromDisk(f *Format, id assetid.ID) (any, error) {
	base := filepath.Join(c.root, id.RelPath())
	for _, ext := range f.Extensions {
		path := base
		if ext != "" {
			path += "." + ext
		}

		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("assetcache: read asset %q: %w", id, err)
		}

		v, err := f.Decode(data)
		if err != nil {
			return nil, &DecodeError{ID: id, Format: f.Name, Path: path, Err: err}
		}
		return v, nil
	}

	return nil, &NotFoundError{ID: id, Format: f.Name}
}
