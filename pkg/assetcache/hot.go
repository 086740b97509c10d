// SPDX-License-Identifier: MPL-2.0

package assetcache

import (
	"log/slog"
	"path/filepath"
	"strings"

	"assetkit/pkg/assetid"
)

// Hot-reload entry points. A filesystem watcher translates its events
// into these calls; each one is a no-op unless the cache was created
// with WithHotReload and the event concerns a directory that has been
// scanned. Failures stay local to the one asset involved.

// OnFileCreated records a newly created asset file: the identifier is
// added to its directory's index (guarded against duplicates, since Add
// itself is purely additive) and best-effort loaded into the cache.
func (c *Cache) OnFileCreated(f *Format, path string) {
	if !c.HotReload() {
		return
	}
	id, idx, ok := c.resolveEvent(f, path)
	if !ok {
		return
	}

	if !idx.Contains(id) {
		idx.Add(id)
	}
	if _, err := c.Load(f, id); err != nil {
		slog.Debug("hot reload: load of created asset failed", "id", id, "error", err)
	}
	slog.Debug("hot reload: asset added", "id", id, "format", f.Name)
}

// OnFileChanged re-reads a modified asset file and replaces its cached
// value. A failed re-read evicts the stale value so cached-only readers
// stop seeing it; the identifier stays tracked for retry.
func (c *Cache) OnFileChanged(f *Format, path string) {
	if !c.HotReload() {
		return
	}
	id, _, ok := c.resolveEvent(f, path)
	if !ok {
		return
	}

	c.Remove(f, id)
	if _, err := c.Load(f, id); err != nil {
		slog.Debug("hot reload: reload failed", "id", id, "error", err)
		return
	}
	slog.Debug("hot reload: asset reloaded", "id", id, "format", f.Name)
}

// OnFileRemoved drops a deleted asset: the identifier is removed from
// its directory's index and its cached value evicted.
func (c *Cache) OnFileRemoved(f *Format, path string) {
	if !c.HotReload() {
		return
	}
	id, idx, ok := c.resolveEvent(f, path)
	if !ok {
		return
	}

	idx.Remove(id)
	c.Remove(f, id)
	slog.Debug("hot reload: asset removed", "id", id, "format", f.Name)
}

// resolveEvent maps an event path to its identifier and the retained
// index of its parent directory. Events for files the format does not
// accept, files outside the root, or directories that were never
// scanned resolve to ok == false.
func (c *Cache) resolveEvent(f *Format, path string) (assetid.ID, *DirIndex, bool) {
	rel, err := filepath.Rel(c.root, path)
	if err != nil || rel == "." || rel == ".." ||
		strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", nil, false
	}
	if !f.Accepts(filepath.Base(rel)) {
		return "", nil, false
	}

	stemRel := filepath.Join(filepath.Dir(rel), fileStem(filepath.Base(rel)))
	id := assetid.FromRelPath(stemRel)
	idx, ok := c.dirIndex(f, id.Parent())
	if !ok {
		return "", nil, false
	}
	return id, idx, true
}
