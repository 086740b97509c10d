// SPDX-License-Identifier: MPL-2.0

package assetcache

import (
	"fmt"
	"log/slog"
	"os"

	"assetkit/pkg/assetid"
)

type (
	// DirIndex tracks the identifiers discovered in exactly one
	// directory. It is created by a scan, owned by the cache for its
	// whole life, and mutated in place by Add and Remove when the cache
	// was created with hot reload enabled.
	DirIndex struct {
		path string
		id   assetid.ID
		list identifierList
		mut  mutability
	}

	// mutability is the hot-reload capability of a DirIndex. The live
	// variant applies mutations; the frozen variant ignores them, so a
	// cache without hot reload carries effectively read-only indexes
	// without conditional branches at every call site.
	mutability interface {
		add(l *identifierList, id assetid.ID)
		remove(l *identifierList, id assetid.ID)
	}

	liveMutability   struct{}
	frozenMutability struct{}
)

func (liveMutability) add(l *identifierList, id assetid.ID)    { l.append(id) }
func (liveMutability) remove(l *identifierList, id assetid.ID) { l.removeFirst(id) }

func (frozenMutability) add(*identifierList, assetid.ID)    {}
func (frozenMutability) remove(*identifierList, assetid.ID) {}

// scanDir lists dir non-recursively and builds an index of the regular
// files the format accepts. Each matching identifier is best-effort
// loaded into the cache; a load failure is swallowed so the identifier
// stays tracked and a later on-demand access can retry. Entries that are
// not regular files are skipped silently. The only failure mode is the
// directory listing itself.
func scanDir(c *Cache, f *Format, dir string, parent assetid.ID) (*DirIndex, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("assetcache: list directory %q: %w", dir, err)
	}

	idx := &DirIndex{path: dir, id: parent, mut: c.mut}
	for _, ent := range entries {
		if !ent.Type().IsRegular() {
			continue
		}
		name := ent.Name()
		if !f.Accepts(name) {
			continue
		}

		childID := parent.Join(fileStem(name))
		if _, err := c.Load(f, childID); err != nil {
			slog.Debug("asset preload failed during scan", "id", childID, "error", err)
		}
		idx.list.append(childID)
	}

	return idx, nil
}

// ID returns the identifier of the scanned directory.
func (d *DirIndex) ID() assetid.ID { return d.id }

// Path returns the absolute directory path the index was scanned from.
func (d *DirIndex) Path() string { return d.path }

// Contains reports whether id is tracked, using a linear scan under the
// shared-read lock.
func (d *DirIndex) Contains(id assetid.ID) bool {
	return d.list.contains(id)
}

// Add appends id to the index. It is purely additive and performs no
// duplicate check; callers that need uniqueness must guard with
// Contains. A no-op when the owning cache has hot reload disabled.
func (d *DirIndex) Add(id assetid.ID) {
	d.mut.add(&d.list, id)
}

// Remove deletes the first tracked occurrence of id. Removing an absent
// identifier is a silent no-op, as is any Remove when the owning cache
// has hot reload disabled.
func (d *DirIndex) Remove(id assetid.ID) {
	d.mut.remove(&d.list, id)
}

// Len returns the current number of tracked identifiers.
func (d *DirIndex) Len() int { return d.list.len() }
