// SPDX-License-Identifier: MPL-2.0

package assetcache

import (
	"iter"

	"assetkit/pkg/assetid"
)

type (
	// DirReader couples a directory index with the cache and a format,
	// and is the entry point for iterating a directory's assets. It is
	// a cheaply copyable value: the index and cache it points to are
	// shared, never duplicated, and a reader never holds a lock between
	// calls.
	DirReader struct {
		cache  *Cache
		format *Format
		index  *DirIndex
	}

	// LoadResult is the outcome of one all-mode load: either a decoded
	// value or the error the load surfaced.
	LoadResult struct {
		Value any
		Err   error
	}
)

// Cached returns a sequence of the successfully cached values of the
// directory, in snapshot order. Identifiers with no cached value are
// skipped silently; no I/O is performed. Each range over the sequence
// takes a fresh snapshot whose read lock is held until the range ends,
// so concurrent mutation is never observed mid-iteration.
func (r DirReader) Cached() iter.Seq[any] {
	return func(yield func(any) bool) {
		snap := r.index.list.snapshot()
		defer snap.release()
		for i := 0; i < snap.len(); i++ {
			v, ok := r.cache.LoadCached(r.format, snap.at(i))
			if !ok {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// All returns a sequence of (identifier, outcome) pairs for every
// tracked identifier, in snapshot order. Each identifier goes through a
// full load, which may read and decode on a cache miss; failures are
// yielded per identifier, never aborting the iteration. The number of
// pairs produced by an uninterrupted range equals the snapshot length.
func (r DirReader) All() iter.Seq2[assetid.ID, LoadResult] {
	return func(yield func(assetid.ID, LoadResult) bool) {
		snap := r.index.list.snapshot()
		defer snap.release()
		for i := 0; i < snap.len(); i++ {
			id := snap.at(i)
			v, err := r.cache.Load(r.format, id)
			if !yield(id, LoadResult{Value: v, Err: err}) {
				return
			}
		}
	}
}

// IDs returns a copy of the tracked identifiers in snapshot order.
func (r DirReader) IDs() []assetid.ID {
	snap := r.index.list.snapshot()
	defer snap.release()
	out := make([]assetid.ID, snap.len())
	for i := range out {
		out[i] = snap.at(i)
	}
	return out
}

// Len returns the number of identifiers currently tracked.
func (r DirReader) Len() int { return r.index.Len() }

// Index returns the underlying directory index, for hot-reload callers
// that mutate the tracked set directly.
func (r DirReader) Index() *DirIndex { return r.index }
