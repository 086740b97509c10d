// SPDX-License-Identifier: MPL-2.0

package assetcache

import (
	"slices"
	"sync"

	"assetkit/pkg/assetid"
)

type (
	// identifierList is the storage primitive behind a directory index:
	// an ordered sequence of identifiers guarded by a reader/writer
	// lock. Order reflects listing order at scan time with later
	// appends and removals applied positionally; it is never sorted.
	//
	// sync.RWMutex blocks new readers once a writer is waiting, so a
	// stream of overlapping snapshots cannot starve hot-reload writers.
	identifierList struct {
		mu  sync.RWMutex
		ids []assetid.ID
	}

	// listSnapshot is a read-locked view of an identifierList. The
	// shared-read lock is held from acquisition until release, so no
	// mutation can be observed through the view mid-flight: a
	// concurrent append or removal either fully precedes the snapshot
	// or waits for its release.
	listSnapshot struct {
		list *identifierList
		view []assetid.ID
	}
)

// append adds an identifier at the end under the exclusive lock. It is
// purely additive: duplicates are not checked.
func (l *identifierList) append(id assetid.ID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ids = append(l.ids, id)
}

// removeFirst deletes the first occurrence of id under the exclusive
// lock. Removing an absent identifier is a no-op.
func (l *identifierList) removeFirst(id assetid.ID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i := slices.Index(l.ids, id); i >= 0 {
		l.ids = slices.Delete(l.ids, i, i+1)
	}
}

// contains reports membership with a linear scan under the shared lock.
func (l *identifierList) contains(id assetid.ID) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Contains(l.ids, id)
}

func (l *identifierList) len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.ids)
}

// snapshot acquires the shared-read lock and returns a guard over the
// current contents. The caller owns the lock until release is called;
// every writer blocks for the guard's entire life. The guard must not be
// used after release.
func (l *identifierList) snapshot() *listSnapshot {
	l.mu.RLock()
	return &listSnapshot{list: l, view: l.ids}
}

func (s *listSnapshot) release() {
	s.list.mu.RUnlock()
}

func (s *listSnapshot) len() int { return len(s.view) }

func (s *listSnapshot) at(i int) assetid.ID { return s.view[i] }
