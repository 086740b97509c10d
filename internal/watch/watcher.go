// SPDX-License-Identifier: MPL-2.0

// Package watch provides filesystem watching with debounced, typed
// change events for asset hot reload.
//
// It monitors a directory tree and invokes a callback after a
// configurable debounce period with the coalesced set of file events.
// Events for one path within the window collapse into a single event
// carrying their net effect, so an editor writing then renaming a temp
// file surfaces as one change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is the delay before firing the OnBatch callback after
// the last filesystem event.
const defaultDebounce = 500 * time.Millisecond

// defaultIgnores lists path patterns that are always excluded from
// watching, regardless of user-supplied ignore patterns. These cover
// VCS metadata, editor swap files, and OS metadata files that generate
// high-frequency noise inside asset trees.
var defaultIgnores = []string{
	"**/.git/**",
	"**/*.swp",
	"**/*.swo",
	"**/*~",
	"**/.DS_Store",
	"**/Thumbs.db",
}

// Op classifies the net effect of the filesystem events observed for
// one path within a debounce window.
type Op int

const (
	// OpCreate means the path appeared during the window.
	OpCreate Op = iota
	// OpWrite means the path existed before the window and its
	// contents changed.
	OpWrite
	// OpRemove means the path was removed or renamed away.
	OpRemove
)

// String returns the lowercase operation name.
func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpWrite:
		return "write"
	case OpRemove:
		return "remove"
	default:
		return "unknown"
	}
}

type (
	// Event is one coalesced file change. Path is relative to the
	// watched directory.
	Event struct {
		Op   Op
		Path string
	}

	// Config holds the parameters for a Watcher.
	Config struct {
		// Dir is the root directory to watch, recursively. An empty
		// value defaults to the current working directory.
		Dir string

		// Ignore are additional doublestar-compatible glob patterns for
		// paths that should never produce events. These are merged with
		// the built-in default ignores.
		Ignore []string

		// Debounce is the quiet period after the last event before the
		// callback fires. Zero or negative values fall back to
		// defaultDebounce.
		Debounce time.Duration

		// OnBatch is called after the debounce window closes with the
		// coalesced events ordered by path. A nil callback is a no-op.
		OnBatch func(ctx context.Context, events []Event) error
	}

	// Watcher monitors a directory tree and fires a debounced callback
	// when files change. Run must be called exactly once; calling it a
	// second time returns an error.
	Watcher struct {
		cfg      Config
		fsw      *fsnotify.Watcher
		ignores  []string
		debounce time.Duration
		baseDir  string
		started  atomic.Bool
	}
)

// New creates a Watcher from the given Config. It resolves Dir to an
// absolute path, initialises the underlying fsnotify watcher, and
// registers all non-ignored directories under Dir for monitoring.
func New(cfg Config) (*Watcher, error) {
	dir := cfg.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("watch: determine working directory: %w", err)
		}
		dir = wd
	}

	absBase, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve base directory: %w", err)
	}

	// Validate patterns eagerly so invalid globs fail at construction
	// time rather than silently failing to match at runtime.
	if err := validatePatterns(cfg.Ignore); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	// Merge user ignores with built-in defaults.
	ignores := make([]string, 0, len(defaultIgnores)+len(cfg.Ignore))
	ignores = append(ignores, defaultIgnores...)
	ignores = append(ignores, cfg.Ignore...)

	w := &Watcher{
		cfg:      cfg,
		fsw:      fsw,
		ignores:  ignores,
		debounce: debounce,
		baseDir:  absBase,
	}

	if err := w.addDirectories(); err != nil {
		if closeErr := fsw.Close(); closeErr != nil {
			slog.Warn("close fsnotify after init failure", "error", closeErr)
		}
		return nil, err
	}

	return w, nil
}

// Dir returns the absolute path of the watched directory.
func (w *Watcher) Dir() string { return w.baseDir }

// Run blocks until ctx is cancelled, processing filesystem events and
// dispatching debounced callbacks. It returns nil on clean context
// cancellation and propagates any fatal watcher errors. Run must be
// called exactly once; a second call returns an error immediately.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return fmt.Errorf("watch: Run called more than once")
	}

	var (
		mu      sync.Mutex
		pending = make(map[string]Op)
		timer   *time.Timer
	)

	// fire drains the pending set and invokes the OnBatch callback.
	// It may be scheduled by time.AfterFunc after the context is
	// cancelled, so check ctx.Err() as a best-effort guard. A narrow
	// TOCTOU window remains between the check and the invocation; the
	// callback receives ctx and should check it for
	// cancellation-sensitive work.
	fire := func() {
		if ctx.Err() != nil {
			return
		}

		mu.Lock()
		if len(pending) == 0 {
			mu.Unlock()
			return
		}
		events := make([]Event, 0, len(pending))
		for _, path := range slices.Sorted(maps.Keys(pending)) {
			events = append(events, Event{Op: pending[path], Path: path})
		}
		clear(pending)
		mu.Unlock()

		if w.cfg.OnBatch != nil {
			if err := w.cfg.OnBatch(ctx, events); err != nil {
				slog.Warn("watch callback error", "error", err)
			}
		}
	}

	// Ensure the timer channel is drained on exit. The timer is
	// accessed under mu because it is written by the event loop under
	// the same lock.
	defer func() {
		mu.Lock()
		localTimer := timer
		mu.Unlock()
		if localTimer != nil && !localTimer.Stop() {
			select {
			case <-localTimer.C:
			default:
			}
		}
		if closeErr := w.fsw.Close(); closeErr != nil {
			slog.Warn("close fsnotify", "error", closeErr)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watch: fsnotify event channel closed unexpectedly")
			}

			rel, err := filepath.Rel(w.baseDir, evt.Name)
			if err != nil {
				rel = evt.Name
			}

			if w.isIgnored(rel) {
				continue
			}

			op, relevant := classify(evt)
			if !relevant {
				continue
			}

			// Auto-add newly created directories so recursive watches
			// extend to directories created after startup.
			if op == OpCreate {
				w.maybeAddDir(evt.Name)
			}

			mu.Lock()
			pending[rel] = coalesce(pending, rel, op)
			if timer == nil {
				timer = time.AfterFunc(w.debounce, fire)
			} else {
				timer.Reset(w.debounce)
			}
			mu.Unlock()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watch: fsnotify error channel closed unexpectedly")
			}
			// Resource exhaustion (inotify limit, file descriptor
			// limits) means the watcher is fundamentally broken.
			// isFatalFsnotifyError is platform-specific (see
			// watcher_fatal_*.go).
			if isFatalFsnotifyError(err) {
				return fmt.Errorf("watch: fatal fsnotify error: %w", err)
			}
			slog.Warn("fsnotify error", "error", err)
		}
	}
}

// classify maps a raw fsnotify event to an Op. Chmod-only events carry
// no content change and are dropped.
func classify(evt fsnotify.Event) (Op, bool) {
	switch {
	case evt.Has(fsnotify.Create):
		return OpCreate, true
	case evt.Has(fsnotify.Remove), evt.Has(fsnotify.Rename):
		return OpRemove, true
	case evt.Has(fsnotify.Write):
		return OpWrite, true
	default:
		return 0, false
	}
}

// coalesce folds a new operation into the pending one for the same path
// so a batch reports the net effect: a write after a create stays a
// create, a remove supersedes earlier writes, and a create after a
// remove collapses to a write since the path exists on both sides of
// the window.
func coalesce(pending map[string]Op, rel string, op Op) Op {
	prev, seen := pending[rel]
	if !seen {
		return op
	}
	switch {
	case prev == OpCreate && op == OpWrite:
		return OpCreate
	case prev == OpRemove && op == OpCreate:
		return OpWrite
	default:
		return op
	}
}

// addDirectories walks Dir and adds every non-ignored directory to the
// fsnotify watcher. Files are not registered individually; fsnotify
// reports events for a directory's entries once the directory itself is
// watched.
func (w *Watcher) addDirectories() error {
	walkErr := filepath.WalkDir(w.baseDir, func(path string, d os.DirEntry, walkDirErr error) error {
		if walkDirErr != nil {
			// Best-effort: skip directories we cannot access rather
			// than aborting the entire walk.
			slog.Warn("skipping inaccessible path", "path", path, "error", walkDirErr)
			return nil //nolint:nilerr // intentional skip of inaccessible paths
		}
		if !d.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(w.baseDir, path)
		if relErr != nil {
			return nil //nolint:nilerr // skip paths that cannot be made relative
		}

		// Skip ignored directories entirely to avoid descending into them.
		if w.isIgnored(rel) || w.isIgnored(rel+"/") {
			return filepath.SkipDir
		}

		if addErr := w.fsw.Add(path); addErr != nil {
			return fmt.Errorf("watch: add directory %q: %w", path, addErr)
		}
		return nil
	})
	if walkErr != nil {
		return fmt.Errorf("watch: walk directory tree: %w", walkErr)
	}
	return nil
}

// maybeAddDir adds path to the fsnotify watcher if it is a directory
// and is not ignored. This enables automatic monitoring of directories
// created after the initial walk.
func (w *Watcher) maybeAddDir(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}

	rel, err := filepath.Rel(w.baseDir, path)
	if err != nil {
		return
	}

	if w.isIgnored(rel) || w.isIgnored(rel+"/") {
		return
	}

	if addErr := w.fsw.Add(path); addErr != nil {
		slog.Warn("add new directory", "path", path, "error", addErr)
	}
}

// isIgnored returns true if the given path (relative to Dir) matches
// any ignore pattern.
func (w *Watcher) isIgnored(rel string) bool {
	// Normalise to forward slashes for consistent glob matching.
	normalized := filepath.ToSlash(rel)
	for _, pat := range w.ignores {
		if matched, matchErr := doublestar.Match(pat, normalized); matchErr == nil && matched {
			return true
		}
	}
	return false
}

// DefaultIgnores returns a copy of the built-in ignore patterns.
func DefaultIgnores() []string {
	return slices.Clone(defaultIgnores)
}

// validatePatterns checks that every pattern in the slice is a valid
// doublestar glob.
func validatePatterns(patterns []string) error {
	for _, pat := range patterns {
		if _, err := doublestar.Match(pat, ""); err != nil {
			return fmt.Errorf("watch: invalid ignore pattern %q: %w", pat, err)
		}
	}
	return nil
}
