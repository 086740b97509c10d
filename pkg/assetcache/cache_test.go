// SPDX-License-Identifier: MPL-2.0

package assetcache

import (
	"errors"
	"path/filepath"
	"testing"

	"assetkit/pkg/loader"
)

func TestLoadCachesValue(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "items/sword.json", `{"name": "sword"}`)

	f := jsonFormat()
	c := New(root)

	v, err := c.Load(f, "items.sword")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if v.(map[string]any)["name"] != "sword" {
		t.Errorf("decoded value = %v", v)
	}

	if _, ok := c.LoadCached(f, "items.sword"); !ok {
		t.Error("value not cached after Load")
	}
}

func TestLoadCachedPerformsNoIO(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "items/a.json", `{}`)

	f := jsonFormat()
	c := New(root)

	// Never loaded: a cached-only lookup must miss rather than read.
	if _, ok := c.LoadCached(f, "items.a"); ok {
		t.Error("LoadCached hit for a never-loaded asset")
	}
}

func TestLoadProbesExtensionsInOrder(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "cfg/app.yaml", "k: v\n")

	f := &Format{
		Name:       "yaml",
		Extensions: []string{"yml", "yaml"},
		Decode:     loader.YAML[map[string]any](),
	}
	c := New(root)

	v, err := c.Load(f, "cfg.app")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if v.(map[string]any)["k"] != "v" {
		t.Errorf("decoded value = %v", v)
	}
}

func TestLoadNotFound(t *testing.T) {
	t.Parallel()

	c := New(t.TempDir())
	_, err := c.Load(jsonFormat(), "items.ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.ID != "items.ghost" {
		t.Errorf("err = %v, want NotFoundError for items.ghost", err)
	}
}

func TestLoadDecodeError(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "items/bad.json", "not json")

	c := New(root)
	_, err := c.Load(jsonFormat(), "items.bad")

	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want DecodeError", err)
	}
	if de.ID != "items.bad" || de.Path != filepath.Join(root, "items", "bad.json") {
		t.Errorf("DecodeError fields = %+v", de)
	}
}

func TestRemoveEvicts(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "items/a.json", `{"k": 1}`)

	f := jsonFormat()
	c := New(root)
	if _, err := c.Load(f, "items.a"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !c.Remove(f, "items.a") {
		t.Error("Remove of a cached asset reported absent")
	}
	if _, ok := c.LoadCached(f, "items.a"); ok {
		t.Error("value still cached after Remove")
	}
	if c.Remove(f, "items.a") {
		t.Error("second Remove reported present")
	}

	// The asset can be loaded again from disk.
	if _, err := c.Load(f, "items.a"); err != nil {
		t.Errorf("reload after Remove: %v", err)
	}
}

func TestFormatsAreNamespaced(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "a.json", `{"k": 1}`)

	jf := jsonFormat()
	raw := &Format{Name: "raw", Extensions: []string{"json"}, Decode: loader.String()}
	c := New(root)

	if _, err := c.Load(jf, "a"); err != nil {
		t.Fatalf("Load json: %v", err)
	}
	if _, ok := c.LoadCached(raw, "a"); ok {
		t.Error("cache entry leaked across formats")
	}
}

// --- hot-reload entry points ---

func TestOnFileCreatedTracksNewAsset(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "items/a.json", `{}`)

	f := jsonFormat()
	c := New(root, WithHotReload())
	r, err := c.LoadDir(f, "items")
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}

	writeFile(t, root, "items/b.json", `{"k": "b"}`)
	c.OnFileCreated(f, filepath.Join(root, "items", "b.json"))

	if !r.Index().Contains("items.b") {
		t.Fatal("created asset not tracked")
	}
	if _, ok := c.LoadCached(f, "items.b"); !ok {
		t.Error("created asset not loaded into cache")
	}

	// A duplicate create event must not track the identifier twice.
	c.OnFileCreated(f, filepath.Join(root, "items", "b.json"))
	if got := r.Len(); got != 2 {
		t.Errorf("Len after duplicate create = %d, want 2", got)
	}
}

func TestOnFileChangedReloads(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "items/a.json", `{"k": "old"}`)

	f := jsonFormat()
	c := New(root, WithHotReload())
	if _, err := c.LoadDir(f, "items"); err != nil {
		t.Fatalf("LoadDir: %v", err)
	}

	writeFile(t, root, "items/a.json", `{"k": "new"}`)
	c.OnFileChanged(f, filepath.Join(root, "items", "a.json"))

	v, ok := c.LoadCached(f, "items.a")
	if !ok {
		t.Fatal("asset missing after change")
	}
	if v.(map[string]any)["k"] != "new" {
		t.Errorf("cached value not refreshed: %v", v)
	}
}

func TestOnFileChangedEvictsOnBrokenRewrite(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "items/a.json", `{"k": "old"}`)

	f := jsonFormat()
	c := New(root, WithHotReload())
	if _, err := c.LoadDir(f, "items"); err != nil {
		t.Fatalf("LoadDir: %v", err)
	}

	writeFile(t, root, "items/a.json", "{broken")
	c.OnFileChanged(f, filepath.Join(root, "items", "a.json"))

	if _, ok := c.LoadCached(f, "items.a"); ok {
		t.Error("stale value survived a failed reload")
	}
}

func TestOnFileRemovedUntracksAndEvicts(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "items/a.json", `{}`)

	f := jsonFormat()
	c := New(root, WithHotReload())
	r, err := c.LoadDir(f, "items")
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}

	c.OnFileRemoved(f, filepath.Join(root, "items", "a.json"))
	if r.Index().Contains("items.a") {
		t.Error("removed asset still tracked")
	}
	if _, ok := c.LoadCached(f, "items.a"); ok {
		t.Error("removed asset still cached")
	}
}

func TestHotEventsAreNoopsWhenDisabled(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "items/a.json", `{}`)

	f := jsonFormat()
	c := New(root) // hot reload disabled
	r, err := c.LoadDir(f, "items")
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}

	writeFile(t, root, "items/b.json", `{}`)
	c.OnFileCreated(f, filepath.Join(root, "items", "b.json"))
	c.OnFileRemoved(f, filepath.Join(root, "items", "a.json"))

	if got := r.Len(); got != 1 {
		t.Errorf("Len = %d, want 1 (events must be no-ops)", got)
	}
}

func TestHotEventsIgnoreUntrackedPaths(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "items/a.json", `{}`)

	f := jsonFormat()
	c := New(root, WithHotReload())
	r, err := c.LoadDir(f, "items")
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}

	// Outside the root, wrong extension, and a never-scanned directory.
	c.OnFileCreated(f, filepath.Join(t.TempDir(), "elsewhere.json"))
	c.OnFileCreated(f, filepath.Join(root, "items", "a.txt"))
	c.OnFileCreated(f, filepath.Join(root, "other", "x.json"))

	if got := r.Len(); got != 1 {
		t.Errorf("Len = %d, want 1 (foreign events must be ignored)", got)
	}
}
