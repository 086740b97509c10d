// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"testing"

	"assetkit/internal/config"
)

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version takes priority", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v1.2.3"
		Commit = "abc1234"
		BuildDate = "2026-08-25T10:00:00Z"

		got := getVersionString()
		want := "v1.2.3 (commit: abc1234, built: 2026-08-25T10:00:00Z)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("fallback to dev when no build info", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "dev"
		Commit = "unknown"
		BuildDate = "unknown"

		got := getVersionString()
		want := "dev (built from source)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})
}

func TestEffectiveAssetsDir(t *testing.T) {
	// Not parallel: subtests mutate package-level assetsDirFlag/loadedCfg vars.

	t.Run("flag wins over config", func(t *testing.T) {
		origFlag, origCfg := assetsDirFlag, loadedCfg
		t.Cleanup(func() {
			assetsDirFlag, loadedCfg = origFlag, origCfg
		})

		assetsDirFlag = "/tmp/override"
		loadedCfg = &config.Config{AssetsDir: "/tmp/configured"}

		if got := effectiveAssetsDir(); got != "/tmp/override" {
			t.Errorf("effectiveAssetsDir() = %q, want %q", got, "/tmp/override")
		}
	})

	t.Run("config when no flag", func(t *testing.T) {
		origFlag, origCfg := assetsDirFlag, loadedCfg
		t.Cleanup(func() {
			assetsDirFlag, loadedCfg = origFlag, origCfg
		})

		assetsDirFlag = ""
		loadedCfg = &config.Config{AssetsDir: "/tmp/configured"}

		if got := effectiveAssetsDir(); got != "/tmp/configured" {
			t.Errorf("effectiveAssetsDir() = %q, want %q", got, "/tmp/configured")
		}
	})

	t.Run("defaults when nothing resolved", func(t *testing.T) {
		origFlag, origCfg := assetsDirFlag, loadedCfg
		t.Cleanup(func() {
			assetsDirFlag, loadedCfg = origFlag, origCfg
		})

		assetsDirFlag = ""
		loadedCfg = nil

		want := config.DefaultConfig().AssetsDir.String()
		if got := effectiveAssetsDir(); got != want {
			t.Errorf("effectiveAssetsDir() = %q, want %q", got, want)
		}
	})
}
