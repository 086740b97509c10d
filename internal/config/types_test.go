// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestColorSchemeIsValid(t *testing.T) {
	t.Parallel()

	for _, cs := range []ColorScheme{ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight} {
		if valid, _ := cs.IsValid(); !valid {
			t.Errorf("%q should be valid", cs)
		}
	}

	valid, errs := ColorScheme("neon").IsValid()
	if valid {
		t.Fatal("unknown color scheme accepted")
	}
	if !errors.Is(errs[0], ErrInvalidColorScheme) {
		t.Errorf("error should wrap ErrInvalidColorScheme, got: %v", errs[0])
	}
}

func TestLogLevelIsValid(t *testing.T) {
	t.Parallel()

	for _, l := range []LogLevel{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError} {
		if valid, _ := l.IsValid(); !valid {
			t.Errorf("%q should be valid", l)
		}
	}

	valid, errs := LogLevel("loud").IsValid()
	if valid {
		t.Fatal("unknown log level accepted")
	}
	var lvlErr *InvalidLogLevelError
	if !errors.As(errs[0], &lvlErr) || lvlErr.Value != "loud" {
		t.Errorf("error should be *InvalidLogLevelError for \"loud\", got: %v", errs[0])
	}
}

func TestAssetsDirPathIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		path  AssetsDirPath
		valid bool
	}{
		{name: "relative path", path: "assets", valid: true},
		{name: "absolute path", path: "/srv/assets", valid: true},
		{name: "empty", path: "", valid: false},
		{name: "whitespace-only", path: "   ", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			valid, errs := tt.path.IsValid()
			if valid != tt.valid {
				t.Fatalf("IsValid() = %v, want %v", valid, tt.valid)
			}
			if !tt.valid && !errors.Is(errs[0], ErrInvalidAssetsDirPath) {
				t.Errorf("error should wrap ErrInvalidAssetsDirPath, got: %v", errs[0])
			}
		})
	}
}

func TestGlobPatternIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern GlobPattern
		valid   bool
	}{
		{name: "doublestar", pattern: "**/*.json", valid: true},
		{name: "plain name", pattern: "VERSION", valid: true},
		{name: "empty", pattern: "", valid: false},
		{name: "whitespace-only", pattern: "  ", valid: false},
		{name: "unterminated class", pattern: "[invalid", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			valid, errs := tt.pattern.IsValid()
			if valid != tt.valid {
				t.Fatalf("IsValid() = %v, want %v", valid, tt.valid)
			}
			if !tt.valid && !errors.Is(errs[0], ErrInvalidGlobPattern) {
				t.Errorf("error should wrap ErrInvalidGlobPattern, got: %v", errs[0])
			}
		})
	}
}

func TestHotReloadConfigIsValid(t *testing.T) {
	t.Parallel()

	good := HotReloadConfig{Enabled: true, DebounceMS: 250, Ignore: []GlobPattern{"**/*.tmp"}}
	if valid, errs := good.IsValid(); !valid {
		t.Fatalf("valid hot-reload config rejected: %v", errs)
	}

	bad := HotReloadConfig{DebounceMS: -1, Ignore: []GlobPattern{"[broken"}}
	valid, errs := bad.IsValid()
	if valid {
		t.Fatal("invalid hot-reload config accepted")
	}

	var hrErr *InvalidHotReloadConfigError
	if !errors.As(errs[0], &hrErr) {
		t.Fatalf("error should be *InvalidHotReloadConfigError, got: %T", errs[0])
	}
	if len(hrErr.FieldErrors) != 2 {
		t.Errorf("expected 2 field errors, got %d: %v", len(hrErr.FieldErrors), hrErr.FieldErrors)
	}
}

func TestConfigIsValidAggregatesFieldErrors(t *testing.T) {
	t.Parallel()

	cfg := Config{
		AssetsDir: "  ",
		LogLevel:  "loud",
		HotReload: HotReloadConfig{DebounceMS: -5},
		UI:        UIConfig{ColorScheme: "neon"},
	}

	valid, errs := cfg.IsValid()
	if valid {
		t.Fatal("invalid config accepted")
	}
	if !errors.Is(errs[0], ErrInvalidConfig) {
		t.Fatalf("error should wrap ErrInvalidConfig, got: %v", errs[0])
	}

	var cfgErr *InvalidConfigError
	if !errors.As(errs[0], &cfgErr) {
		t.Fatalf("error should be *InvalidConfigError, got: %T", errs[0])
	}
	if len(cfgErr.FieldErrors) != 4 {
		t.Errorf("expected 4 field errors, got %d: %v", len(cfgErr.FieldErrors), cfgErr.FieldErrors)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	if valid, errs := DefaultConfig().IsValid(); !valid {
		t.Fatalf("default config invalid: %v", errs)
	}
}
