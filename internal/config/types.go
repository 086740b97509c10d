// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// LogLevelDebug enables debug logging.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo is the default logging level.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn logs warnings and errors only.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError logs errors only.
	LogLevelError LogLevel = "error"

	// defaultAssetsDir is the asset root used when none is configured.
	defaultAssetsDir = "assets"
	// defaultDebounceMS is the hot-reload debounce window in milliseconds.
	defaultDebounceMS = 500
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidAssetsDirPath is returned when an AssetsDirPath value is whitespace-only.
	ErrInvalidAssetsDirPath = errors.New("invalid assets dir path")
	// ErrInvalidGlobPattern is the sentinel error wrapped by InvalidGlobPatternError.
	ErrInvalidGlobPattern = errors.New("invalid glob pattern")
	// ErrInvalidHotReloadConfig is the sentinel error wrapped by InvalidHotReloadConfigError.
	ErrInvalidHotReloadConfig = errors.New("invalid hot-reload config")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// LogLevel specifies the minimum severity of emitted log records.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	// It wraps ErrInvalidLogLevel for errors.Is() compatibility.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// AssetsDirPath represents a filesystem path to the asset root
	// directory. A valid path must be non-empty and not whitespace-only.
	AssetsDirPath string

	// InvalidAssetsDirPathError is returned when an AssetsDirPath value is
	// empty or whitespace-only. It wraps ErrInvalidAssetsDirPath for errors.Is().
	InvalidAssetsDirPathError struct {
		Value AssetsDirPath
	}

	// GlobPattern is a doublestar-compatible glob pattern used for
	// hot-reload ignore rules.
	GlobPattern string

	// InvalidGlobPatternError is returned when a GlobPattern is empty or
	// has invalid glob syntax. It wraps ErrInvalidGlobPattern for errors.Is().
	InvalidGlobPatternError struct {
		Value GlobPattern
	}

	// InvalidHotReloadConfigError is returned when a HotReloadConfig has
	// invalid fields. It wraps ErrInvalidHotReloadConfig for errors.Is()
	// compatibility and collects field-level validation errors.
	InvalidHotReloadConfigError struct {
		FieldErrors []error
	}

	// InvalidUIConfigError is returned when a UIConfig has invalid fields.
	// It wraps ErrInvalidUIConfig for errors.Is() compatibility and
	// collects field-level validation errors.
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// AssetsDir is the root directory assets are resolved under.
		AssetsDir AssetsDirPath `toml:"assets_dir" mapstructure:"assets_dir"`
		// LogLevel sets the minimum logging severity.
		LogLevel LogLevel `toml:"log_level" mapstructure:"log_level"`
		// HotReload configures the filesystem watcher.
		HotReload HotReloadConfig `toml:"hot_reload" mapstructure:"hot_reload"`
		// UI configures terminal output.
		UI UIConfig `toml:"ui" mapstructure:"ui"`
	}

	// HotReloadConfig configures the filesystem watcher.
	HotReloadConfig struct {
		// Enabled turns hot reload on (default: false).
		Enabled bool `toml:"enabled" mapstructure:"enabled"`
		// DebounceMS is the quiet period in milliseconds before watcher
		// events are delivered as a batch.
		DebounceMS int `toml:"debounce_ms" mapstructure:"debounce_ms"`
		// Ignore are glob patterns for paths that never trigger reloads.
		Ignore []GlobPattern `toml:"ignore" mapstructure:"ignore"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		// ColorScheme sets the color scheme.
		ColorScheme ColorScheme `toml:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output.
		Verbose bool `toml:"verbose" mapstructure:"verbose"`
	}
)

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is one of the defined levels,
// and a list of validation errors if it is not.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}

// String returns the string representation of the AssetsDirPath.
func (p AssetsDirPath) String() string { return string(p) }

// IsValid returns whether the AssetsDirPath is valid.
// A valid path must be non-empty and not whitespace-only.
func (p AssetsDirPath) IsValid() (bool, []error) {
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidAssetsDirPathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidAssetsDirPathError.
func (e *InvalidAssetsDirPathError) Error() string {
	return fmt.Sprintf("invalid assets dir path %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidAssetsDirPath for errors.Is() compatibility.
func (e *InvalidAssetsDirPathError) Unwrap() error { return ErrInvalidAssetsDirPath }

// String returns the string representation of the GlobPattern.
func (p GlobPattern) String() string { return string(p) }

// IsValid returns whether the GlobPattern is a non-empty, syntactically
// valid doublestar glob.
func (p GlobPattern) IsValid() (bool, []error) {
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidGlobPatternError{Value: p}}
	}
	if !doublestar.ValidatePattern(string(p)) {
		return false, []error{&InvalidGlobPatternError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidGlobPatternError.
func (e *InvalidGlobPatternError) Error() string {
	return fmt.Sprintf("invalid glob pattern %q", e.Value)
}

// Unwrap returns ErrInvalidGlobPattern for errors.Is() compatibility.
func (e *InvalidGlobPatternError) Unwrap() error { return ErrInvalidGlobPattern }

// IsValid returns whether the HotReloadConfig has valid fields.
// DebounceMS must be non-negative and every ignore pattern must be a
// valid glob; the Enabled bool needs no validation.
func (c HotReloadConfig) IsValid() (bool, []error) {
	var errs []error
	if c.DebounceMS < 0 {
		errs = append(errs, fmt.Errorf("debounce_ms must be non-negative, got %d", c.DebounceMS))
	}
	for _, pat := range c.Ignore {
		if valid, fieldErrs := pat.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if len(errs) > 0 {
		return false, []error{&InvalidHotReloadConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidHotReloadConfigError.
func (e *InvalidHotReloadConfigError) Error() string {
	return fmt.Sprintf("invalid hot-reload config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidHotReloadConfig for errors.Is() compatibility.
func (e *InvalidHotReloadConfigError) Unwrap() error { return ErrInvalidHotReloadConfig }

// IsValid returns whether the UIConfig has valid fields.
// It delegates to ColorScheme.IsValid(); bool fields need no validation.
func (c UIConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidUIConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidUIConfigError.
func (e *InvalidUIConfigError) Error() string {
	return fmt.Sprintf("invalid UI config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidUIConfig for errors.Is() compatibility.
func (e *InvalidUIConfigError) Unwrap() error { return ErrInvalidUIConfig }

// IsValid returns whether the Config has valid fields.
// It delegates to AssetsDir.IsValid(), LogLevel.IsValid(),
// HotReload.IsValid(), and UI.IsValid().
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.AssetsDir.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.LogLevel.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.HotReload.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		AssetsDir: defaultAssetsDir,
		LogLevel:  LogLevelInfo,
		HotReload: HotReloadConfig{
			Enabled:    false,
			DebounceMS: defaultDebounceMS,
			Ignore:     []GlobPattern{},
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
