// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with TOML as the file format.
//
// Configuration is loaded from ~/.config/assetkit/config.toml (or XDG equivalent on Linux,
// ~/Library/Application Support/assetkit/config.toml on macOS, %APPDATA%\assetkit\config.toml
// on Windows), falling back to a config.toml in the current directory. The package provides
// type-safe configuration access covering the asset root directory, logging, hot reload, and
// terminal UI settings.
//
// Values the TOML decoder cannot constrain (enum fields, glob syntax, debounce bounds) are
// validated after unmarshalling and surface as typed errors wrapping package sentinels.
package config
