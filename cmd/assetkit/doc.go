// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for assetkit.
//
// This package implements the Cobra command hierarchy for the assetkit CLI,
// including the root command and subcommands for listing directories,
// loading single assets, running the hot-reload watcher, and managing
// configuration.
package cmd
