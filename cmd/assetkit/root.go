// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"assetkit/internal/config"
	"assetkit/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// assetsDirFlag overrides the configured assets directory
	assetsDirFlag string

	// loadedCfg is the effective configuration, resolved by initRootConfig.
	loadedCfg *config.Config

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "assetkit",
		Short: "A directory-backed asset cache with hot reload",
		Long: TitleStyle.Render("assetkit") + SubtitleStyle.Render(" - A directory-backed asset cache with hot reload") + `

assetkit loads, caches, and watches data assets stored as files under
a root directory. Assets are addressed by dot-separated identifiers
(e.g. 'items.sword' for <assets_dir>/items/sword.json) and decoded
through pluggable formats: JSON, YAML, TOML, CUE, text, and raw bytes.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Put asset files under an 'assets' directory
  2. List what a directory contains: assetkit list items
  3. Load one asset: assetkit get items.sword

` + SubtitleStyle.Render("Examples:") + `
  assetkit list items             List assets in <assets_dir>/items
  assetkit list --all items       Include assets that fail to decode
  assetkit get items.sword        Load and print one asset
  assetkit watch items            Watch a directory and reload on change
  assetkit config show            Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/assetkit/config.toml)")
	rootCmd.PersistentFlags().StringVar(&assetsDirFlag, "assets-dir", "", "assets root directory (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	cfg, err := config.NewProvider().Load(context.Background(), config.LoadOptions{
		ConfigFilePath: cfgFile,
	})
	if err != nil {
		// Always surface config loading errors to the user
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		cfg = config.DefaultConfig()
	}
	loadedCfg = cfg

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}

	initLogging(cfg)
}

// initLogging installs a charmbracelet handler as the default slog
// logger, at the level the config (or --verbose) asks for.
func initLogging(cfg *config.Config) {
	level := log.InfoLevel
	switch cfg.LogLevel {
	case config.LogLevelDebug:
		level = log.DebugLevel
	case config.LogLevelWarn:
		level = log.WarnLevel
	case config.LogLevelError:
		level = log.ErrorLevel
	}
	if verbose {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: false,
	})
	slog.SetDefault(slog.New(logger))
}

// effectiveAssetsDir resolves the assets root: the --assets-dir flag
// wins over the configured value.
func effectiveAssetsDir() string {
	if assetsDirFlag != "" {
		return assetsDirFlag
	}
	if loadedCfg != nil {
		return loadedCfg.AssetsDir.String()
	}
	return config.DefaultConfig().AssetsDir.String()
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
