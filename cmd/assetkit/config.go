// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"assetkit/internal/config"
	"assetkit/internal/issue"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage assetkit configuration",
	Long: `Manage assetkit configuration.

Configuration is stored in:
  - Linux: ~/.config/assetkit/config.toml
  - macOS: ~/Library/Application Support/assetkit/config.toml
  - Windows: %APPDATA%\assetkit\config.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context())
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewProvider().Load(cmd.Context(), config.LoadOptions{ConfigFilePath: cfgFile})
			if err != nil {
				return err
			}

			content, err := config.GenerateTOML(cfg)
			if err != nil {
				return err
			}
			fmt.Print(content)
			return nil
		},
	})
}

func showConfig(ctx context.Context) error {
	cfg, err := config.NewProvider().Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		rendered, _ := issue.Get(issue.ConfigLoadFailedId).Render("dark")
		fmt.Fprint(os.Stderr, rendered)
		return err
	}

	// Style definitions using shared color palette
	headerStyle := TitleStyle
	keyStyle := IDStyle
	valueStyle := SuccessStyle

	fmt.Println(headerStyle.Render("Current Configuration"))
	fmt.Println()

	// Derive config file path from the standard config directory; the
	// provider does not cache resolved paths.
	cfgPath := resolvedConfigPath()
	if cfgPath != "" {
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), cfgPath)
	} else {
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	fmt.Printf("%s: %s\n", keyStyle.Render("assets_dir"), valueStyle.Render(cfg.AssetsDir.String()))
	fmt.Printf("%s: %s\n", keyStyle.Render("log_level"), valueStyle.Render(cfg.LogLevel.String()))

	fmt.Println()
	fmt.Printf("%s:\n", keyStyle.Render("hot_reload"))
	fmt.Printf("  enabled: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.HotReload.Enabled)))
	fmt.Printf("  debounce_ms: %s\n", valueStyle.Render(fmt.Sprintf("%d", cfg.HotReload.DebounceMS)))
	if len(cfg.HotReload.Ignore) == 0 {
		fmt.Printf("  ignore: %s\n", SubtitleStyle.Render("(none configured)"))
	} else {
		fmt.Printf("  ignore:\n")
		for _, pat := range cfg.HotReload.Ignore {
			fmt.Printf("    - %s\n", valueStyle.Render(pat.String()))
		}
	}

	fmt.Println()
	fmt.Printf("%s:\n", keyStyle.Render("ui"))
	fmt.Printf("  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Printf("  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func initConfig() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	if err = config.CreateDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	fmt.Printf("%s Created default configuration at %s\n",
		SuccessStyle.Render("✓"),
		filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))

	return nil
}

func showConfigPath() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	fmt.Printf("Config directory: %s\n", cfgDir)
	fmt.Printf("Config file: %s\n", filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))

	return nil
}

// resolvedConfigPath returns the path of the config file that would be
// loaded, or "" when defaults apply.
func resolvedConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}

	cfgDir, err := config.ConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
	if info, statErr := os.Stat(path); statErr == nil && !info.IsDir() {
		return path
	}
	return ""
}
