// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"assetkit/internal/issue"
	"assetkit/pkg/assetcache"
	"assetkit/pkg/assetid"

	"github.com/spf13/cobra"
)

var (
	listFormat string
	listAll    bool

	listCmd = &cobra.Command{
		Use:   "list [directory]",
		Short: "List assets in a directory",
		Long: `List the assets tracked in one directory of the assets root.

The directory is named by its dot-separated identifier; omitting it
lists the root directory itself. By default only the identifiers are
printed. With --all, each asset is loaded and its decode outcome is
shown, including assets whose files fail to decode.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir assetid.ID
			if len(args) == 1 {
				dir = assetid.ID(args[0])
			}
			return runList(dir)
		},
	}
)

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "json", "asset format (json, yaml, toml, cue, text, bytes)")
	listCmd.Flags().BoolVar(&listAll, "all", false, "load every asset and show decode outcomes")
}

func runList(dir assetid.ID) error {
	f, err := formatByName(listFormat)
	if err != nil {
		return err
	}

	root := effectiveAssetsDir()
	c := assetcache.New(root)

	r, err := c.LoadDir(f, dir)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("scan asset directory").
			WithResource(root).
			WithSuggestion("Check that the directory exists under the assets root").
			WithSuggestion("Pass --assets-dir to point at a different root").
			Wrap(err).
			BuildError()
	}

	if r.Len() == 0 {
		fmt.Println(SubtitleStyle.Render("(no matching assets)"))
		return nil
	}

	if !listAll {
		for _, id := range r.IDs() {
			fmt.Println(IDStyle.Render(string(id)))
		}
		return nil
	}

	failures := 0
	for id, res := range r.All() {
		if res.Err != nil {
			failures++
			fmt.Printf("%s  %s %s\n", IDStyle.Render(string(id)), ErrorStyle.Render("✗"), VerboseStyle.Render(res.Err.Error()))
			continue
		}
		fmt.Printf("%s  %s\n", IDStyle.Render(string(id)), SuccessStyle.Render("✓"))
	}

	if failures > 0 {
		return &ExitError{Code: 1, Err: fmt.Errorf("%d asset(s) failed to decode", failures)}
	}
	return nil
}
