// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"assetkit/internal/issue"
	"assetkit/pkg/assetcache"
	"assetkit/pkg/assetid"

	"github.com/spf13/cobra"
)

var (
	getFormat string

	getCmd = &cobra.Command{
		Use:   "get <identifier>",
		Short: "Load and print one asset",
		Long: `Load a single asset by its dot-separated identifier and print the
decoded value. Structured formats are rendered as indented JSON; text
and bytes formats are written verbatim.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(assetid.ID(args[0]))
		},
	}
)

func init() {
	getCmd.Flags().StringVarP(&getFormat, "format", "f", "json", "asset format (json, yaml, toml, cue, text, bytes)")
}

func runGet(id assetid.ID) error {
	f, err := formatByName(getFormat)
	if err != nil {
		return err
	}

	c := assetcache.New(effectiveAssetsDir())
	v, err := c.Load(f, id)
	if err != nil {
		renderLoadIssue(err)
		return err
	}

	return printAssetValue(v)
}

// renderLoadIssue prints the issue page matching a load failure, when
// one exists for its class.
func renderLoadIssue(err error) {
	var id issue.Id
	switch {
	case errors.Is(err, assetcache.ErrNotFound):
		id = issue.AssetNotFoundId
	default:
		var de *assetcache.DecodeError
		if !errors.As(err, &de) {
			return
		}
		id = issue.AssetDecodeErrorId
	}

	if rendered, renderErr := issue.Get(id).Render("dark"); renderErr == nil {
		fmt.Fprint(os.Stderr, rendered)
	}
}

// printAssetValue writes a decoded asset to stdout. Text and bytes
// values pass through untouched; everything else renders as JSON.
func printAssetValue(v any) error {
	switch val := v.(type) {
	case string:
		fmt.Print(val)
		if len(val) > 0 && val[len(val)-1] != '\n' {
			fmt.Println()
		}
		return nil
	case []byte:
		_, err := os.Stdout.Write(val)
		return err
	default:
		out, err := json.MarshalIndent(val, "", "  ")
		if err != nil {
			return fmt.Errorf("render asset value: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}
}
