// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"assetkit/internal/issue"
	"assetkit/pkg/assetcache"
	"assetkit/pkg/loader"
)

// formatByName resolves a --format flag value to one of the built-in
// asset formats. Structured formats decode to generic maps so the CLI
// can render any document shape.
func formatByName(name string) (*assetcache.Format, error) {
	switch name {
	case "json":
		return &assetcache.Format{
			Name:       "json",
			Extensions: []string{"json"},
			Decode:     loader.JSON[map[string]any](),
		}, nil
	case "yaml":
		return &assetcache.Format{
			Name:       "yaml",
			Extensions: []string{"yaml", "yml"},
			Decode:     loader.YAML[map[string]any](),
		}, nil
	case "toml":
		return &assetcache.Format{
			Name:       "toml",
			Extensions: []string{"toml"},
			Decode:     loader.TOML[map[string]any](),
		}, nil
	case "cue":
		return &assetcache.Format{
			Name:       "cue",
			Extensions: []string{"cue"},
			Decode:     loader.CUE[map[string]any](),
		}, nil
	case "text":
		return &assetcache.Format{
			Name:       "text",
			Extensions: []string{"txt", ""},
			Decode:     loader.String(),
		}, nil
	case "bytes":
		return &assetcache.Format{
			Name:       "bytes",
			Extensions: []string{"bin", ""},
			Decode:     loader.Bytes(),
		}, nil
	default:
		return nil, issue.NewErrorContext().
			WithOperation("resolve asset format").
			WithResource(name).
			WithSuggestion("Pass one of: json, yaml, toml, cue, text, bytes").
			Wrap(fmt.Errorf("unknown format: %s", name)).
			BuildError()
	}
}
