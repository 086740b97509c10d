// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"assetkit/internal/issue"
	"assetkit/internal/watch"
	"assetkit/pkg/assetcache"
	"assetkit/pkg/assetid"

	"github.com/spf13/cobra"
)

var (
	watchFormat string

	watchCmd = &cobra.Command{
		Use:   "watch [directory...]",
		Short: "Watch asset directories and reload on change",
		Long: `Watch the assets root and keep the named directories' indexes in sync
with the filesystem: created files are tracked and loaded, modified
files are reloaded, and deleted files are dropped.

Omitting the directory arguments watches the root directory itself.
The command runs until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dirs := make([]assetid.ID, 0, len(args))
			for _, arg := range args {
				dirs = append(dirs, assetid.ID(arg))
			}
			if len(dirs) == 0 {
				dirs = append(dirs, assetid.ID(""))
			}
			return runWatch(cmd.Context(), dirs)
		},
	}
)

func init() {
	watchCmd.Flags().StringVarP(&watchFormat, "format", "f", "json", "asset format (json, yaml, toml, cue, text, bytes)")
}

func runWatch(ctx context.Context, dirs []assetid.ID) error {
	f, err := formatByName(watchFormat)
	if err != nil {
		return err
	}

	root := effectiveAssetsDir()
	c := assetcache.New(root, assetcache.WithHotReload())

	// Scan up front so change events can resolve against a tracked index.
	for _, dir := range dirs {
		r, err := c.LoadDir(f, dir)
		if err != nil {
			return issue.NewErrorContext().
				WithOperation("scan asset directory").
				WithResource(root).
				WithSuggestion("Check that the directory exists under the assets root").
				Wrap(err).
				BuildError()
		}
		fmt.Printf("%s %s (%d assets)\n",
			SuccessStyle.Render("watching"),
			IDStyle.Render(displayDirName(dir)),
			r.Len())
	}

	hr := loadedCfg.HotReload
	ignore := make([]string, 0, len(hr.Ignore))
	for _, pat := range hr.Ignore {
		ignore = append(ignore, pat.String())
	}

	w, err := watch.New(watch.Config{
		Dir:      root,
		Ignore:   ignore,
		Debounce: time.Duration(hr.DebounceMS) * time.Millisecond,
		OnBatch: func(_ context.Context, events []watch.Event) error {
			applyEvents(c, f, events)
			return nil
		},
	})
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("start file watcher").
			WithResource(root).
			WithSuggestion("Check that the assets directory exists and is readable").
			WithSuggestion("On Linux, raise fs.inotify.max_user_watches if exhausted").
			Wrap(err).
			BuildError()
	}

	return w.Run(ctx)
}

// applyEvents feeds one debounced batch into the cache's hot-reload
// entry points and echoes each change.
func applyEvents(c *assetcache.Cache, f *assetcache.Format, events []watch.Event) {
	for _, evt := range events {
		path := filepath.Join(c.Root(), evt.Path)
		switch evt.Op {
		case watch.OpCreate:
			c.OnFileCreated(f, path)
		case watch.OpWrite:
			c.OnFileChanged(f, path)
		case watch.OpRemove:
			c.OnFileRemoved(f, path)
		}
		fmt.Printf("%s %s\n", VerboseStyle.Render(evt.Op.String()), IDStyle.Render(evt.Path))
	}
}

// displayDirName renders a directory identifier, substituting a marker
// for the root.
func displayDirName(dir assetid.ID) string {
	if dir == "" {
		return "(root)"
	}
	return string(dir)
}
