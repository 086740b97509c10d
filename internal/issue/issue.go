// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	AssetNotFoundId Id = iota + 1
	AssetDecodeErrorId
	AssetsDirNotFoundId
	ConfigLoadFailedId
	InvalidFormatId
	WatchStartFailedId
	PermissionDeniedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, because we need to have docs about all issue types
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	assetNotFoundIssue = &Issue{
		id: AssetNotFoundId,
		mdMsg: `
# Asset not found!

No file matching the requested identifier exists under the assets directory.

## How identifiers map to files:
An identifier like ` + "`items.sword`" + ` resolves to ` + "`<assets_dir>/items/sword.<ext>`" + `,
where ` + "`<ext>`" + ` is one of the extensions accepted by the chosen format.

## Things you can try:
- List what is actually tracked:
~~~
$ assetkit list items
~~~

- Check for typos in the identifier (segments are separated by dots)
- Verify the file extension matches the format (e.g. .json for the json format)
- Confirm the assets directory with:
~~~
$ assetkit config show
~~~`,
	}

	assetDecodeErrorIssue = &Issue{
		id: AssetDecodeErrorId,
		mdMsg: `
# Failed to decode asset!

The asset file exists but its contents could not be decoded.

## Common causes:
- Syntax errors (missing quotes, braces, commas)
- The file's actual format does not match its extension
- Truncated writes from an interrupted save

## Things you can try:
- Check the error message above for the specific line/column
- Validate the file with a format-specific tool (jq, yamllint, cue vet)
- Run with verbose mode for more details:
~~~
$ assetkit --verbose get <identifier>
~~~`,
	}

	assetsDirNotFoundIssue = &Issue{
		id: AssetsDirNotFoundId,
		mdMsg: `
# Assets directory not found!

The configured assets directory does not exist or cannot be listed.

## Things you can try:
- Create the directory:
~~~
$ mkdir -p assets
~~~

- Point assetkit at the right place:
~~~
$ assetkit --assets-dir /path/to/assets list
~~~

- Or set it permanently in your config file:
~~~toml
assets_dir = "/path/to/assets"
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the assetkit configuration file.

## Configuration file locations:
- Linux: ~/.config/assetkit/config.toml
- macOS: ~/Library/Application Support/assetkit/config.toml
- Windows: %APPDATA%\assetkit\config.toml

## Things you can try:
- Create a default configuration:
~~~
$ assetkit config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults:
~~~
$ rm ~/.config/assetkit/config.toml
~~~

## Example configuration:
~~~toml
assets_dir = "assets"
log_level = "info"

[hot_reload]
enabled = true
debounce_ms = 500
ignore = ["**/*.tmp"]
~~~`,
	}

	invalidFormatIssue = &Issue{
		id: InvalidFormatId,
		mdMsg: `
# Unknown asset format!

The format you specified is not one of the built-in formats.

## Built-in formats:
- **json**: .json files via encoding/json
- **yaml**: .yaml and .yml files
- **toml**: .toml files
- **cue**: .cue files
- **text**: any file, loaded as a UTF-8 string
- **bytes**: any file, loaded as raw bytes

## Things you can try:
- Pass one of the names above to --format
- Check for typos:
~~~
$ assetkit list --format json items
~~~`,
	}

	watchStartFailedIssue = &Issue{
		id: WatchStartFailedId,
		mdMsg: `
# Failed to start the file watcher!

Hot reload could not begin watching the assets directory.

## Common causes:
- The assets directory does not exist
- The inotify watch limit is exhausted (Linux)
- File descriptor limits are exhausted

## Things you can try:
- Verify the assets directory exists and is readable
- On Linux, raise the watch limit:
~~~
$ sudo sysctl fs.inotify.max_user_watches=524288
~~~

- Exclude large subtrees with ignore patterns in your config:
~~~toml
[hot_reload]
ignore = ["**/generated/**"]
~~~`,
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied!

You don't have permission to perform this operation.

## Common causes:
- The assets directory or a file inside it is not readable
- The config directory is not writable

## Things you can try:
- Check file/directory permissions
- Run assetkit as a user that owns the assets directory
- Move the assets directory somewhere you own`,
	}

	issues = map[Id]*Issue{
		assetNotFoundIssue.Id():     assetNotFoundIssue,
		assetDecodeErrorIssue.Id():  assetDecodeErrorIssue,
		assetsDirNotFoundIssue.Id(): assetsDirNotFoundIssue,
		configLoadFailedIssue.Id():  configLoadFailedIssue,
		invalidFormatIssue.Id():     invalidFormatIssue,
		watchStartFailedIssue.Id():  watchStartFailedIssue,
		permissionDeniedIssue.Id():  permissionDeniedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
