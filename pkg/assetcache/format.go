// SPDX-License-Identifier: MPL-2.0

package assetcache

import (
	"slices"
	"strings"

	"assetkit/pkg/loader"
)

// Format describes one asset type: a name tag that namespaces cached
// values, the set of file extensions the type accepts, and the decoder
// that turns file bytes into a value.
type Format struct {
	// Name namespaces cache entries so two formats can track the same
	// identifier independently. Must be unique per cache.
	Name string

	// Extensions lists accepted file extensions without the leading dot.
	// An empty string accepts files that have no extension. Extensions
	// are probed in order when resolving an identifier to a file.
	Extensions []string

	// Decode converts raw file content into the asset value.
	Decode loader.DecodeFunc
}

// Accepts reports whether filename's extension is in the accepted set.
// A file without an extension matches an accepted "" extension.
func (f *Format) Accepts(filename string) bool {
	return slices.Contains(f.Extensions, extensionOf(filename))
}

// extensionOf returns the extension of a file name without the leading
// dot, or "" when the name has none. A leading dot (hidden files such as
// ".gitignore") is part of the stem, not an extension marker.
func extensionOf(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i+1:]
}

// fileStem returns the file name with its extension removed.
func fileStem(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name
	}
	return name[:i]
}
