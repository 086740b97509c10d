// SPDX-License-Identifier: MPL-2.0

// Package assetid defines the dotted hierarchical identifier used to name
// assets within a cache. An identifier is a sequence of non-empty segments
// joined by dots, mirroring the directory layout below the cache root:
// the asset stored at <root>/items/sword.json is named "items.sword".
//
// The empty identifier names the cache root itself and is valid as a
// parent for Join; it never appears as a tracked asset identifier.
package assetid

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Separator joins identifier segments.
const Separator = "."

var (
	// ErrEmptySegment is returned by Validate when an identifier contains
	// an empty segment (leading, trailing, or doubled dots).
	ErrEmptySegment = errors.New("identifier contains an empty segment")
)

// ID is a dotted hierarchical asset identifier such as "items.sword".
type ID string

// Join appends a child segment to id. When id is empty the result is the
// segment itself, with no leading separator.
func (id ID) Join(name string) ID {
	if id == "" {
		return ID(name)
	}
	return id + Separator + ID(name)
}

// Segments splits id into its dot-separated segments. The empty
// identifier has no segments.
func (id ID) Segments() []string {
	if id == "" {
		return nil
	}
	return strings.Split(string(id), Separator)
}

// Parent returns the identifier with the last segment removed, or the
// empty identifier when id has at most one segment.
func (id ID) Parent() ID {
	i := strings.LastIndex(string(id), Separator)
	if i < 0 {
		return ""
	}
	return id[:i]
}

// Validate reports whether every segment of id is non-empty. The empty
// identifier is valid: it is the root parent, not a malformed name.
func (id ID) Validate() error {
	if id == "" {
		return nil
	}
	for _, seg := range id.Segments() {
		if seg == "" {
			return fmt.Errorf("%w: %q", ErrEmptySegment, string(id))
		}
	}
	return nil
}

// RelPath converts id to a directory-relative filesystem path without an
// extension: "items.sword" becomes filepath.Join("items", "sword").
func (id ID) RelPath() string {
	return filepath.Join(id.Segments()...)
}

// FromRelPath converts a slash- or OS-separated relative path without an
// extension into an identifier: "items/sword" becomes "items.sword".
func FromRelPath(rel string) ID {
	rel = filepath.ToSlash(filepath.Clean(rel))
	if rel == "." || rel == "" {
		return ""
	}
	return ID(strings.ReplaceAll(rel, "/", Separator))
}

func (id ID) String() string { return string(id) }
