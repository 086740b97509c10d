// SPDX-License-Identifier: MPL-2.0

package assetid

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"
)

// TestJoin verifies that Join appends a segment with a separator, except
// when the parent is empty.
func TestJoin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		parent ID
		child  string
		want   ID
	}{
		{"empty parent", "", "sword", "sword"},
		{"single segment parent", "items", "sword", "items.sword"},
		{"nested parent", "items.weapons", "sword", "items.weapons.sword"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.parent.Join(tt.child); got != tt.want {
				t.Errorf("Join(%q, %q) = %q, want %q", tt.parent, tt.child, got, tt.want)
			}
		})
	}
}

func TestSegments(t *testing.T) {
	t.Parallel()

	if got := ID("").Segments(); got != nil {
		t.Errorf("empty ID segments = %v, want nil", got)
	}
	if got := ID("items.sword").Segments(); !slices.Equal(got, []string{"items", "sword"}) {
		t.Errorf("Segments = %v, want [items sword]", got)
	}
}

func TestParent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id   ID
		want ID
	}{
		{"items.weapons.sword", "items.weapons"},
		{"items", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := tt.id.Parent(); got != tt.want {
			t.Errorf("Parent(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := []ID{"", "a", "items.sword", "a.b.c"}
	for _, id := range valid {
		if err := id.Validate(); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", id, err)
		}
	}

	invalid := []ID{".", "a.", ".a", "a..b"}
	for _, id := range invalid {
		if err := id.Validate(); !errors.Is(err, ErrEmptySegment) {
			t.Errorf("Validate(%q) = %v, want ErrEmptySegment", id, err)
		}
	}
}

func TestRelPathRoundTrip(t *testing.T) {
	t.Parallel()

	id := ID("items.weapons.sword")
	rel := id.RelPath()
	if want := filepath.Join("items", "weapons", "sword"); rel != want {
		t.Fatalf("RelPath = %q, want %q", rel, want)
	}
	if got := FromRelPath(rel); got != id {
		t.Errorf("FromRelPath(%q) = %q, want %q", rel, got, id)
	}
}

func TestFromRelPathEdgeCases(t *testing.T) {
	t.Parallel()

	if got := FromRelPath("."); got != "" {
		t.Errorf("FromRelPath(%q) = %q, want empty", ".", got)
	}
	if got := FromRelPath("items/"); got != "items" {
		t.Errorf("FromRelPath(%q) = %q, want %q", "items/", got, "items")
	}
}
