// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"slices"
	"testing"

	"assetkit/internal/issue"
)

func TestFormatByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		extensions []string
	}{
		{name: "json", extensions: []string{"json"}},
		{name: "yaml", extensions: []string{"yaml", "yml"}},
		{name: "toml", extensions: []string{"toml"}},
		{name: "cue", extensions: []string{"cue"}},
		{name: "text", extensions: []string{"txt", ""}},
		{name: "bytes", extensions: []string{"bin", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := formatByName(tt.name)
			if err != nil {
				t.Fatalf("formatByName(%q) error = %v", tt.name, err)
			}
			if f.Name != tt.name {
				t.Errorf("Name = %q, want %q", f.Name, tt.name)
			}
			if !slices.Equal(f.Extensions, tt.extensions) {
				t.Errorf("Extensions = %v, want %v", f.Extensions, tt.extensions)
			}
			if f.Decode == nil {
				t.Error("Decode is nil")
			}
		})
	}
}

func TestFormatByNameUnknown(t *testing.T) {
	t.Parallel()

	_, err := formatByName("protobuf")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *issue.ActionableError, got %T", err)
	}
}
