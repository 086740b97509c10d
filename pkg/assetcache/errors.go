// SPDX-License-Identifier: MPL-2.0

package assetcache

import (
	"errors"
	"fmt"

	"assetkit/pkg/assetid"
)

var (
	// ErrNotFound is the sentinel error wrapped by NotFoundError.
	ErrNotFound = errors.New("asset not found")
)

type (
	// NotFoundError is returned when no file for an identifier exists
	// under the cache root with any of the format's accepted extensions.
	// It wraps ErrNotFound for errors.Is() compatibility.
	NotFoundError struct {
		ID     assetid.ID
		Format string
	}

	// DecodeError is returned when a file was read but its bytes failed
	// to decode into the format's value type.
	DecodeError struct {
		ID     assetid.ID
		Format string
		Path   string
		Err    error
	}
)

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("asset %q (format %s): %v", e.ID, e.Format, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode asset %q (format %s) from %s: %v", e.ID, e.Format, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
