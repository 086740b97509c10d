// SPDX-License-Identifier: MPL-2.0

// Package loader provides decoders that turn raw file bytes into typed
// asset values. A decoder is a plain function so asset formats can plug
// in any byte-to-value conversion; the constructors here cover the
// common text formats plus string/byte passthrough.
package loader

import (
	"fmt"
	"unicode/utf8"

	"cuelang.org/go/cue/cuecontext"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"encoding/json"
)

// DecodeFunc decodes raw file content into an asset value.
type DecodeFunc func(data []byte) (any, error)

// Bytes returns the raw file content unchanged.
func Bytes() DecodeFunc {
	return func(data []byte) (any, error) {
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil
	}
}

// String decodes the file content as a UTF-8 string.
func String() DecodeFunc {
	return func(data []byte) (any, error) {
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("content is not valid UTF-8")
		}
		return string(data), nil
	}
}

// Parse decodes the file content as UTF-8 text and applies a string
// parser, for types with a FromString-style constructor.
func Parse[T any](parse func(s string) (T, error)) DecodeFunc {
	return func(data []byte) (any, error) {
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("content is not valid UTF-8")
		}
		return parse(string(data))
	}
}

// JSON decodes JSON file content into a value of type T.
func JSON[T any]() DecodeFunc {
	return func(data []byte) (any, error) {
		var out T
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return out, nil
	}
}

// TOML decodes TOML file content into a value of type T.
func TOML[T any]() DecodeFunc {
	return func(data []byte) (any, error) {
		var out T
		if err := toml.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		return out, nil
	}
}

// YAML decodes YAML file content into a value of type T.
func YAML[T any]() DecodeFunc {
	return func(data []byte) (any, error) {
		var out T
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return out, nil
	}
}

// CUE compiles CUE file content and decodes it into a value of type T.
func CUE[T any]() DecodeFunc {
	return func(data []byte) (any, error) {
		ctx := cuecontext.New()
		v := ctx.CompileBytes(data)
		if err := v.Err(); err != nil {
			return nil, fmt.Errorf("compile cue: %w", err)
		}
		var out T
		if err := v.Decode(&out); err != nil {
			return nil, fmt.Errorf("decode cue: %w", err)
		}
		return out, nil
	}
}

// Unimplemented is a placeholder for formats that override loading
// entirely and never decode raw bytes. It panics if invoked; reaching it
// means a format was registered with Unimplemented but was still asked
// to decode.
func Unimplemented() DecodeFunc {
	return func([]byte) (any, error) {
		panic("loader: Unimplemented decoder invoked; the format must override loading")
	}
}
