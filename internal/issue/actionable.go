// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// ActionableError carries the context a user needs to act on a
	// failure: the operation that failed, the resource involved, and
	// concrete suggestions for fixing it.
	//
	// Construct through the ErrorContext builder:
	//
	//	err := issue.NewErrorContext().
	//		WithOperation("load asset").
	//		WithResource("assets/items/sword.json").
	//		WithSuggestion("Check the file decodes with 'jq .'").
	//		Wrap(originalErr).
	//		Build()
	ActionableError struct {
		// Operation is the verb phrase that failed ("load asset",
		// "scan directory").
		Operation string

		// Resource is the file, path, or identifier involved. Optional.
		Resource string

		// Suggestions are remediation hints shown under the message. Optional.
		Suggestions []string

		// Cause is the wrapped underlying error. Optional.
		Cause error
	}

	// ErrorContext accumulates error context incrementally, so a caller
	// can establish operation and resource up front and attach the cause
	// once the failure happens:
	//
	//	ctx := issue.NewErrorContext().
	//		WithOperation("parse config").
	//		WithResource("/etc/assetkit/config.toml")
	//
	//	return ctx.WithSuggestion("Check TOML syntax").Wrap(err).Build()
	ErrorContext struct {
		operation   string
		resource    string
		suggestions []string
		cause       error
	}
)

// NewActionableError returns a bare ActionableError for the operation.
// Prefer ErrorContext when a resource or suggestions are involved.
func NewActionableError(operation string) *ActionableError {
	return &ActionableError{Operation: operation}
}

// NewErrorContext returns an empty builder.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// WrapWithOperation attaches an operation to err. Returns nil for a nil
// err so it can wrap a call result directly.
func WrapWithOperation(err error, operation string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{Operation: operation, Cause: err}
}

// WrapWithContext attaches operation and resource to err. Returns nil
// for a nil err.
func WrapWithContext(err error, operation, resource string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{Operation: operation, Resource: resource, Cause: err}
}

// Error returns the concise one-line form used by non-verbose output:
// "failed to <operation>[: <resource>][: <cause>]".
func (e *ActionableError) Error() string {
	var b strings.Builder

	b.WriteString("failed to ")
	b.WriteString(e.Operation)
	if e.Resource != "" {
		b.WriteString(": ")
		b.WriteString(e.Resource)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	return b.String()
}

// Unwrap exposes the cause to errors.Is/errors.As.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format renders the error for display: the one-line message, then a
// bulleted suggestion list. With verbose set, the numbered cause chain
// follows.
func (e *ActionableError) Format(verbose bool) string {
	var b strings.Builder

	b.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		b.WriteString("\n")
		for _, s := range e.Suggestions {
			b.WriteString("\n  • ")
			b.WriteString(s)
		}
	}

	if verbose && e.Cause != nil {
		b.WriteString("\n\nError chain:")
		for depth, err := 1, e.Cause; err != nil; depth, err = depth+1, errors.Unwrap(err) {
			fmt.Fprintf(&b, "\n  %d. %s", depth, err.Error())
		}
	}

	return b.String()
}

// HasSuggestions reports whether any suggestions were attached.
func (e *ActionableError) HasSuggestions() bool {
	return len(e.Suggestions) > 0
}

// WithOperation sets the failing operation, a verb phrase such as
// "load asset".
func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.operation = op
	return c
}

// WithResource sets the file, path, or identifier involved.
func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.resource = res
	return c
}

// WithSuggestion appends one remediation hint. May be called repeatedly.
func (c *ErrorContext) WithSuggestion(sug string) *ErrorContext {
	c.suggestions = append(c.suggestions, sug)
	return c
}

// WithSuggestions appends several remediation hints at once.
func (c *ErrorContext) WithSuggestions(sugs ...string) *ErrorContext {
	c.suggestions = append(c.suggestions, sugs...)
	return c
}

// Wrap records the underlying cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.cause = err
	return c
}

// Build materializes the ActionableError. The operation is mandatory;
// without one Build returns nil.
func (c *ErrorContext) Build() *ActionableError {
	if c.operation == "" {
		return nil
	}

	return &ActionableError{
		Operation:   c.operation,
		Resource:    c.resource,
		Suggestions: c.suggestions,
		Cause:       c.cause,
	}
}

// BuildError is Build with an error return type, for use directly in
// return statements. Returns nil when no operation is set.
func (c *ErrorContext) BuildError() error {
	ae := c.Build()
	if ae == nil {
		return nil
	}
	return ae
}
