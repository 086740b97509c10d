// SPDX-License-Identifier: MPL-2.0

// Package issue turns asset-loading failures into actionable messages:
// errors that carry the failing operation, the resource involved, and
// remediation suggestions, plus a catalog of Markdown help pages for
// recurring failure classes rendered in the terminal.
package issue
