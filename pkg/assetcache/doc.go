// SPDX-License-Identifier: MPL-2.0

// Package assetcache implements a file-backed asset cache keyed by dotted
// identifiers (see pkg/assetid). Assets are decoded from files under a
// single root directory through per-format decoders (see pkg/loader) and
// kept in memory; directories can be scanned into indexes that support
// snapshot iteration while a hot-reload watcher concurrently adds and
// removes entries.
//
// The cache, its directory indexes, and the readers derived from them
// share ownership through ordinary pointers, so a DirReader stays valid
// for as long as it is reachable regardless of when the cache handed it
// out.
package assetcache
