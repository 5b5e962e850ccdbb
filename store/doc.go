// Package store caches planarity results keyed by a digest of the input graph.
//
// A Record holds the verdict plus either the rotation system of a planar
// embedding or, when it has been computed, a Kuratowski witness edge set.
// BadgerStore persists records in a Badger v4 database; NullStore disables
// caching. Resolve is the read-through entry point used by the command line.
//
// Digest ignores vertex and edge order, so a cached rotation system may come
// from an equivalent input listed in a different order. It is still a valid
// planar embedding of the same graph.
package store
