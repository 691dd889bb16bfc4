// Package snapshot captures immutable, timestamped images of the book
// registry's per-symbol state, persists them through an abstract
// key-to-bytes store, and maintains the TimeIndex that maps
// (symbol, epoch) to a storage location.
//
// The TimeIndex is an acceleration structure, not a source of truth: it
// is rebuilt on startup purely by rescanning the stored snapshots.
package snapshot
