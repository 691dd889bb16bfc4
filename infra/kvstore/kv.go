// Package kvstore abstracts the durable key-to-bytes store underneath
// the snapshot subsystem. Keys are ordered byte strings; range scans
// over a [lower, upper) bound are part of the contract so indexes can
// be rebuilt by rescanning a prefix.
package kvstore

import "errors"

// ErrKeyNotFound is returned by Get for absent keys.
var ErrKeyNotFound = errors.New("kvstore: key not found")

// KV is a durable ordered key-value store. Implementations must allow
// concurrent readers alongside a writer.
type KV interface {
	// Set durably writes key to value.
	Set(key, value []byte) error
	// Get returns a copy of the value, or ErrKeyNotFound.
	Get(key []byte) ([]byte, error)
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key []byte) error
	// Scan visits keys in [lower, upper) in ascending byte order.
	// Returning an error from fn stops the scan and propagates it.
	Scan(lower, upper []byte, fn func(key, value []byte) error) error
	Close() error
}

// PrefixUpperBound returns the smallest key greater than every key
// with the given prefix, for use as a Scan upper bound.
func PrefixUpperBound(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil // prefix is all 0xff; no upper bound
}
