package snapshot

import (
	"sort"
	"sync"
)

// Location identifies where a persisted snapshot lives in the backing
// store. With the KV backend it is simply the storage key.
type Location string

// TimeIndex maps (symbol, epoch) to snapshot locations and answers
// range and nearest-neighbour lookups in O(log n) per symbol.
//
// One writer inserts while any number of readers look up; readers never
// observe a half-inserted entry. Entries are never mutated.
type TimeIndex struct {
	mu       sync.RWMutex
	bySymbol map[string]*symbolIndex
}

type symbolIndex struct {
	epochs []int64 // ascending
	locs   map[int64]Location
}

func NewTimeIndex() *TimeIndex {
	return &TimeIndex{bySymbol: make(map[string]*symbolIndex)}
}

// Insert records a new (symbol, epoch) -> location entry. A duplicate
// epoch for the same symbol is rejected with ErrDuplicateEpoch.
func (ix *TimeIndex) Insert(symbol string, epoch int64, loc Location) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	si, ok := ix.bySymbol[symbol]
	if !ok {
		si = &symbolIndex{locs: make(map[int64]Location)}
		ix.bySymbol[symbol] = si
	}
	if _, exists := si.locs[epoch]; exists {
		return ErrDuplicateEpoch
	}

	i := sort.Search(len(si.epochs), func(i int) bool { return si.epochs[i] >= epoch })
	si.epochs = append(si.epochs, 0)
	copy(si.epochs[i+1:], si.epochs[i:])
	si.epochs[i] = epoch
	si.locs[epoch] = loc
	return nil
}

// Range returns all indexed epochs for symbol with from <= epoch <= to,
// ascending. An empty range is an empty slice, not an error.
func (ix *TimeIndex) Range(symbol string, from, to int64) []int64 {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	si, ok := ix.bySymbol[symbol]
	if !ok {
		return nil
	}
	lo := sort.Search(len(si.epochs), func(i int) bool { return si.epochs[i] >= from })
	hi := sort.Search(len(si.epochs), func(i int) bool { return si.epochs[i] > to })
	if lo >= hi {
		return nil
	}
	out := make([]int64, hi-lo)
	copy(out, si.epochs[lo:hi])
	return out
}

// NearestAtOrBefore returns the greatest indexed epoch <= epoch.
func (ix *TimeIndex) NearestAtOrBefore(symbol string, epoch int64) (int64, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	si, ok := ix.bySymbol[symbol]
	if !ok {
		return 0, false
	}
	i := sort.Search(len(si.epochs), func(i int) bool { return si.epochs[i] > epoch })
	if i == 0 {
		return 0, false
	}
	return si.epochs[i-1], true
}

// NearestAtOrAfter returns the smallest indexed epoch >= epoch.
func (ix *TimeIndex) NearestAtOrAfter(symbol string, epoch int64) (int64, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	si, ok := ix.bySymbol[symbol]
	if !ok {
		return 0, false
	}
	i := sort.Search(len(si.epochs), func(i int) bool { return si.epochs[i] >= epoch })
	if i == len(si.epochs) {
		return 0, false
	}
	return si.epochs[i], true
}

// Location resolves a (symbol, epoch) pair to its storage location.
func (ix *TimeIndex) Location(symbol string, epoch int64) (Location, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	si, ok := ix.bySymbol[symbol]
	if !ok {
		return "", false
	}
	loc, ok := si.locs[epoch]
	return loc, ok
}

// Symbols lists all indexed symbols in lexicographic order.
func (ix *TimeIndex) Symbols() []string {
	ix.mu.RLock()
	out := make([]string, 0, len(ix.bySymbol))
	for sym := range ix.bySymbol {
		out = append(out, sym)
	}
	ix.mu.RUnlock()
	sort.Strings(out)
	return out
}

// Has reports whether any snapshot is indexed for symbol.
func (ix *TimeIndex) Has(symbol string) bool {
	ix.mu.RLock()
	_, ok := ix.bySymbol[symbol]
	ix.mu.RUnlock()
	return ok
}

// Count returns how many snapshots are indexed for symbol.
func (ix *TimeIndex) Count(symbol string) int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	si, ok := ix.bySymbol[symbol]
	if !ok {
		return 0
	}
	return len(si.epochs)
}
