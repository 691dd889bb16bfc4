package book

import (
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
)

// BookStateView is a read-only, point-in-time-consistent copy of one
// book's top levels plus last trade. It shares nothing with the live
// book and is safe to hold after the per-symbol lock is released.
type BookStateView struct {
	Symbol         string
	Bids           []PriceLevel // best first (descending price)
	Asks           []PriceLevel // best first (ascending price)
	LastTradePrice decimal.Decimal
	LastTradeQty   int64
	HasLastTrade   bool
}

type bookSlot struct {
	mu   sync.Mutex
	book *PriceLevelBook
}

// BookRegistry owns one PriceLevelBook per observed symbol and routes
// order events to them.
//
// Synchronization is keyed to the symbol, not the registry: each slot
// carries its own mutex, so mutations and snapshot reads on different
// symbols never block each other. The registry map itself sits behind
// an RWMutex that is only write-locked when a symbol is first seen.
type BookRegistry struct {
	mu    sync.RWMutex
	slots map[string]*bookSlot
}

func NewBookRegistry() *BookRegistry {
	return &BookRegistry{slots: make(map[string]*bookSlot)}
}

// Route applies an order event to its symbol's book, creating the book
// lazily on the first NEW. CANCEL and TRADE against a never-seen symbol
// fail with ErrUnknownSymbol: there is no liquidity they could reference.
func (r *BookRegistry) Route(o Order) error {
	slot, err := r.slot(o.Symbol, o.Category == New)
	if err != nil {
		return fmt.Errorf("route %s %s: %w", o.Category, o.Symbol, err)
	}
	slot.mu.Lock()
	defer slot.mu.Unlock()
	return slot.book.Apply(o)
}

// SnapshotView returns a consistent view of one symbol's book truncated
// to the best `depth` levels per side. depth <= 0 means all levels.
func (r *BookRegistry) SnapshotView(symbol string, depth int) (BookStateView, error) {
	r.mu.RLock()
	slot, ok := r.slots[symbol]
	r.mu.RUnlock()
	if !ok {
		return BookStateView{}, fmt.Errorf("snapshot %s: %w", symbol, ErrUnknownSymbol)
	}
	slot.mu.Lock()
	defer slot.mu.Unlock()
	return viewOf(slot.book, depth), nil
}

// SnapshotViewAll captures a view of every registered book. Each book is
// locked individually while copied; the capture is consistent per symbol,
// not across symbols.
func (r *BookRegistry) SnapshotViewAll(depth int) map[string]BookStateView {
	r.mu.RLock()
	slots := make(map[string]*bookSlot, len(r.slots))
	for sym, slot := range r.slots {
		slots[sym] = slot
	}
	r.mu.RUnlock()

	out := make(map[string]BookStateView, len(slots))
	for sym, slot := range slots {
		slot.mu.Lock()
		out[sym] = viewOf(slot.book, depth)
		slot.mu.Unlock()
	}
	return out
}

// Symbols lists all observed symbols in lexicographic order.
func (r *BookRegistry) Symbols() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.slots))
	for sym := range r.slots {
		out = append(out, sym)
	}
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}

// Has reports whether a symbol has ever been observed.
func (r *BookRegistry) Has(symbol string) bool {
	r.mu.RLock()
	_, ok := r.slots[symbol]
	r.mu.RUnlock()
	return ok
}

func (r *BookRegistry) slot(symbol string, create bool) (*bookSlot, error) {
	r.mu.RLock()
	slot, ok := r.slots[symbol]
	r.mu.RUnlock()
	if ok {
		return slot, nil
	}
	if !create {
		return nil, ErrUnknownSymbol
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if slot, ok = r.slots[symbol]; ok {
		return slot, nil
	}
	slot = &bookSlot{book: NewPriceLevelBook(symbol)}
	r.slots[symbol] = slot
	return slot, nil
}

func viewOf(b *PriceLevelBook, depth int) BookStateView {
	v := BookStateView{
		Symbol: b.Symbol(),
		Bids:   b.TopBids(depth),
		Asks:   b.TopAsks(depth),
	}
	v.LastTradePrice, v.LastTradeQty, v.HasLastTrade = b.LastTrade()
	return v
}
