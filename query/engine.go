// Package query answers time-range, symbol and field filtered queries
// over the snapshot store. It locates the minimal covering set of
// stored snapshots through the TimeIndex, reconstructs as-of instants
// from the nearest preceding capture, and projects only the requested
// fields.
package query

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"mimir/domain/book"
	"mimir/snapshot"
)

var (
	ErrInvalidRange  = errors.New("query: range start after end")
	ErrUnknownSymbol = errors.New("query: symbol never observed")
)

// TimeRange is an inclusive epoch interval. From == To queries the
// state as of a single instant.
type TimeRange struct {
	From int64
	To   int64
}

// ProjectedSnapshot carries only the requested fields of one snapshot.
// Unrequested fields stay at their zero value and are absent from the
// Fields mask, so renderers can omit them instead of nulling them.
type ProjectedSnapshot struct {
	Fields FieldSet

	Symbol string
	Epoch  int64
	Bids   []book.PriceLevel
	Asks   []book.PriceLevel

	LastTradePrice *decimal.Decimal
	LastTradeQty   *int64
}

// Engine resolves queries against a snapshot store and its TimeIndex.
// It is a pure reader: abandoning a query mid-flight mutates nothing.
type Engine struct {
	store *snapshot.Store
	log   *logrus.Entry
}

func NewEngine(store *snapshot.Store, log *logrus.Logger) *Engine {
	return &Engine{
		store: store,
		log:   log.WithField("component", "query-engine"),
	}
}

// Query returns projected snapshots for every requested symbol within
// the range, ordered by symbol (lexicographic) then epoch ascending.
//
// An empty symbol set means all symbols known to the index; an empty
// field set means all fields. A point query (From == To) with no exact
// capture at that instant falls back to the most recent snapshot at or
// before it, because book snapshots are point samples of a
// monotonically evolving state and only "most recent known" is a valid
// answer. A symbol with no data in range contributes nothing; that is
// not an error.
func (e *Engine) Query(ctx context.Context, tr TimeRange, symbols []string, fields FieldSet) ([]ProjectedSnapshot, error) {
	if tr.From > tr.To {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, tr.From, tr.To)
	}
	if fields.IsEmpty() {
		fields = AllFields
	}

	syms, err := e.resolveSymbols(symbols)
	if err != nil {
		return nil, err
	}

	e.log.WithFields(logrus.Fields{
		"from":    tr.From,
		"to":      tr.To,
		"symbols": len(syms),
	}).Debug("query")

	var out []ProjectedSnapshot
	for _, sym := range syms {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("query abandoned: %w", err)
		}

		epochs := e.epochsFor(sym, tr)
		for _, epoch := range epochs {
			snap, err := e.store.Load(sym, epoch)
			if err != nil {
				return nil, fmt.Errorf("query %s: %w", sym, err)
			}
			out = append(out, project(snap, fields))
		}
	}
	return out, nil
}

// AsOf returns each symbol's state as of a single instant, using the
// nearest snapshot at or before it.
func (e *Engine) AsOf(ctx context.Context, epoch int64, symbols []string, fields FieldSet) ([]ProjectedSnapshot, error) {
	return e.Query(ctx, TimeRange{From: epoch, To: epoch}, symbols, fields)
}

func (e *Engine) epochsFor(sym string, tr TimeRange) []int64 {
	ix := e.store.Index()
	if tr.From == tr.To {
		// As-of instant: exact capture or nearest preceding state. If
		// nothing was captured at or before the instant, the symbol
		// genuinely had no data yet.
		if epoch, ok := ix.NearestAtOrBefore(sym, tr.From); ok {
			return []int64{epoch}
		}
		return nil
	}
	return ix.Range(sym, tr.From, tr.To)
}

func (e *Engine) resolveSymbols(symbols []string) ([]string, error) {
	ix := e.store.Index()
	if len(symbols) == 0 {
		return ix.Symbols(), nil
	}

	seen := make(map[string]struct{}, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, sym := range symbols {
		if _, dup := seen[sym]; dup {
			continue
		}
		seen[sym] = struct{}{}
		if !ix.Has(sym) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, sym)
		}
		out = append(out, sym)
	}
	sort.Strings(out)
	return out, nil
}

func project(s *snapshot.Snapshot, fields FieldSet) ProjectedSnapshot {
	p := ProjectedSnapshot{Fields: fields}
	if fields.Has(FieldSymbol) {
		p.Symbol = s.Symbol
	}
	if fields.Has(FieldEpoch) {
		p.Epoch = s.Epoch
	}
	if fields.Has(FieldBids) {
		p.Bids = s.Bids
	}
	if fields.Has(FieldAsks) {
		p.Asks = s.Asks
	}
	if s.HasLastTrade {
		if fields.Has(FieldLastTradePrice) {
			price := s.LastTradePrice
			p.LastTradePrice = &price
		}
		if fields.Has(FieldLastTradeQty) {
			qty := s.LastTradeQty
			p.LastTradeQty = &qty
		}
	}
	return p
}
