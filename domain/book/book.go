package book

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PriceLevelBook is one symbol's aggregated bid/ask ladder. It holds
// current state only; history lives in the snapshot store.
//
// The book itself is not synchronized. BookRegistry serializes access
// per symbol.
type PriceLevelBook struct {
	symbol string
	bids   *LevelTree
	asks   *LevelTree

	lastTradePrice decimal.Decimal
	lastTradeQty   int64
	hasLastTrade   bool
}

func NewPriceLevelBook(symbol string) *PriceLevelBook {
	return &PriceLevelBook{
		symbol: symbol,
		bids:   NewLevelTree(BidOrder),
		asks:   NewLevelTree(AskOrder),
	}
}

func (b *PriceLevelBook) Symbol() string { return b.symbol }

// Apply mutates the book according to one order event. On error the
// book is untouched; a failed apply has no partial effect.
func (b *PriceLevelBook) Apply(o Order) error {
	if o.Qty <= 0 {
		return fmt.Errorf("%s %s qty=%d: %w", o.Symbol, o.Category, o.Qty, ErrInvalidQuantity)
	}
	if o.Price.IsNegative() {
		return fmt.Errorf("%s %s price=%s: %w", o.Symbol, o.Category, o.Price, ErrInvalidPrice)
	}

	switch o.Category {
	case New:
		b.applyNew(o)
		return nil
	case Cancel:
		return b.applyCancel(o)
	case Trade:
		return b.applyTrade(o)
	default:
		return fmt.Errorf("unknown order category %d", o.Category)
	}
}

// applyNew upserts resting liquidity. No prior-order validation: NEW
// simply adds depth at a price.
func (b *PriceLevelBook) applyNew(o Order) {
	lvl := b.side(o.Side).Upsert(o.Price)
	lvl.Qty += o.Qty
}

// applyCancel withdraws liquidity. The referenced level must exist and
// hold at least the cancelled quantity; reject rather than clamp so a
// corrupt feed is caught early.
func (b *PriceLevelBook) applyCancel(o Order) error {
	tree := b.side(o.Side)
	lvl := tree.Find(o.Price)
	if lvl == nil {
		return fmt.Errorf("%s CANCEL %d@%s: no such level: %w",
			o.Symbol, o.Qty, o.Price, ErrInvalidCancel)
	}
	if o.Qty > lvl.Qty {
		return fmt.Errorf("%s CANCEL %d@%s exceeds resting %d: %w",
			o.Symbol, o.Qty, o.Price, lvl.Qty, ErrInvalidCancel)
	}
	lvl.Qty -= o.Qty
	if lvl.Qty == 0 {
		tree.Delete(o.Price)
	}
	return nil
}

// applyTrade consumes resting liquidity at the traded price and records
// the last trade. An over-trade means the book and the feed disagree,
// which is an error, not something to clamp.
func (b *PriceLevelBook) applyTrade(o Order) error {
	tree := b.side(o.Side)
	lvl := tree.Find(o.Price)
	if lvl == nil {
		return fmt.Errorf("%s TRADE %d@%s: no such level: %w",
			o.Symbol, o.Qty, o.Price, ErrInconsistentTrade)
	}
	if o.Qty > lvl.Qty {
		return fmt.Errorf("%s TRADE %d@%s exceeds resting %d: %w",
			o.Symbol, o.Qty, o.Price, lvl.Qty, ErrInconsistentTrade)
	}
	lvl.Qty -= o.Qty
	if lvl.Qty == 0 {
		tree.Delete(o.Price)
	}
	b.lastTradePrice = o.Price
	b.lastTradeQty = o.Qty
	b.hasLastTrade = true
	return nil
}

func (b *PriceLevelBook) side(s Side) *LevelTree {
	if s == Ask {
		return b.asks
	}
	return b.bids
}

// TopBids copies up to k best bid levels, highest price first.
func (b *PriceLevelBook) TopBids(k int) []PriceLevel { return b.bids.TopLevels(k) }

// TopAsks copies up to k best ask levels, lowest price first.
func (b *PriceLevelBook) TopAsks(k int) []PriceLevel { return b.asks.TopLevels(k) }

// LastTrade reports the most recent trade, if any.
func (b *PriceLevelBook) LastTrade() (price decimal.Decimal, qty int64, ok bool) {
	return b.lastTradePrice, b.lastTradeQty, b.hasLastTrade
}

// Depth returns the number of distinct price levels on a side.
func (b *PriceLevelBook) Depth(s Side) int { return b.side(s).Size() }

// TotalQty sums resting quantity across all levels of a side.
func (b *PriceLevelBook) TotalQty(s Side) int64 {
	var total int64
	b.side(s).Walk(func(lvl *PriceLevel) bool {
		total += lvl.Qty
		return true
	})
	return total
}
