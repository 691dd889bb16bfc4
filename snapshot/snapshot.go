package snapshot

import (
	"errors"

	"github.com/shopspring/decimal"

	"mimir/domain/book"
)

// DepthLimit is how many levels per side a snapshot retains.
const DepthLimit = 5

// Snapshot is an immutable capture of one symbol's top price levels
// plus last trade info at a given epoch.
type Snapshot struct {
	Symbol string
	Epoch  int64
	Bids   []book.PriceLevel // best first (descending price)
	Asks   []book.PriceLevel // best first (ascending price)

	LastTradePrice decimal.Decimal
	LastTradeQty   int64
	HasLastTrade   bool
}

// Store errors.
var (
	ErrDuplicateEpoch = errors.New("snapshot already captured at this epoch")
	ErrNotFound       = errors.New("snapshot not found")
	ErrInvalidEpoch   = errors.New("epoch must be non-negative")
)

// FromView builds a snapshot from a registry view, truncating each side
// to DepthLimit. Views are already copies, so the slices can be kept.
func FromView(epoch int64, v book.BookStateView) *Snapshot {
	s := &Snapshot{
		Symbol:         v.Symbol,
		Epoch:          epoch,
		Bids:           truncate(v.Bids),
		Asks:           truncate(v.Asks),
		LastTradePrice: v.LastTradePrice,
		LastTradeQty:   v.LastTradeQty,
		HasLastTrade:   v.HasLastTrade,
	}
	return s
}

func truncate(levels []book.PriceLevel) []book.PriceLevel {
	if len(levels) > DepthLimit {
		return levels[:DepthLimit]
	}
	return levels
}
