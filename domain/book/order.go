package book

import (
	"errors"

	"github.com/shopspring/decimal"
)

type Side uint8

const (
	Bid Side = iota
	Ask
)

func (s Side) String() string {
	if s == Ask {
		return "ASK"
	}
	return "BID"
}

// Category is the kind of mutation an order event carries.
type Category uint8

const (
	New Category = iota
	Cancel
	Trade
)

func (c Category) String() string {
	switch c {
	case New:
		return "NEW"
	case Cancel:
		return "CANCEL"
	case Trade:
		return "TRADE"
	default:
		return "UNKNOWN"
	}
}

// Order is one already-parsed order event. It is immutable once built
// and is not retained after it has been applied to a book.
type Order struct {
	Epoch    int64
	ID       uint64
	Symbol   string
	Side     Side
	Category Category
	Price    decimal.Decimal
	Qty      int64
}

// Book update errors. These indicate feed or book corruption and are
// surfaced per order; the stream keeps going.
var (
	ErrInvalidCancel     = errors.New("cancel does not match resting liquidity")
	ErrInconsistentTrade = errors.New("trade exceeds resting liquidity")
	ErrUnknownSymbol     = errors.New("unknown symbol")
	ErrInvalidQuantity   = errors.New("order quantity must be positive")
	ErrInvalidPrice      = errors.New("order price must not be negative")
)
