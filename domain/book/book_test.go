package book

import (
	"errors"
	"testing"
)

func newOrder(cat Category, side Side, price string, qty int64) Order {
	return Order{
		Epoch:    1,
		Symbol:   "TEST",
		Side:     side,
		Category: cat,
		Price:    d(price),
		Qty:      qty,
	}
}

func mustApply(t *testing.T, b *PriceLevelBook, o Order) {
	t.Helper()
	if err := b.Apply(o); err != nil {
		t.Fatalf("apply %s %d@%s: %v", o.Category, o.Qty, o.Price, err)
	}
}

func TestNewAggregatesSamePrice(t *testing.T) {
	b := NewPriceLevelBook("TEST")
	mustApply(t, b, newOrder(New, Bid, "10.0", 100))
	mustApply(t, b, newOrder(New, Bid, "10.0", 50))

	bids := b.TopBids(0)
	if len(bids) != 1 {
		t.Fatalf("expected one bid level, got %d", len(bids))
	}
	if bids[0].Qty != 150 {
		t.Errorf("expected aggregated qty 150, got %d", bids[0].Qty)
	}
}

// Walks the example sequence from the design discussion end to end:
// NEW 100@10 + NEW 50@10 -> 150, CANCEL 30 -> 120, TRADE 120 -> level
// gone, further TRADE fails and leaves the book empty.
func TestNewCancelTradeLifecycle(t *testing.T) {
	b := NewPriceLevelBook("TEST")
	mustApply(t, b, newOrder(New, Bid, "10.0", 100))
	mustApply(t, b, newOrder(New, Bid, "10.0", 50))
	mustApply(t, b, newOrder(Cancel, Bid, "10.0", 30))

	if qty := b.TopBids(0)[0].Qty; qty != 120 {
		t.Fatalf("expected 120 after cancel, got %d", qty)
	}

	mustApply(t, b, newOrder(Trade, Bid, "10.0", 120))
	if b.Depth(Bid) != 0 {
		t.Fatal("expected bid level removed after full trade")
	}

	err := b.Apply(newOrder(Trade, Bid, "10.0", 1))
	if !errors.Is(err, ErrInconsistentTrade) {
		t.Fatalf("expected ErrInconsistentTrade, got %v", err)
	}
	if b.Depth(Bid) != 0 {
		t.Error("failed trade must not resurrect the level")
	}
}

func TestCancelMissingLevel(t *testing.T) {
	b := NewPriceLevelBook("TEST")
	mustApply(t, b, newOrder(New, Ask, "20.0", 10))

	err := b.Apply(newOrder(Cancel, Ask, "21.0", 5))
	if !errors.Is(err, ErrInvalidCancel) {
		t.Fatalf("expected ErrInvalidCancel, got %v", err)
	}
	if b.TotalQty(Ask) != 10 {
		t.Error("failed cancel must leave the book unchanged")
	}
}

func TestCancelExceedsResting(t *testing.T) {
	b := NewPriceLevelBook("TEST")
	mustApply(t, b, newOrder(New, Ask, "20.0", 10))

	err := b.Apply(newOrder(Cancel, Ask, "20.0", 11))
	if !errors.Is(err, ErrInvalidCancel) {
		t.Fatalf("expected ErrInvalidCancel, got %v", err)
	}
	if qty := b.TopAsks(0)[0].Qty; qty != 10 {
		t.Errorf("expected qty unchanged at 10, got %d", qty)
	}
}

func TestCancelRemovesEmptyLevel(t *testing.T) {
	b := NewPriceLevelBook("TEST")
	mustApply(t, b, newOrder(New, Bid, "9.5", 40))
	mustApply(t, b, newOrder(Cancel, Bid, "9.5", 40))
	if b.Depth(Bid) != 0 {
		t.Error("fully cancelled level must be absent, not zero")
	}
}

func TestTradeUpdatesLastTrade(t *testing.T) {
	b := NewPriceLevelBook("TEST")
	if _, _, ok := b.LastTrade(); ok {
		t.Fatal("fresh book should have no last trade")
	}

	mustApply(t, b, newOrder(New, Ask, "15.25", 30))
	mustApply(t, b, newOrder(Trade, Ask, "15.25", 12))

	price, qty, ok := b.LastTrade()
	if !ok || !price.Equal(d("15.25")) || qty != 12 {
		t.Errorf("expected last trade 12@15.25, got %d@%s ok=%v", qty, price, ok)
	}
}

func TestFailedTradeDoesNotTouchLastTrade(t *testing.T) {
	b := NewPriceLevelBook("TEST")
	mustApply(t, b, newOrder(New, Ask, "15.25", 30))
	mustApply(t, b, newOrder(Trade, Ask, "15.25", 10))

	if err := b.Apply(newOrder(Trade, Ask, "15.25", 100)); err == nil {
		t.Fatal("expected over-trade to fail")
	}
	_, qty, _ := b.LastTrade()
	if qty != 10 {
		t.Errorf("failed trade must not update last trade, got qty=%d", qty)
	}
}

// Total resting quantity must equal applied NEW minus applied
// CANCEL/TRADE on that side, regardless of ordering across levels.
func TestQuantityConservation(t *testing.T) {
	b := NewPriceLevelBook("TEST")
	var want int64

	steps := []struct {
		o  Order
		ok bool
	}{
		{newOrder(New, Bid, "10", 100), true},
		{newOrder(New, Bid, "9", 200), true},
		{newOrder(New, Bid, "10", 50), true},
		{newOrder(Cancel, Bid, "9", 75), true},
		{newOrder(Trade, Bid, "10", 150), true},
		{newOrder(Cancel, Bid, "8", 5), false}, // no such level
		{newOrder(New, Bid, "11", 25), true},
	}
	for _, st := range steps {
		err := b.Apply(st.o)
		if st.ok && err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !st.ok {
			if err == nil {
				t.Fatalf("expected failure for %s %d@%s", st.o.Category, st.o.Qty, st.o.Price)
			}
			continue
		}
		if st.o.Category == New {
			want += st.o.Qty
		} else {
			want -= st.o.Qty
		}
	}

	if got := b.TotalQty(Bid); got != want {
		t.Errorf("quantity not conserved: got %d, want %d", got, want)
	}
}

func TestRejectNonPositiveQty(t *testing.T) {
	b := NewPriceLevelBook("TEST")
	if err := b.Apply(newOrder(New, Bid, "10", 0)); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestNoZeroQuantityLevelObservable(t *testing.T) {
	b := NewPriceLevelBook("TEST")
	mustApply(t, b, newOrder(New, Ask, "3", 7))
	mustApply(t, b, newOrder(Trade, Ask, "3", 7))
	for _, lvl := range b.TopAsks(0) {
		if lvl.Qty <= 0 {
			t.Fatalf("observed non-positive level %d@%s", lvl.Qty, lvl.Price)
		}
	}
	if b.Depth(Ask) != 0 {
		t.Error("expected empty ask side")
	}
}
