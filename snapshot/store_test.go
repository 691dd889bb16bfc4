package snapshot

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"mimir/domain/book"
	"mimir/infra/kvstore"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func apply(t *testing.T, reg *book.BookRegistry, sym string, cat book.Category, side book.Side, price string, qty int64) {
	t.Helper()
	err := reg.Route(book.Order{
		Symbol:   sym,
		Side:     side,
		Category: cat,
		Price:    d(price),
		Qty:      qty,
	})
	if err != nil {
		t.Fatalf("route %s %s %d@%s: %v", sym, cat, qty, price, err)
	}
}

func TestCaptureThenLoadRoundTrip(t *testing.T) {
	reg := book.NewBookRegistry()
	for i := 0; i < 7; i++ {
		apply(t, reg, "X", book.New, book.Bid, fmt.Sprintf("10.%d", i), 100)
		apply(t, reg, "X", book.New, book.Ask, fmt.Sprintf("11.%d", i), 50)
	}
	apply(t, reg, "X", book.Trade, book.Ask, "11.0", 25)

	store := NewStore(kvstore.NewMemory(), quietLogger())
	if _, err := store.Capture(1000, reg); err != nil {
		t.Fatalf("capture: %v", err)
	}

	snap, err := store.Load("X", 1000)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if snap.Symbol != "X" || snap.Epoch != 1000 {
		t.Errorf("identity: %s@%d", snap.Symbol, snap.Epoch)
	}
	if len(snap.Bids) != DepthLimit || len(snap.Asks) != DepthLimit {
		t.Fatalf("expected top-%d per side, got %d/%d", DepthLimit, len(snap.Bids), len(snap.Asks))
	}
	// Bids descending from 10.6; asks ascending from 11.0 (25 remaining
	// after the trade).
	if !snap.Bids[0].Price.Equal(d("10.6")) {
		t.Errorf("best bid: %s", snap.Bids[0].Price)
	}
	for i := 1; i < len(snap.Bids); i++ {
		if snap.Bids[i].Price.Cmp(snap.Bids[i-1].Price) >= 0 {
			t.Fatalf("bids not descending: %v", snap.Bids)
		}
	}
	if !snap.Asks[0].Price.Equal(d("11.0")) || snap.Asks[0].Qty != 25 {
		t.Errorf("best ask: %d@%s", snap.Asks[0].Qty, snap.Asks[0].Price)
	}
	for i := 1; i < len(snap.Asks); i++ {
		if snap.Asks[i].Price.Cmp(snap.Asks[i-1].Price) <= 0 {
			t.Fatalf("asks not ascending: %v", snap.Asks)
		}
	}
	if !snap.HasLastTrade || !snap.LastTradePrice.Equal(d("11.0")) || snap.LastTradeQty != 25 {
		t.Errorf("last trade: %d@%s has=%v", snap.LastTradeQty, snap.LastTradePrice, snap.HasLastTrade)
	}
}

func TestCaptureDuplicateEpochRejected(t *testing.T) {
	reg := book.NewBookRegistry()
	apply(t, reg, "X", book.New, book.Bid, "10", 1)

	store := NewStore(kvstore.NewMemory(), quietLogger())
	if _, err := store.Capture(1000, reg); err != nil {
		t.Fatalf("first capture: %v", err)
	}
	_, err := store.Capture(1000, reg)
	if !errors.Is(err, ErrDuplicateEpoch) {
		t.Fatalf("expected ErrDuplicateEpoch, got %v", err)
	}
}

func TestCaptureOneSymbolFailureDoesNotBlockOthers(t *testing.T) {
	reg := book.NewBookRegistry()
	apply(t, reg, "A", book.New, book.Bid, "1", 1)
	apply(t, reg, "B", book.New, book.Bid, "2", 1)

	store := NewStore(kvstore.NewMemory(), quietLogger())
	// Pre-seed a conflicting entry so symbol A fails its next capture.
	if err := store.Index().Insert("A", 500, Key("A", 500)); err != nil {
		t.Fatal(err)
	}

	captured, err := store.Capture(500, reg)
	if !errors.Is(err, ErrDuplicateEpoch) {
		t.Fatalf("expected duplicate error for A, got %v", err)
	}
	if len(captured) != 1 || captured[0] != "B" {
		t.Fatalf("expected only B captured, got %v", captured)
	}
	if _, err := store.Load("B", 500); err != nil {
		t.Errorf("B should have been captured despite A failing: %v", err)
	}
}

func TestLoadNotFound(t *testing.T) {
	store := NewStore(kvstore.NewMemory(), quietLogger())
	if _, err := store.Load("X", 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// The index must be derivable purely from the stored bytes.
func TestRebuildFromStore(t *testing.T) {
	kv := kvstore.NewMemory()
	reg := book.NewBookRegistry()
	apply(t, reg, "X", book.New, book.Bid, "10", 5)
	apply(t, reg, "Y", book.New, book.Ask, "20", 5)

	first := NewStore(kv, quietLogger())
	for _, epoch := range []int64{1000, 2000, 3000} {
		if _, err := first.Capture(epoch, reg); err != nil {
			t.Fatalf("capture %d: %v", epoch, err)
		}
	}

	// Fresh store over the same KV, as after a restart.
	second := NewStore(kv, quietLogger())
	if err := second.Rebuild(); err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	for _, sym := range []string{"X", "Y"} {
		got := second.Index().Range(sym, 0, 5000)
		if len(got) != 3 {
			t.Fatalf("%s: rebuilt index range %v", sym, got)
		}
	}
	snap, err := second.Load("X", 2000)
	if err != nil {
		t.Fatalf("load after rebuild: %v", err)
	}
	if !snap.Bids[0].Price.Equal(d("10")) || snap.Bids[0].Qty != 5 {
		t.Errorf("unexpected bids after rebuild: %v", snap.Bids)
	}
}

func TestCodecRejectsCorruption(t *testing.T) {
	codec := BinaryCodec{}
	snap := &Snapshot{
		Symbol: "X",
		Epoch:  7,
		Bids:   []book.PriceLevel{{Price: d("10.5"), Qty: 3}},
	}
	data, err := codec.Encode(snap)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	data[len(data)/2] ^= 0xff
	if _, err := codec.Decode(data); !errors.Is(err, ErrCorruptSnapshot) {
		t.Fatalf("expected ErrCorruptSnapshot, got %v", err)
	}
	if _, err := codec.Decode(nil); !errors.Is(err, ErrCorruptSnapshot) {
		t.Fatalf("expected ErrCorruptSnapshot for empty input, got %v", err)
	}
}
