package query

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"mimir/domain/book"
	"mimir/infra/kvstore"
	"mimir/snapshot"
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

// fixture captures X at 1000 and 2000 and Y at 1800, with distinct
// book states per epoch.
func fixture(t *testing.T) *Engine {
	t.Helper()
	reg := book.NewBookRegistry()
	store := snapshot.NewStore(kvstore.NewMemory(), quietLogger())

	route := func(sym string, cat book.Category, side book.Side, price string, qty int64) {
		t.Helper()
		err := reg.Route(book.Order{
			Symbol: sym, Side: side, Category: cat, Price: d(price), Qty: qty,
		})
		if err != nil {
			t.Fatalf("route: %v", err)
		}
	}

	route("X", book.New, book.Bid, "10.0", 150)
	if _, err := store.Capture(1000, reg); err != nil {
		t.Fatalf("capture 1000: %v", err)
	}

	route("X", book.Trade, book.Bid, "10.0", 150)
	route("X", book.New, book.Bid, "9.5", 80)
	route("Y", book.New, book.Ask, "20.0", 40)
	if _, err := store.Capture(1800, reg); err != nil {
		t.Fatalf("capture 1800: %v", err)
	}

	route("X", book.New, book.Ask, "10.5", 60)
	if _, err := store.Capture(2000, reg); err != nil {
		t.Fatalf("capture 2000: %v", err)
	}

	return NewEngine(store, quietLogger())
}

func TestRangeQuerySelectsOnlyInWindow(t *testing.T) {
	e := fixture(t)

	// 1000 lies before the window; only 1800 and 2000 qualify.
	got, err := e.Query(context.Background(), TimeRange{1500, 2500}, []string{"X"}, NewFieldSet(FieldBids, FieldEpoch))
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 || got[0].Epoch != 1800 || got[1].Epoch != 2000 {
		t.Fatalf("unexpected result epochs: %+v", got)
	}
}

func TestResultOrderingSymbolThenEpoch(t *testing.T) {
	e := fixture(t)

	got, err := e.Query(context.Background(), TimeRange{0, 3000}, nil, 0)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	type key struct {
		sym   string
		epoch int64
	}
	want := []key{{"X", 1000}, {"X", 1800}, {"X", 2000}, {"Y", 1800}}
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Symbol != w.sym || got[i].Epoch != w.epoch {
			t.Fatalf("record %d: got %s@%d, want %s@%d",
				i, got[i].Symbol, got[i].Epoch, w.sym, w.epoch)
		}
	}
}

func TestAsOfFallsBackToNearestBefore(t *testing.T) {
	e := fixture(t)

	got, err := e.AsOf(context.Background(), 1500, []string{"X"}, 0)
	if err != nil {
		t.Fatalf("as-of: %v", err)
	}
	if len(got) != 1 || got[0].Epoch != 1000 {
		t.Fatalf("expected the 1000 capture, got %+v", got)
	}
	if len(got[0].Bids) != 1 || got[0].Bids[0].Qty != 150 {
		t.Errorf("expected the pre-trade book, got %+v", got[0].Bids)
	}
}

func TestAsOfBeforeAnyDataYieldsNothing(t *testing.T) {
	e := fixture(t)

	got, err := e.AsOf(context.Background(), 500, []string{"X"}, 0)
	if err != nil {
		t.Fatalf("as-of: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("no data existed at 500; got %+v", got)
	}
}

func TestProjectionOmitsUnrequestedFields(t *testing.T) {
	e := fixture(t)

	got, err := e.Query(context.Background(), TimeRange{1800, 1800}, []string{"X"}, NewFieldSet(FieldEpoch, FieldLastTradePrice))
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one record, got %d", len(got))
	}
	rec := got[0]
	if rec.Epoch != 1800 {
		t.Errorf("epoch: %d", rec.Epoch)
	}
	if rec.LastTradePrice == nil || !rec.LastTradePrice.Equal(d("10.0")) {
		t.Errorf("last trade price: %v", rec.LastTradePrice)
	}
	if rec.Symbol != "" || rec.Bids != nil || rec.Asks != nil || rec.LastTradeQty != nil {
		t.Errorf("unrequested fields must stay empty: %+v", rec)
	}
	if rec.Fields.Has(FieldBids) || !rec.Fields.Has(FieldEpoch) {
		t.Errorf("field mask wrong: %b", rec.Fields)
	}
}

func TestInvalidRange(t *testing.T) {
	e := fixture(t)
	_, err := e.Query(context.Background(), TimeRange{2000, 1000}, nil, 0)
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestUnknownSymbol(t *testing.T) {
	e := fixture(t)
	_, err := e.Query(context.Background(), TimeRange{0, 3000}, []string{"GHOST"}, 0)
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}
}

func TestKnownSymbolEmptyWindowIsNotError(t *testing.T) {
	e := fixture(t)
	got, err := e.Query(context.Background(), TimeRange{5000, 6000}, []string{"Y"}, 0)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestQueryHonoursContext(t *testing.T) {
	e := fixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.Query(ctx, TimeRange{0, 3000}, nil, 0); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	ctx2, cancel2 := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel2()
	time.Sleep(5 * time.Millisecond)
	if _, err := e.Query(ctx2, TimeRange{0, 3000}, nil, 0); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
}

func TestParseField(t *testing.T) {
	f, err := ParseField("last_trade_price")
	if err != nil || f != FieldLastTradePrice {
		t.Fatalf("parse: %v %v", f, err)
	}
	if _, err := ParseField("volume"); err == nil {
		t.Fatal("expected error for unknown field name")
	}
}
