package capture

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"mimir/domain/book"
	"mimir/infra/kvstore"
	"mimir/jobs/broadcaster"
	"mimir/snapshot"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func seedRegistry(t *testing.T) *book.BookRegistry {
	t.Helper()
	reg := book.NewBookRegistry()
	orders := []book.Order{
		{Epoch: 1, ID: 1, Symbol: "AAPL", Side: book.Bid, Category: book.New, Price: decimal.NewFromInt(100), Qty: 10},
		{Epoch: 2, ID: 2, Symbol: "MSFT", Side: book.Ask, Category: book.New, Price: decimal.NewFromInt(300), Qty: 5},
	}
	for _, o := range orders {
		if err := reg.Route(o); err != nil {
			t.Fatalf("route: %v", err)
		}
	}
	return reg
}

func TestCaptureOnceWritesSnapshotsAndNotices(t *testing.T) {
	kv := kvstore.NewMemory()
	store := snapshot.NewStore(kv, quietLogger())
	reg := seedRegistry(t)
	ledger := broadcaster.NewLedger(kv)

	j := New(store, reg, ledger, time.Second, quietLogger())
	j.now = func() time.Time { return time.UnixMilli(5000) }

	j.CaptureOnce()

	for _, sym := range []string{"AAPL", "MSFT"} {
		if _, err := store.Load(sym, 5000); err != nil {
			t.Fatalf("load %s: %v", sym, err)
		}
		e, err := ledger.Get(sym, 5000)
		if err != nil {
			t.Fatalf("ledger %s: %v", sym, err)
		}
		if e.State != broadcaster.StateNew {
			t.Fatalf("ledger %s state = %v, want NEW", sym, e.State)
		}
	}
}

func TestCaptureOnceDuplicateEpochSkipsNotice(t *testing.T) {
	kv := kvstore.NewMemory()
	store := snapshot.NewStore(kv, quietLogger())
	reg := seedRegistry(t)

	j := New(store, reg, nil, time.Second, quietLogger())
	j.now = func() time.Time { return time.UnixMilli(7000) }

	j.CaptureOnce()
	j.CaptureOnce() // same clock, every symbol rejected as duplicate

	for _, sym := range []string{"AAPL", "MSFT"} {
		snap, err := store.Load(sym, 7000)
		if err != nil {
			t.Fatalf("load %s: %v", sym, err)
		}
		if snap.Epoch != 7000 {
			t.Fatalf("epoch = %d, want 7000", snap.Epoch)
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	kv := kvstore.NewMemory()
	store := snapshot.NewStore(kv, quietLogger())
	reg := seedRegistry(t)

	j := New(store, reg, nil, time.Millisecond, quietLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := j.Run(ctx)
	if err == nil {
		t.Fatal("expected context error")
	}
}
