package broadcaster

import (
	"errors"
	"io"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/sirupsen/logrus"

	"mimir/infra/kvstore"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestLedgerLifecycle(t *testing.T) {
	l := NewLedger(kvstore.NewMemory())

	if err := l.MarkNew("X", 1000); err != nil {
		t.Fatalf("mark new: %v", err)
	}
	e, err := l.Get("X", 1000)
	if err != nil || e.State != StateNew {
		t.Fatalf("get: %+v %v", e, err)
	}

	if err := l.MarkSent("X", 1000, 1); err != nil {
		t.Fatal(err)
	}
	if err := l.MarkAcked("X", 1000, 1); err != nil {
		t.Fatal(err)
	}

	visited := 0
	if err := l.ScanUnacked(func(Entry) error {
		visited++
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if visited != 0 {
		t.Errorf("acked entry must not be visited, got %d", visited)
	}

	n, err := l.PruneAcked()
	if err != nil || n != 1 {
		t.Fatalf("prune: n=%d err=%v", n, err)
	}
	if _, err := l.Get("X", 1000); !errors.Is(err, kvstore.ErrKeyNotFound) {
		t.Fatalf("expected entry gone, got %v", err)
	}
}

func TestScanUnackedOrderAndContent(t *testing.T) {
	l := NewLedger(kvstore.NewMemory())
	_ = l.MarkNew("B", 200)
	_ = l.MarkNew("A", 100)
	_ = l.MarkNew("A", 50)

	var got []Entry
	if err := l.ScanUnacked(func(e Entry) error {
		got = append(got, e)
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	// Key order: symbol lexicographic, epoch ascending within symbol.
	if got[0].Symbol != "A" || got[0].Epoch != 50 ||
		got[1].Symbol != "A" || got[1].Epoch != 100 ||
		got[2].Symbol != "B" || got[2].Epoch != 200 {
		t.Errorf("scan order wrong: %+v", got)
	}
}

func TestDrainAcksOnSuccess(t *testing.T) {
	l := NewLedger(kvstore.NewMemory())
	_ = l.MarkNew("X", 1000)

	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndSucceed()

	b := New(l, producer, "captures", 0, quietLogger())
	b.DrainOnce()

	e, err := l.Get("X", 1000)
	if err != nil {
		t.Fatal(err)
	}
	if e.State != StateAcked {
		t.Errorf("expected ACKED, got %s", e.State)
	}
}

func TestDrainRetriesOnFailure(t *testing.T) {
	l := NewLedger(kvstore.NewMemory())
	_ = l.MarkNew("X", 1000)

	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	b := New(l, producer, "captures", 0, quietLogger())
	b.DrainOnce()

	e, err := l.Get("X", 1000)
	if err != nil {
		t.Fatal(err)
	}
	if e.State != StateSent {
		t.Errorf("failed publish should stay SENT for retry, got %s", e.State)
	}

	// Next pass succeeds.
	producer.ExpectSendMessageAndSucceed()
	b.DrainOnce()
	e, _ = l.Get("X", 1000)
	if e.State != StateAcked {
		t.Errorf("expected ACKED after retry, got %s", e.State)
	}
	if e.Retries != 2 {
		t.Errorf("expected 2 attempts recorded, got %d", e.Retries)
	}
}
