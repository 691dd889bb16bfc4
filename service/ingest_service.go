package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"mimir/domain/book"
	"mimir/infra/kafka"
	"mimir/infra/sequence"
	"mimir/infra/wal"
)

/*
IngestService is the only write entry point into the system.

All coordination between:
- domain (book)
- infra (wal, kafka)
happens here.
*/

type IngestService struct {
	registry *book.BookRegistry
	wal      *wal.WAL
	seqGen   *sequence.Sequencer
	trades   *kafka.Producer
	log      *logrus.Entry
}

// NewIngestService wires all dependencies.
// trades may be nil when trade publishing is disabled.
func NewIngestService(
	reg *book.BookRegistry,
	w *wal.WAL,
	seqGen *sequence.Sequencer,
	trades *kafka.Producer,
	log *logrus.Logger,
) *IngestService {
	return &IngestService{
		registry: reg,
		wal:      w,
		seqGen:   seqGen,
		trades:   trades,
		log:      log.WithField("component", "ingest"),
	}
}

// Ingest persists an event to the WAL and applies it to the owning book.
// It returns the WAL sequence assigned to the event.
//
// The WAL write happens before the in-memory mutation so that a crash
// between the two replays the event instead of losing it. Apply errors
// after a durable append are reported to the caller but intentionally
// not rolled back from the log; replay re-derives the same rejection.
func (s *IngestService) Ingest(ctx context.Context, o book.Order) (uint64, error) {
	if o.ID == 0 {
		o.ID = s.seqGen.Next()
	}

	seq, err := s.wal.Append(o)
	if err != nil {
		return 0, err
	}

	if err := s.registry.Route(o); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"symbol": o.Symbol,
			"seq":    seq,
		}).Debug("event rejected")
		return seq, err
	}

	if o.Category == book.Trade && s.trades != nil {
		print := kafka.TradePrint{
			Symbol: o.Symbol,
			Epoch:  o.Epoch,
			Price:  o.Price,
			Qty:    o.Qty,
		}
		if err := s.trades.SendTrade(ctx, print); err != nil {
			// Trade prints are advisory; the book mutation stands.
			s.log.WithError(err).WithField("symbol", o.Symbol).Warn("trade print failed")
		}
	}

	return seq, nil
}

// StartSyncJob flushes the WAL to disk on a fixed interval until ctx is
// cancelled. A final sync runs on shutdown.
func (s *IngestService) StartSyncJob(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				if err := s.wal.Sync(); err != nil {
					s.log.WithError(err).Warn("final wal sync failed")
				}
				return
			case <-t.C:
				if err := s.wal.Sync(); err != nil {
					s.log.WithError(err).Warn("wal sync failed")
				}
			}
		}
	}()
}
