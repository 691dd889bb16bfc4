// Package capture runs the periodic snapshot capture job. On every tick
// it freezes the top levels of every live book at a wall-clock epoch and
// records an outbox notice for each symbol that was captured.
package capture

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"mimir/domain/book"
	"mimir/jobs/broadcaster"
	"mimir/snapshot"
)

// Job periodically captures snapshots of all registered books.
type Job struct {
	store    *snapshot.Store
	registry *book.BookRegistry
	ledger   *broadcaster.Ledger
	interval time.Duration
	now      func() time.Time
	log      *logrus.Entry
}

// New builds a capture job. ledger may be nil when downstream
// notification is disabled.
func New(store *snapshot.Store, reg *book.BookRegistry, ledger *broadcaster.Ledger, interval time.Duration, log *logrus.Logger) *Job {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Job{
		store:    store,
		registry: reg,
		ledger:   ledger,
		interval: interval,
		now:      time.Now,
		log:      log.WithField("component", "capture"),
	}
}

// Run blocks until ctx is cancelled, capturing on every tick.
func (j *Job) Run(ctx context.Context) error {
	t := time.NewTicker(j.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			j.CaptureOnce()
		}
	}
}

// CaptureOnce performs a single capture pass at the current wall clock.
// Per-symbol failures are logged and do not abort the pass. It returns
// the epoch used and the symbols that were captured.
func (j *Job) CaptureOnce() (int64, []string) {
	epoch := j.now().UnixMilli()

	captured, err := j.store.Capture(epoch, j.registry)
	if err != nil {
		j.log.WithError(err).WithField("epoch", epoch).Warn("partial capture")
	}
	if len(captured) == 0 {
		return epoch, nil
	}

	if j.ledger != nil {
		for _, sym := range captured {
			if err := j.ledger.MarkNew(sym, epoch); err != nil {
				j.log.WithError(err).WithFields(logrus.Fields{
					"symbol": sym,
					"epoch":  epoch,
				}).Warn("outbox notice failed")
			}
		}
	}

	j.log.WithFields(logrus.Fields{
		"epoch":   epoch,
		"symbols": len(captured),
	}).Debug("capture pass complete")
	return epoch, captured
}
