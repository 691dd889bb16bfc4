// Package broadcaster drains the capture outbox to Kafka. Notices are
// written to the ledger by the capture job once a snapshot is durable;
// the broadcaster retries until the broker confirms, so downstream
// consumers see every capture at least once.
package broadcaster

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/sirupsen/logrus"
)

// Notice is the message announcing one persisted snapshot.
type Notice struct {
	V      int    `json:"v"`
	Symbol string `json:"symbol"`
	Epoch  int64  `json:"epoch"`
}

type Broadcaster struct {
	ledger   *Ledger
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
	log      *logrus.Entry
}

// Connect builds the sarama producer used in production.
func Connect(brokers []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	return sarama.NewSyncProducer(brokers, cfg)
}

func New(
	ledger *Ledger,
	producer sarama.SyncProducer,
	topic string,
	interval time.Duration,
	log *logrus.Logger,
) *Broadcaster {
	return &Broadcaster{
		ledger:   ledger,
		producer: producer,
		topic:    topic,
		interval: interval,
		log:      log.WithField("component", "broadcaster"),
	}
}

// Run drains the outbox on a ticker until ctx is cancelled.
func (b *Broadcaster) Run(ctx context.Context) {
	b.log.Info("started")
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			b.log.Info("stopped")
			return
		case <-ticker.C:
			b.DrainOnce()
			if n, err := b.ledger.PruneAcked(); err != nil {
				b.log.WithError(err).Warn("prune failed")
			} else if n > 0 {
				b.log.WithField("pruned", n).Debug("ledger pruned")
			}
		}
	}
}

// DrainOnce publishes every unacked notice. Failures stay in the
// ledger for the next pass.
func (b *Broadcaster) DrainOnce() {
	err := b.ledger.ScanUnacked(func(e Entry) error {
		if err := b.ledger.MarkSent(e.Symbol, e.Epoch, e.Retries+1); err != nil {
			return err
		}

		value, err := json.Marshal(Notice{V: 1, Symbol: e.Symbol, Epoch: e.Epoch})
		if err != nil {
			return err
		}
		_, _, err = b.producer.SendMessage(&sarama.ProducerMessage{
			Topic: b.topic,
			Key:   sarama.StringEncoder(e.Symbol),
			Value: sarama.ByteEncoder(value),
		})
		if err != nil {
			b.log.WithError(err).WithFields(logrus.Fields{
				"symbol": e.Symbol,
				"epoch":  e.Epoch,
			}).Warn("publish failed, will retry")
			return nil // leave SENT for the next pass
		}

		return b.ledger.MarkAcked(e.Symbol, e.Epoch, e.Retries+1)
	})
	if err != nil {
		b.log.WithError(err).Warn("outbox scan failed")
	}
}

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
