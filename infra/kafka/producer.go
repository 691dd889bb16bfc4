// Package kafka wraps the segmentio/kafka-go writer used for the
// trade-print feed.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// TradePrint is the message published for every applied TRADE event.
type TradePrint struct {
	Symbol string          `json:"symbol"`
	Epoch  int64           `json:"epoch"`
	Price  decimal.Decimal `json:"price"`
	Qty    int64           `json:"qty"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

// SendTrade publishes one trade print keyed by symbol, so per-symbol
// ordering survives partitioning.
func (p *Producer) SendTrade(ctx context.Context, tp TradePrint) error {
	value, err := json.Marshal(tp)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(tp.Symbol),
		Value: value,
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
