package wal

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"mimir/domain/book"
)

// Record is one order event as appended to the log. Seq is assigned by
// the WAL at append time and is strictly monotonic across segments.
type Record struct {
	Seq   uint64
	Order book.Order
}

// Serializer encodes records into frame payloads and back.
type Serializer interface {
	Encode(*Record) ([]byte, error)
	Decode([]byte) (*Record, error)
}

var ErrCorruptRecord = errors.New("wal: corrupted record")

// BinarySerializer is the default little-endian record encoding.
// Prices travel as decimal strings to keep the log exact.
type BinarySerializer struct{}

func (BinarySerializer) Encode(rec *Record) ([]byte, error) {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, rec.Seq)
	binary.Write(buf, binary.LittleEndian, rec.Order.Epoch)
	binary.Write(buf, binary.LittleEndian, rec.Order.ID)
	buf.WriteByte(byte(rec.Order.Side))
	buf.WriteByte(byte(rec.Order.Category))
	binary.Write(buf, binary.LittleEndian, rec.Order.Qty)

	price := rec.Order.Price.String()
	binary.Write(buf, binary.LittleEndian, uint16(len(price)))
	buf.WriteString(price)

	sym := rec.Order.Symbol
	if len(sym) > 0xffff {
		return nil, fmt.Errorf("symbol too long: %d bytes", len(sym))
	}
	binary.Write(buf, binary.LittleEndian, uint16(len(sym)))
	buf.WriteString(sym)
	return buf.Bytes(), nil
}

func (BinarySerializer) Decode(data []byte) (*Record, error) {
	r := bytes.NewReader(data)
	rec := &Record{}

	if err := binary.Read(r, binary.LittleEndian, &rec.Seq); err != nil {
		return nil, corrupt(err)
	}
	if err := binary.Read(r, binary.LittleEndian, &rec.Order.Epoch); err != nil {
		return nil, corrupt(err)
	}
	if err := binary.Read(r, binary.LittleEndian, &rec.Order.ID); err != nil {
		return nil, corrupt(err)
	}
	side, err := r.ReadByte()
	if err != nil {
		return nil, corrupt(err)
	}
	rec.Order.Side = book.Side(side)
	cat, err := r.ReadByte()
	if err != nil {
		return nil, corrupt(err)
	}
	rec.Order.Category = book.Category(cat)
	if err := binary.Read(r, binary.LittleEndian, &rec.Order.Qty); err != nil {
		return nil, corrupt(err)
	}

	rawPrice, err := readString(r)
	if err != nil {
		return nil, err
	}
	if rec.Order.Price, err = decimal.NewFromString(rawPrice); err != nil {
		return nil, corrupt(err)
	}
	if rec.Order.Symbol, err = readString(r); err != nil {
		return nil, err
	}
	return rec, nil
}

func readString(r *bytes.Reader) (string, error) {
	var n uint16
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", corrupt(err)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", corrupt(err)
	}
	return string(b), nil
}

func corrupt(err error) error {
	return fmt.Errorf("%v: %w", err, ErrCorruptRecord)
}
