package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/shopspring/decimal"

	"mimir/domain/book"
)

// Codec turns snapshots into storable bytes and back.
type Codec interface {
	Encode(*Snapshot) ([]byte, error)
	Decode([]byte) (*Snapshot, error)
}

var ErrCorruptSnapshot = errors.New("snapshot: corrupted record")

const codecVersion = 1

// BinaryCodec is the default codec: a little-endian binary frame with a
// trailing CRC32. Prices travel as decimal strings, so no precision is
// lost across the store boundary.
//
// Layout: [version:1][body...][crc32(version+body):4]
type BinaryCodec struct{}

func (BinaryCodec) Encode(s *Snapshot) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteByte(codecVersion)

	writeString(buf, s.Symbol)
	binary.Write(buf, binary.LittleEndian, s.Epoch)

	if s.HasLastTrade {
		buf.WriteByte(1)
		writeString(buf, s.LastTradePrice.String())
		binary.Write(buf, binary.LittleEndian, s.LastTradeQty)
	} else {
		buf.WriteByte(0)
	}

	if err := writeLevels(buf, s.Bids); err != nil {
		return nil, err
	}
	if err := writeLevels(buf, s.Asks); err != nil {
		return nil, err
	}

	sum := crc32.ChecksumIEEE(buf.Bytes())
	binary.Write(buf, binary.LittleEndian, sum)
	return buf.Bytes(), nil
}

func (BinaryCodec) Decode(data []byte) (*Snapshot, error) {
	if len(data) < 5 {
		return nil, ErrCorruptSnapshot
	}
	body, tail := data[:len(data)-4], data[len(data)-4:]
	if crc32.ChecksumIEEE(body) != binary.LittleEndian.Uint32(tail) {
		return nil, fmt.Errorf("crc mismatch: %w", ErrCorruptSnapshot)
	}

	r := bytes.NewReader(body)
	version, _ := r.ReadByte()
	if version != codecVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d: %w", version, ErrCorruptSnapshot)
	}

	s := &Snapshot{}
	var err error
	if s.Symbol, err = readString(r); err != nil {
		return nil, err
	}
	if err = binary.Read(r, binary.LittleEndian, &s.Epoch); err != nil {
		return nil, corrupt(err)
	}

	flag, err := r.ReadByte()
	if err != nil {
		return nil, corrupt(err)
	}
	if flag == 1 {
		raw, err := readString(r)
		if err != nil {
			return nil, err
		}
		if s.LastTradePrice, err = decimal.NewFromString(raw); err != nil {
			return nil, corrupt(err)
		}
		if err = binary.Read(r, binary.LittleEndian, &s.LastTradeQty); err != nil {
			return nil, corrupt(err)
		}
		s.HasLastTrade = true
	}

	if s.Bids, err = readLevels(r); err != nil {
		return nil, err
	}
	if s.Asks, err = readLevels(r); err != nil {
		return nil, err
	}
	return s, nil
}

func writeLevels(buf *bytes.Buffer, levels []book.PriceLevel) error {
	if len(levels) > 255 {
		return fmt.Errorf("too many levels: %d", len(levels))
	}
	buf.WriteByte(byte(len(levels)))
	for _, lvl := range levels {
		writeString(buf, lvl.Price.String())
		binary.Write(buf, binary.LittleEndian, lvl.Qty)
	}
	return nil
}

func readLevels(r *bytes.Reader) ([]book.PriceLevel, error) {
	n, err := r.ReadByte()
	if err != nil {
		return nil, corrupt(err)
	}
	levels := make([]book.PriceLevel, 0, n)
	for i := 0; i < int(n); i++ {
		raw, err := readString(r)
		if err != nil {
			return nil, err
		}
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, corrupt(err)
		}
		var qty int64
		if err := binary.Read(r, binary.LittleEndian, &qty); err != nil {
			return nil, corrupt(err)
		}
		levels = append(levels, book.PriceLevel{Price: price, Qty: qty})
	}
	return levels, nil
}

func writeString(buf *bytes.Buffer, s string) {
	binary.Write(buf, binary.LittleEndian, uint16(len(s)))
	buf.WriteString(s)
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
	return fmt.Errorf("%v: %w", err, ErrCorruptSnapshot)
}
