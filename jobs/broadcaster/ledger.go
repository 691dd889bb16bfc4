package broadcaster

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"mimir/infra/kvstore"
)

// State tracks a capture notice through the outbox.
type State uint8

const (
	StateNew State = iota
	StateSent
	StateAcked
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateSent:
		return "SENT"
	case StateAcked:
		return "ACKED"
	default:
		return "UNKNOWN"
	}
}

// Entry is one outbox record. A capture notice is NEW once the snapshot
// is durable, SENT after a publish attempt, ACKED once the broker
// confirmed it.
type Entry struct {
	Symbol      string
	Epoch       int64
	State       State
	Retries     uint32
	LastAttempt int64
}

const ledgerPrefix = "pub/"

// binary encoding: [state:1][retries:4][lastAttempt:8]
func encodeEntry(e Entry) []byte {
	buf := make([]byte, 1+4+8)
	buf[0] = byte(e.State)
	binary.BigEndian.PutUint32(buf[1:5], e.Retries)
	binary.BigEndian.PutUint64(buf[5:13], uint64(e.LastAttempt))
	return buf
}

func decodeEntry(b []byte) (Entry, error) {
	if len(b) != 13 {
		return Entry{}, errors.New("invalid ledger entry length")
	}
	return Entry{
		State:       State(b[0]),
		Retries:     binary.BigEndian.Uint32(b[1:5]),
		LastAttempt: int64(binary.BigEndian.Uint64(b[5:13])),
	}, nil
}

func ledgerKey(symbol string, epoch int64) []byte {
	return []byte(fmt.Sprintf("%s%s/%020d", ledgerPrefix, symbol, epoch))
}

func parseLedgerKey(key []byte) (symbol string, epoch int64, err error) {
	rest, ok := strings.CutPrefix(string(key), ledgerPrefix)
	if !ok {
		return "", 0, fmt.Errorf("unexpected ledger key %q", key)
	}
	sym, raw, ok := strings.Cut(rest, "/")
	if !ok {
		return "", 0, fmt.Errorf("unexpected ledger key %q", key)
	}
	epoch, err = strconv.ParseInt(raw, 10, 64)
	return sym, epoch, err
}

// Ledger is the durable publish outbox. It shares the snapshot KV so a
// capture and its pending notice survive restarts together.
type Ledger struct {
	kv kvstore.KV
}

func NewLedger(kv kvstore.KV) *Ledger {
	return &Ledger{kv: kv}
}

// MarkNew records a freshly captured (symbol, epoch) for publication.
func (l *Ledger) MarkNew(symbol string, epoch int64) error {
	return l.kv.Set(ledgerKey(symbol, epoch), encodeEntry(Entry{State: StateNew}))
}

func (l *Ledger) mark(symbol string, epoch int64, state State, retries uint32) error {
	return l.kv.Set(ledgerKey(symbol, epoch), encodeEntry(Entry{
		State:       state,
		Retries:     retries,
		LastAttempt: time.Now().UnixNano(),
	}))
}

// MarkSent flags a publish attempt before it goes out, so a crash
// between send and ack still retries (at-least-once).
func (l *Ledger) MarkSent(symbol string, epoch int64, retries uint32) error {
	return l.mark(symbol, epoch, StateSent, retries)
}

func (l *Ledger) MarkAcked(symbol string, epoch int64, retries uint32) error {
	return l.mark(symbol, epoch, StateAcked, retries)
}

// Get returns the current entry for (symbol, epoch).
func (l *Ledger) Get(symbol string, epoch int64) (Entry, error) {
	val, err := l.kv.Get(ledgerKey(symbol, epoch))
	if err != nil {
		return Entry{}, err
	}
	e, err := decodeEntry(val)
	if err != nil {
		return Entry{}, err
	}
	e.Symbol, e.Epoch = symbol, epoch
	return e, nil
}

// ScanUnacked visits every entry still awaiting broker confirmation
// (NEW or SENT), in key order.
func (l *Ledger) ScanUnacked(fn func(Entry) error) error {
	prefix := []byte(ledgerPrefix)
	return l.kv.Scan(prefix, kvstore.PrefixUpperBound(prefix), func(key, val []byte) error {
		e, err := decodeEntry(val)
		if err != nil {
			return err
		}
		if e.State == StateAcked {
			return nil
		}
		if e.Symbol, e.Epoch, err = parseLedgerKey(key); err != nil {
			return err
		}
		return fn(e)
	})
}

// PruneAcked deletes confirmed entries; called periodically as GC.
func (l *Ledger) PruneAcked() (int, error) {
	prefix := []byte(ledgerPrefix)
	var acked [][]byte
	err := l.kv.Scan(prefix, kvstore.PrefixUpperBound(prefix), func(key, val []byte) error {
		e, err := decodeEntry(val)
		if err != nil {
			return err
		}
		if e.State == StateAcked {
			k := make([]byte, len(key))
			copy(k, key)
			acked = append(acked, k)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	for _, k := range acked {
		if err := l.kv.Delete(k); err != nil {
			return 0, err
		}
	}
	return len(acked), nil
}
