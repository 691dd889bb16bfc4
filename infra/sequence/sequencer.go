package sequence

import "sync/atomic"

// Sequencer hands out strictly monotonic IDs for order events whose
// feed did not carry one. It is replay-safe: after WAL replay it is
// reset past the last replayed sequence so IDs never repeat.
type Sequencer struct {
	next atomic.Uint64
}

// New creates a sequencer that issues IDs starting at start+1.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.next.Store(start)
	return s
}

// Next returns the next ID.
func (s *Sequencer) Next() uint64 {
	return s.next.Add(1)
}

// Current returns the last issued ID.
func (s *Sequencer) Current() uint64 {
	return s.next.Load()
}

// Reset moves the sequencer to a specific value. Only used after replay.
func (s *Sequencer) Reset(v uint64) {
	s.next.Store(v)
}
