package kvstore

import (
	"bytes"
	"sort"
	"sync"
)

// Memory is an in-process KV with the same ordering semantics as the
// pebble store. It backs tests and ephemeral runs; nothing survives a
// restart.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
	keys []string // sorted
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Set(key, value []byte) error {
	k := string(key)
	v := make([]byte, len(value))
	copy(v, value)

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.data[k]; !exists {
		i := sort.SearchStrings(m.keys, k)
		m.keys = append(m.keys, "")
		copy(m.keys[i+1:], m.keys[i:])
		m.keys[i] = k
	}
	m.data[k] = v
	return nil
}

func (m *Memory) Get(key []byte) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[string(key)]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *Memory) Delete(key []byte) error {
	k := string(key)
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[k]; !ok {
		return nil
	}
	delete(m.data, k)
	i := sort.SearchStrings(m.keys, k)
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	return nil
}

func (m *Memory) Scan(lower, upper []byte, fn func(key, value []byte) error) error {
	m.mu.RLock()
	// Copy the visible range so fn may call back into the store.
	var pairs [][2][]byte
	for _, k := range m.keys {
		kb := []byte(k)
		if lower != nil && bytes.Compare(kb, lower) < 0 {
			continue
		}
		if upper != nil && bytes.Compare(kb, upper) >= 0 {
			break
		}
		pairs = append(pairs, [2][]byte{kb, m.data[k]})
	}
	m.mu.RUnlock()

	for _, p := range pairs {
		if err := fn(p[0], p[1]); err != nil {
			return err
		}
	}
	return nil
}

func (m *Memory) Close() error { return nil }
