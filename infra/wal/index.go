package wal

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

// SegmentEntry describes one finalized WAL segment.
type SegmentEntry struct {
	File      string `json:"file"`
	FirstSeq  uint64 `json:"first_seq"`
	LastSeq   uint64 `json:"last_seq"`
	Timestamp string `json:"timestamp"`
}

const indexFile = "segments.json"

// appendSegmentEntry adds one segment entry to the JSON-lines index.
func appendSegmentEntry(dir string, entry SegmentEntry) error {
	path := filepath.Join(dir, indexFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	_, err = f.Write(append(data, '\n'))
	return err
}

// loadSegmentIndex reads all segment entries. A missing index file
// means no finalized segments yet.
func loadSegmentIndex(dir string) ([]SegmentEntry, error) {
	b, err := os.ReadFile(filepath.Join(dir, indexFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []SegmentEntry
	for _, line := range bytes.Split(b, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var e SegmentEntry
		if err := json.Unmarshal(line, &e); err == nil {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// lastSegmentEntry returns the newest segment entry, if any.
func lastSegmentEntry(dir string) (*SegmentEntry, error) {
	entries, err := loadSegmentIndex(dir)
	if err != nil || len(entries) == 0 {
		return nil, err
	}
	return &entries[len(entries)-1], nil
}
