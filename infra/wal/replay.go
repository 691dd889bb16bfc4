package wal

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
)

// Replay walks the log in order, finalized segments first and the
// active segment last, invoking fn per record. It returns the last
// sequence seen so the caller can resume sequencing. A torn tail in the
// active segment ends the replay silently; corruption inside a
// finalized segment is an error.
func Replay(dir string, ser Serializer, fn func(*Record) error) (uint64, error) {
	if ser == nil {
		ser = BinarySerializer{}
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return 0, nil
	}

	var lastSeq uint64
	entries, err := loadSegmentIndex(dir)
	if err != nil {
		return 0, err
	}
	for _, e := range entries {
		seq, err := replayFile(filepath.Join(dir, e.File), ser, false, fn)
		if err != nil {
			return lastSeq, fmt.Errorf("segment %s: %w", e.File, err)
		}
		if seq > 0 {
			lastSeq = seq
		}
	}

	seq, err := replayFile(filepath.Join(dir, activeFile), ser, true, fn)
	if err != nil {
		return lastSeq, fmt.Errorf("active segment: %w", err)
	}
	if seq > 0 {
		lastSeq = seq
	}
	return lastSeq, nil
}

func replayFile(path string, ser Serializer, tolerateTail bool, fn func(*Record) error) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	defer f.Close()

	var lastSeq uint64
	r := bufio.NewReaderSize(f, 1<<20)
	var header [frameHeaderSize]byte
	for {
		if _, err := io.ReadFull(r, header[:]); err != nil {
			if err == io.EOF {
				return lastSeq, nil
			}
			if errors.Is(err, io.ErrUnexpectedEOF) && tolerateTail {
				return lastSeq, nil
			}
			return lastSeq, err
		}
		payload := make([]byte, binary.LittleEndian.Uint32(header[:4]))
		if _, err := io.ReadFull(r, payload); err != nil {
			if (err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF)) && tolerateTail {
				return lastSeq, nil
			}
			return lastSeq, err
		}
		if crc32.ChecksumIEEE(payload) != binary.LittleEndian.Uint32(header[4:]) {
			if tolerateTail {
				return lastSeq, nil
			}
			return lastSeq, ErrCorruptRecord
		}

		rec, err := ser.Decode(payload)
		if err != nil {
			return lastSeq, err
		}
		if err := fn(rec); err != nil {
			return lastSeq, err
		}
		lastSeq = rec.Seq
	}
}
