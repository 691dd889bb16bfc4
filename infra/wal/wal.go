// Package wal persists the ingested order stream in a segmented,
// CRC-framed append log. On startup the registry is rebuilt by
// replaying the log, so a crash never loses acknowledged book state
// beyond the unsynced tail.
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
	"strconv"
	"strings"
	"sync"
	"time"

	"mimir/domain/book"
)

const (
	frameHeaderSize = 8
	activeFile      = "current.wal"
)

// Config controls segment rotation and record encoding.
type Config struct {
	Dir             string
	SegmentSize     uint64
	SegmentDuration time.Duration
	Serializer      Serializer
}

func (c *Config) defaults() {
	if c.Dir == "" {
		c.Dir = "./wal_data"
	}
	if c.SegmentSize == 0 {
		c.SegmentSize = 2 * 1024 * 1024
	}
	if c.SegmentDuration == 0 {
		c.SegmentDuration = 5 * time.Minute
	}
	if c.Serializer == nil {
		c.Serializer = BinarySerializer{}
	}
}

// WAL is a segmented order log. A single mutex serializes appends,
// flushes, and rotation, so concurrent gRPC handlers and the sync job
// can share one instance.
type WAL struct {
	mu              sync.Mutex
	cfg             Config
	file            *os.File
	writer          *bufio.Writer
	seq             uint64
	segmentID       int
	segmentStartSeq uint64
	bytesWritten    uint64
	lastRotationAt  time.Time
}

// Open creates or resumes the log in cfg.Dir, recovering a torn tail
// in the active segment by truncating past the last valid frame.
func Open(cfg Config) (*WAL, error) {
	cfg.defaults()
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}

	var segID int
	var seq uint64
	if last, err := lastSegmentEntry(cfg.Dir); err != nil {
		return nil, err
	} else if last != nil {
		id, _ := strconv.Atoi(strings.TrimSuffix(last.File, ".wal"))
		segID = id
		seq = last.LastSeq
	}

	path := filepath.Join(cfg.Dir, activeFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	w := &WAL{
		cfg:             cfg,
		file:            f,
		segmentID:       segID,
		segmentStartSeq: seq + 1,
		seq:             seq,
		lastRotationAt:  time.Now(),
	}
	if err := w.recoverActive(); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := w.file.Seek(0, io.SeekEnd); err != nil {
		f.Close()
		return nil, err
	}
	w.writer = bufio.NewWriterSize(f, 1<<20)
	return w, nil
}

// Append writes one order event and returns its assigned sequence.
func (w *WAL) Append(o book.Order) (uint64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	rec := &Record{Seq: w.seq + 1, Order: o}
	data, err := w.cfg.Serializer.Encode(rec)
	if err != nil {
		return 0, err
	}

	// frame = length(4) + CRC(4) + payload
	recordSize := frameHeaderSize + len(data)
	if w.shouldRotate(recordSize) {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	if err := writeFrame(w.writer, data); err != nil {
		return 0, err
	}
	w.seq++
	w.bytesWritten += uint64(recordSize)
	return w.seq, nil
}

// LastSeq returns the sequence of the most recent append.
func (w *WAL) LastSeq() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.seq
}

// Sync flushes buffered frames and fsyncs the active segment.
func (w *WAL) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sync()
}

func (w *WAL) sync() error {
	if err := w.writer.Flush(); err != nil {
		return err
	}
	return w.file.Sync()
}

// Close finalizes the active segment so a later Open resumes cleanly.
func (w *WAL) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.sync(); err != nil {
		return err
	}
	if err := w.file.Close(); err != nil {
		return err
	}
	if w.bytesWritten == 0 {
		return nil // nothing to finalize
	}
	return w.finalizeSegment()
}

func (w *WAL) shouldRotate(nextSize int) bool {
	if w.bytesWritten == 0 {
		return false
	}
	return w.bytesWritten+uint64(nextSize) >= w.cfg.SegmentSize ||
		time.Since(w.lastRotationAt) >= w.cfg.SegmentDuration
}

// rotate runs under the caller's lock.
func (w *WAL) rotate() error {
	if err := w.sync(); err != nil {
		return err
	}
	if err := w.file.Close(); err != nil {
		return err
	}
	if err := w.finalizeSegment(); err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(w.cfg.Dir, activeFile), os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	w.file = f
	w.writer = bufio.NewWriterSize(f, 1<<20)
	w.segmentStartSeq = w.seq + 1
	w.bytesWritten = 0
	w.lastRotationAt = time.Now()
	return nil
}

// finalizeSegment renames the active file into a numbered segment and
// indexes it. The active file must already be closed.
func (w *WAL) finalizeSegment() error {
	w.segmentID++
	name := fmt.Sprintf("%06d.wal", w.segmentID)
	oldPath := filepath.Join(w.cfg.Dir, activeFile)
	newPath := filepath.Join(w.cfg.Dir, name)
	if err := os.Rename(oldPath, newPath); err != nil {
		return err
	}
	return appendSegmentEntry(w.cfg.Dir, SegmentEntry{
		File:      name,
		FirstSeq:  w.segmentStartSeq,
		LastSeq:   w.seq,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// recoverActive walks the active segment, restoring seq and byte
// counters, and truncates anything after the last intact frame.
func (w *WAL) recoverActive() error {
	info, err := w.file.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return nil
	}

	r, err := os.Open(filepath.Join(w.cfg.Dir, activeFile))
	if err != nil {
		return err
	}
	defer r.Close()

	var (
		validBytes int64
		header     [frameHeaderSize]byte
	)
	for {
		if _, err := io.ReadFull(r, header[:]); err != nil {
			if err == io.EOF {
				break
			}
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return w.truncateActive(validBytes)
			}
			return err
		}
		payloadLen := binary.LittleEndian.Uint32(header[:4])
		payload := make([]byte, payloadLen)
		if _, err := io.ReadFull(r, payload); err != nil {
			if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
				return w.truncateActive(validBytes)
			}
			return err
		}
		if crc32.ChecksumIEEE(payload) != binary.LittleEndian.Uint32(header[4:]) {
			return w.truncateActive(validBytes)
		}
		rec, err := w.cfg.Serializer.Decode(payload)
		if err != nil {
			return w.truncateActive(validBytes)
		}
		w.seq = rec.Seq
		validBytes += int64(frameHeaderSize + len(payload))
	}
	w.bytesWritten = uint64(validBytes)
	return nil
}

func (w *WAL) truncateActive(validBytes int64) error {
	if err := w.file.Truncate(validBytes); err != nil {
		return err
	}
	if _, err := w.file.Seek(validBytes, io.SeekStart); err != nil {
		return err
	}
	w.bytesWritten = uint64(validBytes)
	return nil
}

func writeFrame(wr io.Writer, payload []byte) error {
	var header [frameHeaderSize]byte
	binary.LittleEndian.PutUint32(header[:4], uint32(len(payload)))
	binary.LittleEndian.PutUint32(header[4:], crc32.ChecksumIEEE(payload))
	if _, err := wr.Write(header[:]); err != nil {
		return err
	}
	_, err := wr.Write(payload)
	return err
}
