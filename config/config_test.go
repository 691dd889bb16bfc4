package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"mimir/infra/wal"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ListenAddr != ":50051" {
		t.Fatalf("listen addr = %q", cfg.ListenAddr)
	}
	if cfg.CaptureInterval.Std() != 5*time.Second {
		t.Fatalf("capture interval = %v", cfg.CaptureInterval)
	}
	if cfg.Kafka.Enabled {
		t.Fatal("kafka should default to disabled")
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
listen_addr: ":7000"
capture_interval: 2s
kafka:
  enabled: true
  brokers: ["k1:9092"]
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	t.Setenv("MIMIR_LISTEN_ADDR", ":8000")
	t.Setenv("MIMIR_KAFKA_BROKERS", "k2:9092,k3:9092")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ListenAddr != ":8000" {
		t.Fatalf("env override lost, listen addr = %q", cfg.ListenAddr)
	}
	if cfg.CaptureInterval.Std() != 2*time.Second {
		t.Fatalf("capture interval = %v", cfg.CaptureInterval)
	}
	if len(cfg.Kafka.Brokers) != 2 {
		t.Fatalf("brokers = %v", cfg.Kafka.Brokers)
	}
}

func TestSegmentSizeFeedsWAL(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	w, err := wal.Open(wal.Config{
		Dir:         t.TempDir(),
		SegmentSize: cfg.WALSegmentSize,
	})
	if err != nil {
		t.Fatalf("open wal with configured segment size: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: loud\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}
