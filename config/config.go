// Package config loads server configuration from a YAML file with
// optional environment overrides for deployment-specific values.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenAddr      string        `yaml:"listen_addr"`
	DataDir         string        `yaml:"data_dir"`
	WALDir          string        `yaml:"wal_dir"`
	WALSegmentSize  uint64        `yaml:"wal_segment_size"`
	WALSyncInterval Duration      `yaml:"wal_sync_interval"`
	CaptureInterval Duration      `yaml:"capture_interval"`
	LogLevel        string        `yaml:"log_level"`

	Kafka KafkaConfig `yaml:"kafka"`
}

type KafkaConfig struct {
	Enabled        bool          `yaml:"enabled"`
	Brokers        []string      `yaml:"brokers"`
	TradeTopic     string        `yaml:"trade_topic"`
	SnapshotTopic  string        `yaml:"snapshot_topic"`
	NotifyInterval Duration      `yaml:"notify_interval"`
}

func defaults() Config {
	return Config{
		ListenAddr:      ":50051",
		DataDir:         "./data/snapshots",
		WALDir:          "./data/wal",
		WALSegmentSize:  2 << 20,
		WALSyncInterval: Duration(time.Second),
		CaptureInterval: Duration(5 * time.Second),
		LogLevel:        "info",
		Kafka: KafkaConfig{
			Enabled:        false,
			Brokers:        []string{"localhost:9092"},
			TradeTopic:     "trade-prints",
			SnapshotTopic:  "snapshot-notices",
			NotifyInterval: Duration(time.Second),
		},
	}
}

// Load reads path (when non-empty) over the built-in defaults, then
// applies environment overrides. A .env file in the working directory
// is loaded first when present.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := defaults()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse yaml: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("MIMIR_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("MIMIR_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("MIMIR_WAL_DIR"); v != "" {
		cfg.WALDir = v
	}
	if v := os.Getenv("MIMIR_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("MIMIR_KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = strings.Split(v, ",")
		cfg.Kafka.Enabled = true
	}
}

func (c Config) validate() error {
	if c.ListenAddr == "" {
		return errors.New("listen_addr must be set")
	}
	if c.DataDir == "" || c.WALDir == "" {
		return errors.New("data_dir and wal_dir must be set")
	}
	if c.WALSegmentSize < 4096 {
		return errors.New("wal_segment_size must be at least 4096")
	}
	if c.CaptureInterval <= 0 {
		return errors.New("capture_interval must be positive")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return errors.New("kafka enabled but no brokers configured")
	}
	return nil
}
