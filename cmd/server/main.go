package main

import (
	"context"
	"flag"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"mimir/api/grpcserver"
	"mimir/api/pb"
	"mimir/config"
	"mimir/domain/book"
	"mimir/infra/kafka"
	"mimir/infra/kvstore"
	"mimir/infra/sequence"
	"mimir/infra/wal"
	"mimir/jobs/broadcaster"
	"mimir/jobs/capture"
	"mimir/query"
	"mimir/service"
	"mimir/snapshot"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatalf("config load failed: %v", err)
	}

	log := newLogger(cfg.LogLevel)

	// ---------------- Snapshot storage ----------------

	kv, err := kvstore.OpenPebble(cfg.DataDir)
	if err != nil {
		log.Fatalf("snapshot store init failed: %v", err)
	}
	defer kv.Close()

	store := snapshot.NewStore(kv, log)
	if err := store.Rebuild(); err != nil {
		log.Fatalf("snapshot index rebuild failed: %v", err)
	}

	// ---------------- WAL ----------------

	w, err := wal.Open(wal.Config{
		Dir:         cfg.WALDir,
		SegmentSize: cfg.WALSegmentSize,
	})
	if err != nil {
		log.Fatalf("wal init failed: %v", err)
	}
	defer w.Close()

	// ---------------- Sequencer ----------------

	seqGen := sequence.New(0)

	// ---------------- Domain ----------------

	registry := book.NewBookRegistry()

	// ---------------- WAL REPLAY ----------------

	if err := service.ReplayFromWAL(cfg.WALDir, wal.BinarySerializer{}, registry, seqGen, log); err != nil {
		log.Fatalf("wal replay failed: %v", err)
	}

	// ---------------- Kafka ----------------

	var trades *kafka.Producer
	if cfg.Kafka.Enabled {
		trades = kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TradeTopic)
		defer trades.Close()
	}

	// ---------------- Service ----------------

	ingest := service.NewIngestService(registry, w, seqGen, trades, log)
	engine := query.NewEngine(store, log)

	// ---------------- Background Jobs ----------------

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ingest.StartSyncJob(ctx, cfg.WALSyncInterval.Std())

	var ledger *broadcaster.Ledger
	if cfg.Kafka.Enabled {
		ledger = broadcaster.NewLedger(kv)

		producer, err := broadcaster.Connect(cfg.Kafka.Brokers)
		if err != nil {
			log.Fatalf("kafka connect failed: %v", err)
		}

		bc := broadcaster.New(ledger, producer, cfg.Kafka.SnapshotTopic, cfg.Kafka.NotifyInterval.Std(), log)
		defer bc.Close()
		go bc.Run(ctx)
	}

	job := capture.New(store, registry, ledger, cfg.CaptureInterval.Std(), log)
	go job.Run(ctx)

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		log.Fatalf("listen failed: %v", err)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterMarketDataServer(grpcSrv, grpcserver.NewServer(ingest, engine, job, log))

	go func() {
		<-ctx.Done()
		grpcSrv.GracefulStop()
	}()

	log.WithField("addr", cfg.ListenAddr).Info("mimir serving")

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("grpc server exited: %v", err)
	}
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	switch strings.ToLower(level) {
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
