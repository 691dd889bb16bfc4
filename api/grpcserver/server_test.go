package grpcserver

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"mimir/api/pb"
	"mimir/domain/book"
	"mimir/infra/kvstore"
	"mimir/infra/sequence"
	"mimir/infra/wal"
	"mimir/jobs/capture"
	"mimir/query"
	"mimir/service"
	"mimir/snapshot"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	log := quietLogger()
	w, err := wal.Open(wal.Config{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("open wal: %v", err)
	}
	t.Cleanup(func() { w.Close() })

	reg := book.NewBookRegistry()
	kv := kvstore.NewMemory()
	store := snapshot.NewStore(kv, log)

	ingest := service.NewIngestService(reg, w, sequence.New(0), nil, log)
	engine := query.NewEngine(store, log)
	job := capture.New(store, reg, nil, time.Second, log)

	return NewServer(ingest, engine, job, log)
}

func submit(t *testing.T, s *Server, ev *pb.OrderEvent) {
	t.Helper()
	if _, err := s.SubmitEvent(context.Background(), &pb.SubmitRequest{Event: ev}); err != nil {
		t.Fatalf("submit %v: %v", ev, err)
	}
}

func TestSubmitCaptureQueryRoundTrip(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	submit(t, s, &pb.OrderEvent{
		Epoch: 1, Symbol: "AAPL", Side: pb.Side_SIDE_BID,
		Category: pb.Category_CATEGORY_NEW, Price: "101.50", Qty: 10,
	})
	submit(t, s, &pb.OrderEvent{
		Epoch: 2, Symbol: "AAPL", Side: pb.Side_SIDE_ASK,
		Category: pb.Category_CATEGORY_NEW, Price: "102.25", Qty: 4,
	})

	capResp, err := s.CaptureNow(ctx, &pb.CaptureRequest{})
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if len(capResp.Symbols) != 1 || capResp.Symbols[0] != "AAPL" {
		t.Fatalf("captured %v, want [AAPL]", capResp.Symbols)
	}

	qResp, err := s.Query(ctx, &pb.QueryRequest{
		From: 0, To: capResp.Epoch, Symbols: []string{"AAPL"},
	})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(qResp.Snapshots) != 1 {
		t.Fatalf("snapshots = %d, want 1", len(qResp.Snapshots))
	}
	snap := qResp.Snapshots[0]
	if snap.Epoch != capResp.Epoch {
		t.Fatalf("epoch = %d, want %d", snap.Epoch, capResp.Epoch)
	}
	if len(snap.Bids) != 1 || snap.Bids[0].Price != "101.5" {
		t.Fatalf("bids = %v", snap.Bids)
	}
	if len(snap.Asks) != 1 || snap.Asks[0].Qty != 4 {
		t.Fatalf("asks = %v", snap.Asks)
	}
	if snap.HasLastTrade {
		t.Fatal("no trade happened, has_last_trade should be false")
	}
}

func TestWireCodecRoundTrip(t *testing.T) {
	in := &pb.SubmitRequest{
		Event: &pb.OrderEvent{
			Epoch:    1700000000000,
			Id:       42,
			Symbol:   "AAPL",
			Side:     pb.Side_SIDE_ASK,
			Category: pb.Category_CATEGORY_TRADE,
			Price:    "101.25",
			Qty:      7,
		},
	}

	raw, err := proto.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := &pb.SubmitRequest{}
	if err := proto.Unmarshal(raw, out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !proto.Equal(in, out) {
		t.Fatalf("round trip mismatch:\n in=%v\nout=%v", in, out)
	}
	if got := out.GetEvent().GetSide().String(); got != "SIDE_ASK" {
		t.Fatalf("enum name = %q, want SIDE_ASK", got)
	}
}

func TestSubmitRejectsBadInput(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	cases := []struct {
		name string
		ev   *pb.OrderEvent
		code codes.Code
	}{
		{
			name: "bad price",
			ev: &pb.OrderEvent{
				Epoch: 1, Symbol: "X", Category: pb.Category_CATEGORY_NEW,
				Price: "not-a-number", Qty: 1,
			},
			code: codes.InvalidArgument,
		},
		{
			name: "zero quantity",
			ev: &pb.OrderEvent{
				Epoch: 1, Symbol: "X", Category: pb.Category_CATEGORY_NEW,
				Price: "10", Qty: 0,
			},
			code: codes.InvalidArgument,
		},
		{
			name: "cancel on unseen symbol",
			ev: &pb.OrderEvent{
				Epoch: 1, Symbol: "GHOST", Category: pb.Category_CATEGORY_CANCEL,
				Price: "10", Qty: 1,
			},
			code: codes.NotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.SubmitEvent(ctx, &pb.SubmitRequest{Event: tc.ev})
			if status.Code(err) != tc.code {
				t.Fatalf("code = %v, want %v (err %v)", status.Code(err), tc.code, err)
			}
		})
	}

	if _, err := s.SubmitEvent(ctx, &pb.SubmitRequest{}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("missing event: code = %v", status.Code(err))
	}
}

func TestQueryFieldProjectionAndErrors(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	submit(t, s, &pb.OrderEvent{
		Epoch: 1, Symbol: "MSFT", Side: pb.Side_SIDE_BID,
		Category: pb.Category_CATEGORY_NEW, Price: "300", Qty: 5,
	})
	capResp, err := s.CaptureNow(ctx, &pb.CaptureRequest{})
	if err != nil {
		t.Fatalf("capture: %v", err)
	}

	resp, err := s.Query(ctx, &pb.QueryRequest{
		From: 0, To: capResp.Epoch,
		Fields: []string{"symbol", "epoch"},
	})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(resp.Snapshots) != 1 {
		t.Fatalf("snapshots = %d", len(resp.Snapshots))
	}
	if len(resp.Snapshots[0].Bids) != 0 {
		t.Fatal("bids should be omitted when not requested")
	}

	_, err = s.Query(ctx, &pb.QueryRequest{From: 10, To: 5})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("inverted range: code = %v", status.Code(err))
	}

	_, err = s.Query(ctx, &pb.QueryRequest{From: 0, To: 10, Fields: []string{"bogus"}})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("bad field: code = %v", status.Code(err))
	}

	_, err = s.Query(ctx, &pb.QueryRequest{From: 0, To: 10, Symbols: []string{"NOPE"}})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("unknown symbol: code = %v", status.Code(err))
	}
}
