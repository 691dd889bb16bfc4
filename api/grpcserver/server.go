// Package grpcserver adapts the ingest service, query engine, and
// capture job to the MarketData gRPC surface.
package grpcserver

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mimir/api/pb"
	"mimir/domain/book"
	"mimir/jobs/capture"
	"mimir/query"
	"mimir/service"
	"mimir/snapshot"
)

type Server struct {
	pb.UnimplementedMarketDataServer
	ingest  *service.IngestService
	engine  *query.Engine
	capture *capture.Job
	log     *logrus.Entry
}

func NewServer(ingest *service.IngestService, engine *query.Engine, job *capture.Job, log *logrus.Logger) *Server {
	return &Server{
		ingest:  ingest,
		engine:  engine,
		capture: job,
		log:     log.WithField("component", "grpc"),
	}
}

// -------------------- Commands --------------------

func (s *Server) SubmitEvent(ctx context.Context, req *pb.SubmitRequest) (*pb.SubmitResponse, error) {
	ev := req.GetEvent()
	if ev == nil {
		return nil, status.Error(codes.InvalidArgument, "event is required")
	}

	o, err := toOrder(ev)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	seq, err := s.ingest.Ingest(ctx, o)
	if err != nil {
		return nil, toStatus(err)
	}

	s.log.WithFields(logrus.Fields{
		"symbol":   o.Symbol,
		"category": o.Category,
		"seq":      seq,
	}).Debug("event accepted")

	return &pb.SubmitResponse{Seq: seq}, nil
}

func (s *Server) CaptureNow(ctx context.Context, req *pb.CaptureRequest) (*pb.CaptureResponse, error) {
	epoch, symbols := s.capture.CaptureOnce()
	return &pb.CaptureResponse{
		Epoch:   epoch,
		Symbols: symbols,
	}, nil
}

// -------------------- Queries --------------------

func (s *Server) Query(ctx context.Context, req *pb.QueryRequest) (*pb.QueryResponse, error) {
	fields, err := toFieldSet(req.GetFields())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	tr := query.TimeRange{From: req.GetFrom(), To: req.GetTo()}
	results, err := s.engine.Query(ctx, tr, req.GetSymbols(), fields)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &pb.QueryResponse{
		Snapshots: make([]*pb.Snapshot, 0, len(results)),
	}
	for _, r := range results {
		resp.Snapshots = append(resp.Snapshots, fromProjected(r))
	}
	return resp, nil
}

// -------------------- Converters --------------------

func toOrder(ev *pb.OrderEvent) (book.Order, error) {
	price, err := decimal.NewFromString(ev.GetPrice())
	if err != nil {
		return book.Order{}, err
	}
	return book.Order{
		Epoch:    ev.GetEpoch(),
		ID:       ev.GetId(),
		Symbol:   ev.GetSymbol(),
		Side:     toSide(ev.GetSide()),
		Category: toCategory(ev.GetCategory()),
		Price:    price,
		Qty:      ev.GetQty(),
	}, nil
}

func toSide(s pb.Side) book.Side {
	if s == pb.Side_SIDE_ASK {
		return book.Ask
	}
	return book.Bid
}

func toCategory(c pb.Category) book.Category {
	switch c {
	case pb.Category_CATEGORY_CANCEL:
		return book.Cancel
	case pb.Category_CATEGORY_TRADE:
		return book.Trade
	default:
		return book.New
	}
}

func toFieldSet(names []string) (query.FieldSet, error) {
	if len(names) == 0 {
		return query.AllFields, nil
	}
	parsed := make([]query.Field, 0, len(names))
	for _, n := range names {
		f, err := query.ParseField(n)
		if err != nil {
			return 0, err
		}
		parsed = append(parsed, f)
	}
	return query.NewFieldSet(parsed...), nil
}

func fromProjected(r query.ProjectedSnapshot) *pb.Snapshot {
	out := &pb.Snapshot{
		Symbol: r.Symbol,
		Epoch:  r.Epoch,
		Bids:   fromLevels(r.Bids),
		Asks:   fromLevels(r.Asks),
	}
	if r.LastTradePrice != nil {
		out.LastTradePrice = r.LastTradePrice.String()
		out.HasLastTrade = true
	}
	if r.LastTradeQty != nil {
		out.LastTradeQty = *r.LastTradeQty
	}
	return out
}

func fromLevels(levels []book.PriceLevel) []*pb.PriceLevel {
	if len(levels) == 0 {
		return nil
	}
	out := make([]*pb.PriceLevel, 0, len(levels))
	for _, l := range levels {
		out = append(out, &pb.PriceLevel{
			Price: l.Price.String(),
			Qty:   l.Qty,
		})
	}
	return out
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, query.ErrInvalidRange),
		errors.Is(err, book.ErrInvalidQuantity),
		errors.Is(err, book.ErrInvalidPrice):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, query.ErrUnknownSymbol),
		errors.Is(err, book.ErrUnknownSymbol),
		errors.Is(err, snapshot.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, book.ErrInvalidCancel),
		errors.Is(err, book.ErrInconsistentTrade):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
