package stockwatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/rakapradana/go-bookshop/internal/events"
	kafkax "github.com/rakapradana/go-bookshop/internal/kafka"
	"github.com/rakapradana/go-bookshop/internal/logx"
	"github.com/rakapradana/go-bookshop/internal/redisx"
)

// Service re-checks stock for every book touched by a placed order and
// flags the ones at or below the threshold.
type Service struct {
	DB          *pgxpool.Pool
	Redis       *redis.Client
	Producer    *kafkax.Producer // publishes stock.low
	ServiceName string
	Threshold   int
}

func (s *Service) HandleOrderPlaced(ctx context.Context, m kafkago.Message) error {
	var env events.Envelope
	if err := kafkax.UnmarshalEnvelope(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != events.EventOrderPlaced {
		return nil
	}

	// dedup by event_id so redeliveries don't re-alert
	dkey := fmt.Sprintf(redisx.KeyDedup, "stockwatch", env.EventID)
	if exists, _ := redisx.Exists(ctx, s.Redis, dkey); exists {
		return nil
	}
	_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()

	p, err := kafkax.UnwrapPayload[events.OrderPlacedPayload](env.Payload)
	if err != nil {
		return err
	}

	for _, it := range p.Items {
		title, stock, err := s.bookStock(ctx, it.BookID)
		if errors.Is(err, pgx.ErrNoRows) {
			continue
		}
		if err != nil {
			return err
		}
		if stock > s.Threshold {
			continue
		}

		logx.L.Warnf("low stock: book=%s title=%q remaining=%d threshold=%d",
			it.BookID, title, stock, s.Threshold)
		akey := fmt.Sprintf(redisx.KeyLowStock, it.BookID)
		_ = s.Redis.Set(ctx, akey, stock, redisx.TTLLowStock).Err()
		s.publishStockLow(it.BookID, title, stock, env.TraceID, p.OrderID)
	}
	return nil
}

func (s *Service) bookStock(ctx context.Context, bookID string) (string, int, error) {
	var title string
	var stock int
	err := s.DB.QueryRow(ctx,
		`SELECT title, stock_quantity FROM books WHERE id=$1`, bookID).Scan(&title, &stock)
	return title, stock, err
}

func (s *Service) publishStockLow(bookID, title string, remaining int, trace, orderID string) {
	if s.Producer == nil {
		return
	}
	ev := events.Envelope{
		EventID:       uuid.NewString(),
		EventType:     events.EventStockLow,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      s.ServiceName,
		TraceID:       trace,
		CorrelationID: orderID,
		Payload: kafkax.MustMarshal(events.StockLowPayload{
			BookID:    bookID,
			Title:     title,
			Remaining: remaining,
			Threshold: s.Threshold,
		}),
	}
	s.Producer.Publish(events.PartitionKey(orderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(events.EventStockLow)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
