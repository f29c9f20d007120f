package events

import (
	"encoding/json"
	"time"
)

const (
	EventOrderPlaced = "OrderPlaced"
	EventStockLow    = "StockLow"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // usually order_id
	Payload       json.RawMessage `json:"payload"`
}

type ItemQty struct {
	BookID string `json:"book_id"`
	Qty    int    `json:"qty"`
}

type OrderPlacedPayload struct {
	OrderID       string    `json:"order_id"`
	UserID        string    `json:"user_id"`
	Items         []ItemQty `json:"items"`
	TotalQuantity int       `json:"total_quantity"`
	TotalPrice    int       `json:"total_price"`
}

type StockLowPayload struct {
	BookID    string `json:"book_id"`
	Title     string `json:"title"`
	Remaining int    `json:"remaining"`
	Threshold int    `json:"threshold"`
}
