package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakapradana/go-bookshop/internal/events"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	payload := events.OrderPlacedPayload{
		OrderID:       "order-1",
		UserID:        "user-1",
		Items:         []events.ItemQty{{BookID: "book-1", Qty: 2}},
		TotalQuantity: 2,
		TotalPrice:    198000,
	}
	env := events.Envelope{
		EventID:       "ev-1",
		EventType:     events.EventOrderPlaced,
		EventVersion:  1,
		OccurredAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Producer:      "bookshop-api",
		CorrelationID: "order-1",
		Payload:       MustMarshal(payload),
	}

	b := MustMarshal(env)

	var got events.Envelope
	require.NoError(t, UnmarshalEnvelope(b, &got))
	assert.Equal(t, env.EventID, got.EventID)
	assert.Equal(t, env.EventType, got.EventType)

	gotPayload, err := UnwrapPayload[events.OrderPlacedPayload](got.Payload)
	require.NoError(t, err)
	assert.Equal(t, payload, gotPayload)
}

func TestUnwrapPayload_BadJSON(t *testing.T) {
	_, err := UnwrapPayload[events.OrderPlacedPayload]([]byte(`{"order_id":`))
	assert.Error(t, err)
}
