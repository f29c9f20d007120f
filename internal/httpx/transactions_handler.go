package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/rakapradana/go-bookshop/internal/checkout"
	"github.com/rakapradana/go-bookshop/internal/events"
	kafkax "github.com/rakapradana/go-bookshop/internal/kafka"
	"github.com/rakapradana/go-bookshop/internal/logx"
	"github.com/rakapradana/go-bookshop/internal/redisx"
)

type TransactionsHandler struct {
	Checkout *checkout.Repo
	Redis    *redis.Client
	Producer *kafkax.Producer
	Secret   string
	Service  string
}

type createTransactionReq struct {
	UserID string               `json:"user_id"`
	Items  []checkout.ItemInput `json:"items"`
}

func (h *TransactionsHandler) Register(r *chi.Mux) {
	r.Route("/transactions", func(r chi.Router) {
		r.Use(RequireAuth(h.Secret))
		r.Post("/", h.create)
		r.Get("/", h.list)
		r.Get("/statistics", h.statistics)
		r.Get("/{id}", h.get)
	})
}

func (h *TransactionsHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Fail(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.UserID == "" || len(req.Items) == 0 {
		Fail(w, http.StatusBadRequest, "User ID and items array are required")
		return
	}

	res, err := h.Checkout.PlaceOrder(r.Context(), req.UserID, req.Items)
	if err != nil {
		h.failOrder(w, err)
		return
	}

	// stale statistics go away with the next read
	if h.Redis != nil {
		_ = h.Redis.Del(r.Context(), redisx.KeyStats).Err()
	}
	h.publishOrderPlaced(req, res, r.Header.Get("X-Request-Id"))

	OK(w, http.StatusCreated, "Transaction created successfully", map[string]any{
		"transaction_id": res.OrderID,
		"total_quantity": res.TotalQuantity,
		"total_price":    res.TotalPrice,
	})
}

func (h *TransactionsHandler) failOrder(w http.ResponseWriter, err error) {
	var bookErr *checkout.BookNotFoundError
	var stockErr *checkout.InsufficientStockError
	var qtyErr *checkout.InvalidQuantityError
	switch {
	case errors.Is(err, checkout.ErrUserNotFound):
		Fail(w, http.StatusNotFound, "User not found")
	case errors.As(err, &bookErr):
		Fail(w, http.StatusNotFound, fmt.Sprintf("Book %s not found", bookErr.BookID))
	case errors.As(err, &stockErr):
		Fail(w, http.StatusBadRequest, fmt.Sprintf("Insufficient stock for %s", stockErr.Title))
	case errors.As(err, &qtyErr):
		Fail(w, http.StatusBadRequest, fmt.Sprintf("Invalid quantity for book %s", qtyErr.BookID))
	default:
		logx.L.Errorf("place order: %v", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *TransactionsHandler) publishOrderPlaced(req createTransactionReq, res checkout.OrderResult, traceID string) {
	if h.Producer == nil {
		return
	}

	items := make([]events.ItemQty, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, events.ItemQty{BookID: it.BookID, Qty: it.Quantity})
	}
	ev := events.Envelope{
		EventID:       uuid.NewString(),
		EventType:     events.EventOrderPlaced,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      h.Service,
		TraceID:       traceID,
		CorrelationID: res.OrderID,
		Payload: kafkax.MustMarshal(events.OrderPlacedPayload{
			OrderID:       res.OrderID,
			UserID:        req.UserID,
			Items:         items,
			TotalQuantity: res.TotalQuantity,
			TotalPrice:    res.TotalPrice,
		}),
	}
	h.Producer.Publish(events.PartitionKey(res.OrderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(events.EventOrderPlaced)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

func (h *TransactionsHandler) list(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Checkout.ListOrders(r.Context())
	if err != nil {
		logx.L.Errorf("list orders: %v", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if orders == nil {
		orders = []checkout.OrderSummary{}
	}
	OK(w, http.StatusOK, "Get all transaction successfully", orders)
}

func (h *TransactionsHandler) statistics(w http.ResponseWriter, r *http.Request) {
	const msg = "Get transactions statistics successfully"

	if h.Redis != nil {
		if cached, err := h.Redis.Get(r.Context(), redisx.KeyStats).Result(); err == nil && cached != "" {
			OK(w, http.StatusOK, msg, json.RawMessage(cached))
			return
		}
	}

	stats, err := h.Checkout.Stats(r.Context())
	if err != nil {
		logx.L.Errorf("stats: %v", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if h.Redis != nil {
		if b, err := json.Marshal(stats); err == nil {
			_ = h.Redis.Set(r.Context(), redisx.KeyStats, b, redisx.TTLStatsCache).Err()
		}
	}
	OK(w, http.StatusOK, msg, stats)
}

func (h *TransactionsHandler) get(w http.ResponseWriter, r *http.Request) {
	d, err := h.Checkout.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, checkout.ErrOrderNotFound) {
		Fail(w, http.StatusNotFound, "Transaction not found")
		return
	}
	if err != nil {
		logx.L.Errorf("get order: %v", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	OK(w, http.StatusOK, "Get transaction detail successfully", d)
}
