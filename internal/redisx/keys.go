package redisx

import "time"

const (
	// Cached /transactions/statistics response body: stats:transactions
	KeyStats = "stats:transactions"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"

	// Low-stock alert flag per book: alert:lowstock:{book_id} -> remaining stock
	KeyLowStock = "alert:lowstock:%s"
)

var (
	TTLStatsCache = 1 * time.Minute
	TTLDedup      = 48 * time.Hour
	TTLLowStock   = 24 * time.Hour
)
