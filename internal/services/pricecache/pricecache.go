// Package pricecache caches zone price datasets so the CSV-backed zone
// loader is not re-read on every map request. Backed by Redis in
// production, by an in-process store in tests and demo mode.
package pricecache

import (
	"context"
	"errors"
	"time"

	"mortgage-advisory-engine/internal/models"
)

// ErrCacheMiss is returned when a key has no live entry.
var ErrCacheMiss = errors.New("price cache miss")

// Cache stores zone datasets under string keys with a TTL fixed at
// construction.
type Cache interface {
	Get(ctx context.Context, key string) ([]models.GeoZone, error)
	Set(ctx context.Context, key string, zones []models.GeoZone) error
	Close() error
}

// DefaultTTL bounds staleness of market prices.
const DefaultTTL = 30 * time.Minute
