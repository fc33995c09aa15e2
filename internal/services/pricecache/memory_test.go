package pricecache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-advisory-engine/internal/models"
)

func TestMemoryCache_MissOnUnknownKey(t *testing.T) {
	cache := NewMemoryCache(time.Minute)

	_, err := cache.Get(context.Background(), "zones:unknown")

	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_SetThenGet(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	zones := []models.GeoZone{{ID: "75001", Name: "Paris 1er", PriceSqmApartment: 12000}}

	require.NoError(t, cache.Set(context.Background(), "zones:paris", zones))

	got, err := cache.Get(context.Background(), "zones:paris")
	require.NoError(t, err)
	assert.Equal(t, zones, got)
}

func TestMemoryCache_ExpiredEntryIsEvicted(t *testing.T) {
	cache := NewMemoryCache(time.Minute)

	current := time.Now()
	cache.now = func() time.Time { return current }

	require.NoError(t, cache.Set(context.Background(), "zones:x", []models.GeoZone{{ID: "x", Name: "X"}}))

	current = current.Add(2 * time.Minute)

	_, err := cache.Get(context.Background(), "zones:x")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_ZeroTTLFallsBackToDefault(t *testing.T) {
	cache := NewMemoryCache(0)

	assert.Equal(t, DefaultTTL, cache.ttl)
}
