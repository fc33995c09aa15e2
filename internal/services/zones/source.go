package zones

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"mortgage-advisory-engine/internal/models"
	"mortgage-advisory-engine/internal/services/pricecache"
	"mortgage-advisory-engine/internal/utils"
)

// Source supplies the geographic zone dataset with its market prices.
type Source interface {
	Zones(ctx context.Context) ([]models.GeoZone, error)
}

// CSVSource loads zones from a CSV export, fronted by a price cache so
// the file is not re-parsed on every request.
type CSVSource struct {
	path  string
	cache pricecache.Cache
	log   *zap.Logger
}

// NewCSVSource creates a CSV-backed zone source. cache may be nil.
func NewCSVSource(path string, cache pricecache.Cache) *CSVSource {
	return &CSVSource{
		path:  path,
		cache: cache,
		log:   utils.GetLogger(),
	}
}

// Zones returns the dataset, from cache when live.
func (s *CSVSource) Zones(ctx context.Context) ([]models.GeoZone, error) {
	cacheKey := "zones:" + s.path

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, pricecache.ErrCacheMiss) {
			s.log.Warn("zone price cache read failed", zap.Error(err))
		}
	}

	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read zone dataset: %w", err)
	}

	parsed, parseErrors := utils.NewZoneCSVParser().ParseZones(string(content))
	if len(parsed) == 0 {
		return nil, fmt.Errorf("zone dataset unusable: %w", errors.Join(parseErrors...))
	}
	for _, rowErr := range parseErrors {
		s.log.Warn("zone row skipped", zap.Error(rowErr))
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, parsed); err != nil {
			s.log.Warn("zone price cache write failed", zap.Error(err))
		}
	}

	return parsed, nil
}

// StaticSource serves a fixed in-memory dataset, for demo mode and tests.
type StaticSource struct {
	zones []models.GeoZone
}

// NewStaticSource wraps a fixed zone list.
func NewStaticSource(zones []models.GeoZone) *StaticSource {
	return &StaticSource{zones: zones}
}

func (s *StaticSource) Zones(context.Context) ([]models.GeoZone, error) {
	return s.zones, nil
}
