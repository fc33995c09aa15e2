package zones

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-advisory-engine/internal/models"
)

var apartmentThresholds = models.SurfaceThresholds{Green: 40, Orange: 25}

func sampleZones() []models.GeoZone {
	return []models.GeoZone{
		{ID: "75001", Name: "Paris 1er", Department: "75", PriceSqmApartment: 12000, PriceSqmHouse: 13500},
		{ID: "93100", Name: "Montreuil", Department: "93", PriceSqmApartment: 6500, PriceSqmHouse: 7200},
		{ID: "77100", Name: "Meaux", Department: "77", PriceSqmApartment: 3100, PriceSqmHouse: 2900},
	}
}

func TestMaxSurface(t *testing.T) {
	assert.Equal(t, 33, MaxSurface(200000, 6000), "floored to whole square meters")
	assert.Equal(t, 16, MaxSurface(200000, 12000))
}

func TestMaxSurface_NonPositivePrice(t *testing.T) {
	assert.Equal(t, 0, MaxSurface(200000, 0))
	assert.Equal(t, 0, MaxSurface(200000, -100))
}

func TestClassifyStatus_Boundaries(t *testing.T) {
	assert.Equal(t, models.ZoneStatusGreen, ClassifyStatus(40, apartmentThresholds), "exactly at green is green")
	assert.Equal(t, models.ZoneStatusOrange, ClassifyStatus(39, apartmentThresholds))
	assert.Equal(t, models.ZoneStatusOrange, ClassifyStatus(25, apartmentThresholds), "exactly at orange is orange")
	assert.Equal(t, models.ZoneStatusRed, ClassifyStatus(24, apartmentThresholds))
}

func TestComputeZone_Apartment(t *testing.T) {
	zone := models.GeoZone{ID: "93100", Name: "Montreuil", PriceSqmApartment: 6500, PriceSqmHouse: 7200}
	computed := ComputeZone(zone, 300000, models.PropertyApartment, apartmentThresholds)

	assert.Equal(t, float64(6500), computed.PriceSqm, "apartment price applies")
	assert.Equal(t, 46, computed.MaxSurface)
	assert.Equal(t, 41, computed.MinSurface, "10% negotiation margin")
	assert.Equal(t, models.ZoneStatusGreen, computed.Status)
	assert.Equal(t, 100, computed.Relevance, "capped at 100")
	assert.Contains(t, computed.Label, "46m²")
	assert.Contains(t, computed.Description, "Montreuil")
}

func TestComputeZone_HouseUsesHousePrice(t *testing.T) {
	zone := models.GeoZone{ID: "77100", Name: "Meaux", PriceSqmApartment: 3100, PriceSqmHouse: 2900}
	computed := ComputeZone(zone, 200000, models.PropertyHouse, models.SurfaceThresholds{Green: 70, Orange: 50})

	assert.Equal(t, float64(2900), computed.PriceSqm)
	assert.Equal(t, 68, computed.MaxSurface)
	assert.Equal(t, models.ZoneStatusOrange, computed.Status)
}

func TestComputeZone_RelevanceScales(t *testing.T) {
	zone := models.GeoZone{ID: "x", Name: "X", PriceSqmApartment: 10000}
	computed := ComputeZone(zone, 200000, models.PropertyApartment, apartmentThresholds)

	// 20m² against a 40m² green threshold
	assert.Equal(t, 50, computed.Relevance)
}

func TestComputeAll(t *testing.T) {
	computed := ComputeAll(sampleZones(), 250000, models.PropertyApartment, apartmentThresholds)

	require.Len(t, computed, 3)
	assert.Equal(t, models.ZoneStatusRed, computed[0].Status, "Paris is out of reach")
	assert.Equal(t, models.ZoneStatusGreen, computed[2].Status, "Meaux is comfortable")
}

func TestFilterByStatus(t *testing.T) {
	computed := ComputeAll(sampleZones(), 250000, models.PropertyApartment, apartmentThresholds)

	green := FilterByStatus(computed, models.ZoneStatusGreen)
	require.Len(t, green, 1)
	assert.Equal(t, "77100", green[0].ID)

	greenOrOrange := FilterByStatus(computed, models.ZoneStatusGreen, models.ZoneStatusOrange)
	assert.Len(t, greenOrOrange, 2)
}

func TestFilterByDepartment(t *testing.T) {
	computed := ComputeAll(sampleZones(), 250000, models.PropertyApartment, apartmentThresholds)

	filtered := FilterByDepartment(computed, "93", "77")

	require.Len(t, filtered, 2)
	for _, zone := range filtered {
		assert.NotEqual(t, "75", zone.Department)
	}
}

func TestSortBySurface_DescendingCopy(t *testing.T) {
	computed := ComputeAll(sampleZones(), 250000, models.PropertyApartment, apartmentThresholds)

	sorted := SortBySurface(computed)

	assert.Equal(t, "77100", sorted[0].ID, "cheapest zone affords the largest surface")
	assert.Equal(t, "75001", sorted[2].ID)
	assert.Equal(t, "75001", computed[0].ID, "input order untouched")
}

func TestSortByPriceSqm_Ascending(t *testing.T) {
	computed := ComputeAll(sampleZones(), 250000, models.PropertyApartment, apartmentThresholds)

	sorted := SortByPriceSqm(computed)

	assert.Equal(t, float64(3100), sorted[0].PriceSqm)
	assert.Equal(t, float64(12000), sorted[2].PriceSqm)
}

func TestStatistics(t *testing.T) {
	computed := ComputeAll(sampleZones(), 250000, models.PropertyApartment, apartmentThresholds)

	stats := Statistics(computed)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Green)
	assert.Equal(t, 1, stats.Orange)
	assert.Equal(t, 1, stats.Red)
	assert.Equal(t, 80, stats.MaxSurface)
	assert.Equal(t, 20, stats.MinSurface)
	assert.Equal(t, float64(7200), stats.AvgPriceSqm)
	require.NotNil(t, stats.BestZone)
	assert.Equal(t, "77100", stats.BestZone.ID)
}

func TestStatistics_EmptySet(t *testing.T) {
	stats := Statistics(nil)

	assert.Equal(t, 0, stats.Total)
	assert.Nil(t, stats.BestZone)
}
