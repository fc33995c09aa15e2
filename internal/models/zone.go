// Package models defines the data structures for the mortgage advisory engine.
package models

// ZoneStatus is the 3-tier affordability classification of a zone.
type ZoneStatus string

const (
	ZoneStatusGreen  ZoneStatus = "vert"
	ZoneStatusOrange ZoneStatus = "orange"
	ZoneStatusRed    ZoneStatus = "rouge"
)

// SurfaceThresholds are the square-meter cutoffs for the green and orange
// tiers; below orange is red. They differ per property kind and come from
// configuration, never hard-coded at the call site.
type SurfaceThresholds struct {
	Green  int `json:"green"`
	Orange int `json:"orange"`
}

// GeoZone is a geographic zone with externally resolved market prices.
// Identity, coordinates and prices are passed through by the classifier
// unmodified; the engine never fetches them itself.
type GeoZone struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Department        string  `json:"department"`
	Lat               float64 `json:"lat"`
	Lng               float64 `json:"lng"`
	PriceSqmApartment float64 `json:"price_sqm_apartment"`
	PriceSqmHouse     float64 `json:"price_sqm_house"`
}

// ComputedZone is a GeoZone enriched with the affordability computation
// for one capacity figure and property kind. Derived per call, never
// persisted by the engine.
type ComputedZone struct {
	GeoZone
	PriceSqm       float64    `json:"price_sqm"`
	MaxSurface     int        `json:"max_surface"`
	MinSurface     int        `json:"min_surface"`
	Status         ZoneStatus `json:"status"`
	Label          string     `json:"label"`
	Description    string     `json:"description"`
	HousingComment string     `json:"housing_comment"`
	Relevance      int        `json:"relevance"`
}

// ZoneStatistics are aggregate figures over a classified zone set.
type ZoneStatistics struct {
	Total       int           `json:"total"`
	Green       int           `json:"green"`
	Orange      int           `json:"orange"`
	Red         int           `json:"red"`
	MaxSurface  int           `json:"max_surface"`
	MinSurface  int           `json:"min_surface"`
	AvgPriceSqm float64       `json:"avg_price_sqm"`
	BestZone    *ComputedZone `json:"best_zone,omitempty"`
}
