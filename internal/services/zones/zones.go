// Package zones classifies geographic zones by affordability: given a
// purchase capacity and per-zone square-meter prices, it derives the
// affordable surface and a green/orange/red status per zone.
package zones

import (
	"math"
	"sort"
	"strconv"

	"mortgage-advisory-engine/internal/models"
)

// MaxSurface is the largest surface a capacity buys at a given price per
// square meter, floored to whole square meters. Non-positive prices
// yield 0.
func MaxSurface(capacity, priceSqm float64) int {
	if priceSqm <= 0 {
		return 0
	}
	return int(math.Floor(capacity / priceSqm))
}

// ClassifyStatus maps a surface onto the 3-tier status: green at or
// above the green threshold, orange at or above the orange threshold,
// red below.
func ClassifyStatus(surface int, thresholds models.SurfaceThresholds) models.ZoneStatus {
	switch {
	case surface >= thresholds.Green:
		return models.ZoneStatusGreen
	case surface >= thresholds.Orange:
		return models.ZoneStatusOrange
	default:
		return models.ZoneStatusRed
	}
}

// Label is the short per-zone caption shown on the map.
func Label(surface int, status models.ZoneStatus) string {
	switch status {
	case models.ZoneStatusGreen:
		return formatSurface(surface) + " - Surface confortable"
	case models.ZoneStatusOrange:
		return formatSurface(surface) + " - Surface limitée"
	default:
		return formatSurface(surface) + " - Surface insuffisante"
	}
}

// Description is the longer per-zone explanation.
func Description(zone models.GeoZone, surface int, status models.ZoneStatus, kind models.PropertyKind) string {
	kindLabel := "une maison"
	smallLabel := "une petite maison"
	if kind == models.PropertyApartment {
		kindLabel = "un appartement"
		smallLabel = "un studio ou T2"
	}

	switch status {
	case models.ZoneStatusGreen:
		return "Excellent choix ! Vous pouvez acheter " + kindLabel + " confortable de " + formatSurface(surface) + " à " + zone.Name + "."
	case models.ZoneStatusOrange:
		return "Possible mais limité. " + formatSurface(surface) + " à " + zone.Name + " peut convenir pour " + smallLabel + "."
	default:
		return "Budget insuffisant pour " + zone.Name + ". Avec " + formatSurface(surface) + " max, privilégiez d'autres secteurs."
	}
}

// HousingComment names the housing type the surface affords.
func HousingComment(surface int, kind models.PropertyKind) string {
	if kind == models.PropertyApartment {
		switch {
		case surface >= 80:
			return "T4 ou plus"
		case surface >= 60:
			return "T3 familial"
		case surface >= 40:
			return "T2 confortable"
		case surface >= 25:
			return "Studio ou T1"
		default:
			return "Très petit studio"
		}
	}

	switch {
	case surface >= 120:
		return "Grande maison familiale"
	case surface >= 90:
		return "Maison T4-T5"
	case surface >= 70:
		return "Maison T3-T4"
	case surface >= 50:
		return "Petite maison T2-T3"
	default:
		return "Très petite maison"
	}
}

// ComputeZone derives all affordability figures for one zone. MinSurface
// carries a 10% negotiation margin; Relevance scores the surface against
// the green threshold, capped at 100.
func ComputeZone(zone models.GeoZone, capacity float64, kind models.PropertyKind, thresholds models.SurfaceThresholds) models.ComputedZone {
	priceSqm := zone.PriceSqmHouse
	if kind == models.PropertyApartment {
		priceSqm = zone.PriceSqmApartment
	}

	surface := MaxSurface(capacity, priceSqm)
	status := ClassifyStatus(surface, thresholds)

	relevance := 0
	if thresholds.Green > 0 {
		relevance = int(math.Min(100, math.Round(float64(surface)/float64(thresholds.Green)*100)))
	}

	return models.ComputedZone{
		GeoZone:        zone,
		PriceSqm:       priceSqm,
		MaxSurface:     surface,
		MinSurface:     int(math.Floor(float64(surface) * 0.9)),
		Status:         status,
		Label:          Label(surface, status),
		Description:    Description(zone, surface, status, kind),
		HousingComment: HousingComment(surface, kind),
		Relevance:      relevance,
	}
}

// ComputeAll classifies a whole zone set against one capacity figure.
func ComputeAll(zones []models.GeoZone, capacity float64, kind models.PropertyKind, thresholds models.SurfaceThresholds) []models.ComputedZone {
	computed := make([]models.ComputedZone, 0, len(zones))
	for _, zone := range zones {
		computed = append(computed, ComputeZone(zone, capacity, kind, thresholds))
	}
	return computed
}

// FilterByStatus keeps the zones whose status is in statuses.
func FilterByStatus(zones []models.ComputedZone, statuses ...models.ZoneStatus) []models.ComputedZone {
	var filtered []models.ComputedZone
	for _, zone := range zones {
		for _, status := range statuses {
			if zone.Status == status {
				filtered = append(filtered, zone)
				break
			}
		}
	}
	return filtered
}

// FilterByDepartment keeps the zones in the given departments.
func FilterByDepartment(zones []models.ComputedZone, departments ...string) []models.ComputedZone {
	var filtered []models.ComputedZone
	for _, zone := range zones {
		for _, dept := range departments {
			if zone.Department == dept {
				filtered = append(filtered, zone)
				break
			}
		}
	}
	return filtered
}

// SortBySurface returns a copy sorted by affordable surface descending,
// best opportunities first.
func SortBySurface(zones []models.ComputedZone) []models.ComputedZone {
	sorted := make([]models.ComputedZone, len(zones))
	copy(sorted, zones)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MaxSurface > sorted[j].MaxSurface
	})
	return sorted
}

// SortByPriceSqm returns a copy sorted by price per square meter
// ascending, cheapest first.
func SortByPriceSqm(zones []models.ComputedZone) []models.ComputedZone {
	sorted := make([]models.ComputedZone, len(zones))
	copy(sorted, zones)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PriceSqm < sorted[j].PriceSqm
	})
	return sorted
}

// Statistics aggregates a classified zone set. BestZone is the one with
// the largest affordable surface; nil for an empty set.
func Statistics(zones []models.ComputedZone) models.ZoneStatistics {
	if len(zones) == 0 {
		return models.ZoneStatistics{}
	}

	stats := models.ZoneStatistics{Total: len(zones)}

	maxSurface := zones[0].MaxSurface
	minSurface := zones[0].MaxSurface
	var priceSum float64
	best := zones[0]

	for _, zone := range zones {
		switch zone.Status {
		case models.ZoneStatusGreen:
			stats.Green++
		case models.ZoneStatusOrange:
			stats.Orange++
		default:
			stats.Red++
		}

		if zone.MaxSurface > maxSurface {
			maxSurface = zone.MaxSurface
		}
		if zone.MaxSurface < minSurface {
			minSurface = zone.MaxSurface
		}
		if zone.MaxSurface > best.MaxSurface {
			best = zone
		}
		priceSum += zone.PriceSqm
	}

	stats.MaxSurface = maxSurface
	stats.MinSurface = minSurface
	stats.AvgPriceSqm = math.Round(priceSum / float64(len(zones)))
	stats.BestZone = &best

	return stats
}

func formatSurface(surface int) string {
	return strconv.Itoa(surface) + "m²"
}
