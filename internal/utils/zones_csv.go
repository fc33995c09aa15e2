package utils

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"mortgage-advisory-engine/internal/models"
)

// Zone CSV errors
var (
	ErrEmptyZoneCSV       = errors.New("zone CSV content is empty")
	ErrMissingZoneColumns = errors.New("missing required zone columns")
	ErrNoZoneRows         = errors.New("zone CSV contains no data rows")
)

// RequiredZoneColumns are the columns a zone dataset must carry.
var RequiredZoneColumns = []string{
	"id",
	"name",
	"department",
	"price_sqm_apartment",
	"price_sqm_house",
}

// ZoneColumnAliases maps alternative headers (including the French
// upstream export) to standard names.
var ZoneColumnAliases = map[string]string{
	"zone_id":          "id",
	"code":             "id",
	"insee":            "id",
	"commune":          "name",
	"nom":              "name",
	"ville":            "name",
	"dept":             "department",
	"departement":      "department",
	"code_departement": "department",

	"lat":       "lat",
	"latitude":  "lat",
	"lng":       "lng",
	"lon":       "lng",
	"longitude": "lng",

	"prix_m2_appartement": "price_sqm_apartment",
	"prix_m2_appart":      "price_sqm_apartment",
	"apartment_price":     "price_sqm_apartment",
	"prix_m2_maison":      "price_sqm_house",
	"house_price":         "price_sqm_house",
}

// ZoneCSVParser parses geographic zone price datasets.
type ZoneCSVParser struct {
	columnMapping map[string]int
}

// NewZoneCSVParser creates a zone CSV parser.
func NewZoneCSVParser() *ZoneCSVParser {
	return &ZoneCSVParser{columnMapping: make(map[string]int)}
}

// ParseZones parses CSV content into geographic zones. Row-level
// failures are collected, not fatal; the dataset loads as long as at
// least one row is valid.
func (p *ZoneCSVParser) ParseZones(content string) ([]models.GeoZone, []error) {
	if strings.TrimSpace(content) == "" {
		return nil, []error{ErrEmptyZoneCSV}
	}

	reader := csv.NewReader(strings.NewReader(content))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, []error{fmt.Errorf("failed to read header: %w", err)}
	}

	if err := p.buildColumnMapping(header); err != nil {
		return nil, []error{err}
	}

	var zones []models.GeoZone
	var parseErrors []error
	lineNum := 1

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			parseErrors = append(parseErrors, fmt.Errorf("line %d: %w", lineNum, err))
			continue
		}

		zone, err := p.parseRow(record)
		if err != nil {
			parseErrors = append(parseErrors, fmt.Errorf("line %d: %w", lineNum, err))
			continue
		}

		zones = append(zones, zone)
	}

	if len(zones) == 0 && len(parseErrors) > 0 {
		return nil, append([]error{ErrNoZoneRows}, parseErrors...)
	}

	return zones, parseErrors
}

func (p *ZoneCSVParser) buildColumnMapping(header []string) error {
	p.columnMapping = make(map[string]int)

	for i, col := range header {
		normalized := strings.ToLower(strings.TrimSpace(col))
		if alias, ok := ZoneColumnAliases[normalized]; ok {
			normalized = alias
		}
		p.columnMapping[normalized] = i
	}

	var missing []string
	for _, required := range RequiredZoneColumns {
		if _, ok := p.columnMapping[required]; !ok {
			missing = append(missing, required)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingZoneColumns, strings.Join(missing, ", "))
	}

	return nil
}

func (p *ZoneCSVParser) parseRow(record []string) (models.GeoZone, error) {
	getValue := func(column string) string {
		idx, ok := p.columnMapping[column]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	id := getValue("id")
	name := getValue("name")
	if id == "" || name == "" {
		return models.GeoZone{}, errors.New("missing zone id or name")
	}

	apartmentPrice, err := parsePrice(getValue("price_sqm_apartment"))
	if err != nil {
		return models.GeoZone{}, fmt.Errorf("invalid price_sqm_apartment: %w", err)
	}

	housePrice, err := parsePrice(getValue("price_sqm_house"))
	if err != nil {
		return models.GeoZone{}, fmt.Errorf("invalid price_sqm_house: %w", err)
	}

	if apartmentPrice <= 0 && housePrice <= 0 {
		return models.GeoZone{}, errors.New("zone has no positive price")
	}

	// Coordinates are optional; zero means unknown.
	lat, _ := parsePrice(getValue("lat"))
	lng, _ := parsePrice(getValue("lng"))

	return models.GeoZone{
		ID:                id,
		Name:              name,
		Department:        getValue("department"),
		Lat:               lat,
		Lng:               lng,
		PriceSqmApartment: apartmentPrice,
		PriceSqmHouse:     housePrice,
	}, nil
}

// parsePrice parses a numeric field, accepting French decimal commas
// and currency suffixes.
func parsePrice(s string) (float64, error) {
	if s == "" {
		return 0, errors.New("empty value")
	}

	s = strings.TrimSuffix(s, "€")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.TrimSpace(s)

	// French exports use the decimal comma.
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}

	return strconv.ParseFloat(s, 64)
}
