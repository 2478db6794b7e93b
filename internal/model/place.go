package model

import "encoding/json"

// PlaceCategory is a kind of facility the places search can look for.
type PlaceCategory struct {
	// Name is the route segment and the noun used in messages.
	Name string
	// Filter is the upstream category filter.
	Filter string
	// Limit caps the number of places per query.
	Limit int
	// DefaultRadius is used when the caller gives no radius, in meters.
	DefaultRadius int
}

// Place categories served by the API.
var (
	Hospitals = PlaceCategory{
		Name:          "medical accommodations",
		Filter:        "healthcare.clinic_or_praxis.general,healthcare.hospital",
		Limit:         10,
		DefaultRadius: 5000,
	}
	FoodServices = PlaceCategory{
		Name:          "social food services",
		Filter:        "service.social_facility.food",
		Limit:         20,
		DefaultRadius: 5000,
	}
	Shelters = PlaceCategory{
		Name:          "social shelter services",
		Filter:        "service.social_facility.shelter",
		Limit:         10,
		DefaultRadius: 5000,
	}
	PublicTransport = PlaceCategory{
		Name:          "public transportation",
		Filter:        "public_transport",
		Limit:         10,
		DefaultRadius: 1000,
	}
)

// PlaceCollection is a GeoJSON feature collection of places. Features are
// passed through untouched.
type PlaceCollection struct {
	Type     string            `json:"type"`
	Features []json.RawMessage `json:"features"`
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}
