// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"

	"prwatch/internal/errors"
)

// ErrNoGeocodeMatch is returned by Search when the provider finds nothing for
// the given postcode and country.
var ErrNoGeocodeMatch = errors.New("no geocoding match")

// GeocodeAddress is the structured address breakdown of a provider match.
// Every field is optional on the wire; absent fields arrive as empty strings.
type GeocodeAddress struct {
	County        string
	City          string
	Country       string
	CountryCode   string
	Postcode      string
	StateDistrict string
	State         string
	Suburb        string
}

// GeocodeResult is a single provider match, converted from the provider's
// response shape exactly once at the infrastructure boundary so the domain
// never sees raw wire dictionaries.
type GeocodeResult struct {
	PlaceID     int64
	Lat         float64
	Lon         float64
	DisplayName string
	Class       string
	Importance  float64
	Address     *GeocodeAddress // nil when the provider returned no breakdown.
}

// Geocoder defines the interface for the external geocoding provider.
type Geocoder interface {
	// Search queries the provider for a postcode restricted to one country,
	// requesting the full address component breakdown.
	// Returns ErrNoGeocodeMatch when the provider has no result.
	Search(ctx context.Context, postcode, countryCode string) (*GeocodeResult, error)
}
