// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AddressLookup is a canonicalized locality record sourced from the geocoding
// provider. One lookup is shared by every street address submitted at the same
// postcode, so the provider is queried at most once per locality.
// A lookup is never mutated or deleted after creation.
type AddressLookup struct {
	ID            uuid.UUID // The unique identifier for this lookup record.
	Postcode      string    // The postcode, always stored upper-cased.
	CountryCode   string    // ISO country code, always stored lower-cased.
	Suburb        string    // Optional locality component; empty when the provider omits it.
	City          string    // Optional locality component.
	County        string    // Optional locality component.
	StateDistrict string    // Optional locality component.
	State         string    // Optional locality component.
	Country       string    // Country name as reported by the provider.
	DisplayName   string    // The provider's full human-readable description.
	AddressClass  string    // The provider's classification of the place (e.g. "place", "boundary").
	Importance    float64   // The provider's relative importance ranking.
	Lat           float64   // Geographic latitude of the locality.
	Lon           float64   // Geographic longitude of the locality.
	PlaceID       int64     // The provider's identifier for the place.
	CreatedAt     time.Time // Timestamp of when this lookup was stored.
}
