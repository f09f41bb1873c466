// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"prwatch/internal/domain/entity"
	"prwatch/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressLookupNotFound is returned when no stored lookup matches.
var ErrAddressLookupNotFound = errors.New("address lookup not found")

// AddressLookupRepository defines the persistence operations for geocoded
// locality records. Lookups are append-only: there is no update or delete.
type AddressLookupRepository interface {
	// Create persists a new lookup record.
	Create(ctx context.Context, lookup *entity.AddressLookup) error

	// FindByID retrieves a lookup by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AddressLookup, error)

	// FindByPostcodeCountry retrieves the stored lookup for a postcode and
	// country code. Matching ignores case and whitespace in the postcode, so
	// "sw1a1aa"/"GB" finds a row stored as "SW1A 1AA"/"gb".
	// Returns ErrAddressLookupNotFound when no row matches.
	FindByPostcodeCountry(ctx context.Context, postcode, countryCode string) (*entity.AddressLookup, error)
}
