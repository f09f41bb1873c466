// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"prwatch/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ResolveLookupInput represents a postcode lookup request.
type ResolveLookupInput struct {
	Postcode    string `json:"postcode" validate:"required"`
	CountryCode string `json:"country" validate:"required,len=2"`
}

// ResolveAddressInput represents a street-address submission under an
// existing lookup.
type ResolveAddressInput struct {
	NumOrName       string    `json:"num_or_name" validate:"required"`
	Street1         string    `json:"street_1" validate:"required"`
	Street2         string    `json:"street_2"`
	AddressLookupID uuid.UUID `json:"address_lookup_id" validate:"required"`
}

// --- Output DTOs ---

// AddressDetailOutput bundles an address with its locality record, its
// confirmed reviews and their average rating.
type AddressDetailOutput struct {
	Address       *entity.Address       `json:"address"`
	Lookup        *entity.AddressLookup `json:"address_lookup"`
	Reviews       []*entity.Review      `json:"reviews"`
	AverageRating float64               `json:"average_rating"`
}

// AddressUsecase defines the interface for address resolution operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AddressUsecase interface {
	// ResolveLookup returns the stored lookup for (postcode, country) or
	// creates one from a fresh provider query. Already-stored localities
	// never trigger a provider call.
	ResolveLookup(ctx context.Context, input *ResolveLookupInput) (*entity.AddressLookup, error)

	// ResolveAddress returns the existing street address matching the dedup
	// tuple, or creates a new one under the given lookup.
	ResolveAddress(ctx context.Context, input *ResolveAddressInput) (*entity.Address, error)

	// GetAddressDetail returns one address with its lookup, confirmed
	// reviews and average rating.
	GetAddressDetail(ctx context.Context, id uuid.UUID) (*AddressDetailOutput, error)

	// ListSimilarAddresses returns every address recorded under a lookup.
	ListSimilarAddresses(ctx context.Context, lookupID uuid.UUID) ([]*entity.Address, error)
}
