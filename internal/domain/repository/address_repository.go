package repository

import (
	"context"

	"prwatch/internal/domain/entity"
	"prwatch/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the persistence operations for street-level
// addresses. Addresses are immutable after creation.
type AddressRepository interface {
	// Create persists a new address under its lookup.
	Create(ctx context.Context, address *entity.Address) error

	// FindByID retrieves an address by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindMatch retrieves the oldest address matching the dedup tuple
	// (numOrName, street1, street2, lookupID), compared case-insensitively.
	// Returns ErrAddressNotFound when no row matches.
	FindMatch(ctx context.Context, lookupID uuid.UUID, numOrName, street1, street2 string) (*entity.Address, error)

	// FindByLookup retrieves all addresses recorded under one lookup,
	// oldest first.
	FindByLookup(ctx context.Context, lookupID uuid.UUID) ([]*entity.Address, error)
}
