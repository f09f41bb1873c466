package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a specific street-level address scoped to one AddressLookup.
// The tuple (NumOrName, Street1, Street2, AddressLookupID) is the dedup key:
// creation is gated by a case-insensitive existence check, so repeated
// submissions of the same address converge on one row. Immutable once created.
type Address struct {
	ID              uuid.UUID // The unique identifier for this address.
	NumOrName       string    // House number or name, e.g. "10" or "Rose Cottage".
	Street1         string    // First street line.
	Street2         string    // Second street line; empty when not needed.
	AddressLookupID uuid.UUID // The locality this address belongs to.
	CreatedAt       time.Time // Timestamp of when this address was stored.
}
