package service

import (
	"time"

	"github.com/google/uuid"
)

// ActivationTokenService defines the interface for issuing and checking the
// single-use, time-windowed credential embedded in activation links. A token
// is derived from (user id, issue timestamp) plus a server secret; it does not
// bind to the review id, which travels separately in the same link.
type ActivationTokenService interface {
	// Generate creates a new activation token for a user.
	Generate(userID uuid.UUID) (string, error)

	// Validate checks a token against the expected user and the current time,
	// using the same derivation as Generate and the configured expiry window.
	// A token minted for any other user never validates.
	Validate(token string, userID uuid.UUID) error

	// TokenDuration returns the configured validity window.
	TokenDuration() time.Duration
}
