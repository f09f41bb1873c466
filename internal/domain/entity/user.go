package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account keyed by email. Accounts are auto-created when a visitor
// submits their first review: they start inactive with an unusable random
// password and are activated by the same token that activates the review.
type User struct {
	ID           uuid.UUID // The unique identifier for this account.
	Email        string    // The account's email; treated as the username.
	PasswordHash string    // bcrypt hash; a random unusable value for auto-created accounts.
	Active       bool      // Whether the account's email has been confirmed.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
