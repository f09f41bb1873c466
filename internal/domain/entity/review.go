package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating boundaries for a review.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rating plus free text left against one Address. A review is
// created inactive with no user; it becomes active and gains its user
// reference exactly once, through a valid activation token, and is never
// reverted or deleted by this flow.
type Review struct {
	ID        uuid.UUID  // The unique identifier for this review.
	Title     string     // Short headline for the review.
	Desc      string     // Free-text body of the review.
	Rating    int        // Star rating, MinRating..MaxRating inclusive.
	Email     string     // The submitter's email, used for the confirmation mail.
	Active    bool       // Whether the review has been confirmed by email.
	AddressID uuid.UUID  // The address this review is about.
	UserID    *uuid.UUID // The confirming account; nil until activation.
	CreatedAt time.Time  // Timestamp of when this review was submitted.
}

// RatingInRange reports whether the review's rating is within the accepted
// bounds.
func (r *Review) RatingInRange() bool {
	return r.Rating >= MinRating && r.Rating <= MaxRating
}
