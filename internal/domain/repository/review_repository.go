package repository

import (
	"context"

	"prwatch/internal/domain/entity"
	"prwatch/internal/errors"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the persistence operations for reviews.
type ReviewRepository interface {
	// Create persists a new pending review.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// Update modifies an existing review. The only mutation the domain
	// performs is the activation flip (Active + UserID).
	Update(ctx context.Context, review *entity.Review) error

	// FindActiveByAddress retrieves the confirmed reviews for an address,
	// newest first.
	FindActiveByAddress(ctx context.Context, addressID uuid.UUID) ([]*entity.Review, error)

	// AverageRating returns the mean rating over the confirmed reviews of an
	// address, or 0 when there are none.
	AverageRating(ctx context.Context, addressID uuid.UUID) (float64, error)
}
