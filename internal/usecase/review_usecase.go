package usecase

import (
	"context"

	"prwatch/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SubmitReviewInput represents a visitor's review submission.
type SubmitReviewInput struct {
	Title     string    `json:"title" validate:"required,max=100"`
	Desc      string    `json:"desc" validate:"required,max=5000"`
	Rating    int       `json:"rating" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	AddressID uuid.UUID `json:"address_id" validate:"required"`
}

// ActivateReviewInput carries the three independently decodable components of
// an activation link.
type ActivateReviewInput struct {
	UserIDB64   string
	ReviewIDB64 string
	Token       string
}

// --- Output DTOs ---

// SubmitReviewOutput returns the pending records and the activation link that
// was dispatched. EmailDispatched is false when the mail could not be sent;
// the pending records are kept either way.
type SubmitReviewOutput struct {
	Review          *entity.Review `json:"review"`
	User            *entity.User   `json:"-"`
	ActivationLink  string         `json:"-"`
	EmailDispatched bool           `json:"email_dispatched"`
}

// ActivationOutput returns the activated pair.
type ActivationOutput struct {
	Review *entity.Review `json:"review"`
	User   *entity.User   `json:"-"`
}

// ReviewUsecase defines the interface for the review activation flow.
type ReviewUsecase interface {
	// SubmitReview validates the rating, stores a pending review plus a
	// pending account for the email, and dispatches an activation link.
	SubmitReview(ctx context.Context, input *SubmitReviewInput) (*SubmitReviewOutput, error)

	// ActivateReview flips the user and the review to active, atomically,
	// when the presented link is valid and not yet consumed.
	ActivateReview(ctx context.Context, input *ActivateReviewInput) (*ActivationOutput, error)

	// GetReview returns one review by id.
	GetReview(ctx context.Context, id uuid.UUID) (*entity.Review, error)
}
