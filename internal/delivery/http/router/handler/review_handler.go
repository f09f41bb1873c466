package handler

import (
	"log/slog"
	"net/http"

	"prwatch/internal/delivery/http/response"
	"prwatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for review submission and activation.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

// SubmitReview handles a visitor's review submission.
func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	var input *usecase.SubmitReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SubmitReview(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Review submitted, confirmation email sent")
}

// ActivateReview handles the activation link from the confirmation email.
// The three path segments are passed through opaque; the usecase decodes and
// verifies them together.
func (h *ReviewHandler) ActivateReview(c echo.Context) error {
	input := &usecase.ActivateReviewInput{
		UserIDB64:   c.Param("uid"),
		ReviewIDB64: c.Param("rid"),
		Token:       c.Param("token"),
	}

	output, err := h.uc.ActivateReview(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Review activated successfully")
}

// GetReview returns one review by id.
func (h *ReviewHandler) GetReview(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid review id")
	}

	review, err := h.uc.GetReview(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
