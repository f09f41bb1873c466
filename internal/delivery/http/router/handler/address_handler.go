// Package handler contains the HTTP handlers for the application.
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

// AddressHandler holds dependencies for address resolution handlers.
type AddressHandler struct {
	uc     usecase.AddressUsecase
	logger *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{
		uc:     uc,
		logger: logger,
	}
}

// ResolveLookup handles the postcode lookup request.
func (h *AddressHandler) ResolveLookup(c echo.Context) error {
	var input *usecase.ResolveLookupInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lookup input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	lookup, err := h.uc.ResolveLookup(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, lookup, "Postcode resolved successfully")
}

// ResolveAddress handles a street address submission under a resolved lookup.
func (h *AddressHandler) ResolveAddress(c echo.Context) error {
	var input *usecase.ResolveAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.ResolveAddress(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address, "Address resolved successfully")
}

// GetAddressDetail returns one address with its locality, confirmed reviews
// and average rating.
func (h *AddressHandler) GetAddressDetail(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address id")
	}

	detail, err := h.uc.GetAddressDetail(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "Address retrieved successfully")
}

// ListSimilarAddresses lists every address recorded under the same lookup.
func (h *AddressHandler) ListSimilarAddresses(c echo.Context) error {
	lookupID, err := uuid.Parse(c.Param("lookupID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid lookup id")
	}

	addresses, err := h.uc.ListSimilarAddresses(c.Request().Context(), lookupID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses, "Addresses retrieved successfully")
}
