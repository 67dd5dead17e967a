package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"rentfolio/internal/common"
	"rentfolio/internal/services"
	"rentfolio/internal/validation"
)

// RentalHandlers handles rental-related HTTP requests
type RentalHandlers struct {
	rentalService services.RentalService
}

// NewRentalHandlers creates a new rental handlers instance
func NewRentalHandlers(rentalService services.RentalService) *RentalHandlers {
	return &RentalHandlers{rentalService: rentalService}
}

// ListRentals returns all rentals with derived duration and active flag.
func (h *RentalHandlers) ListRentals(c echo.Context) error {
	rentals, err := h.rentalService.List(c.Request().Context())
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, rentals)
}

// GetRental returns a single rental.
func (h *RentalHandlers) GetRental(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.SendNotFoundError(c, "Rental")
	}

	rental, err := h.rentalService.GetByID(c.Request().Context(), id)
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, rental)
}

// CreateRental creates a rental from references to an existing property,
// agent and tenant. Their fields are copied onto the rental as snapshots.
func (h *RentalHandlers) CreateRental(c echo.Context) error {
	var payload validation.RentalPayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	rental, err := h.rentalService.Create(c.Request().Context(), &payload)
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, rental)
}

// UpdateRental changes the dates and monthly amount only.
func (h *RentalHandlers) UpdateRental(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.SendNotFoundError(c, "Rental")
	}

	var payload validation.RentalPayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	rental, err := h.rentalService.Update(c.Request().Context(), id, &payload)
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, rental)
}

// DeleteRental removes the rental.
func (h *RentalHandlers) DeleteRental(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.SendNotFoundError(c, "Rental")
	}

	ctx := c.Request().Context()
	rental, err := h.rentalService.GetByID(ctx, id)
	if err != nil {
		return common.SendError(c, err)
	}

	if err := h.rentalService.Delete(ctx, id); err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, rental)
}
