package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"rentfolio/internal/common"
	"rentfolio/internal/services"
	"rentfolio/internal/validation"
)

// PropertyHandlers handles property-related HTTP requests
type PropertyHandlers struct {
	propertyService services.PropertyService
	rentalService   services.RentalService
}

// NewPropertyHandlers creates a new property handlers instance
func NewPropertyHandlers(propertyService services.PropertyService, rentalService services.RentalService) *PropertyHandlers {
	return &PropertyHandlers{
		propertyService: propertyService,
		rentalService:   rentalService,
	}
}

// ListProperties returns all non-archived properties ordered by display name.
func (h *PropertyHandlers) ListProperties(c echo.Context) error {
	properties, err := h.propertyService.List(c.Request().Context())
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, properties)
}

// GetProperty returns a single property, archived ones included.
func (h *PropertyHandlers) GetProperty(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.SendNotFoundError(c, "Property")
	}

	property, err := h.propertyService.GetByID(c.Request().Context(), id)
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, property)
}

// ListPropertyRentals returns the rentals referencing a property.
func (h *PropertyHandlers) ListPropertyRentals(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.SendNotFoundError(c, "Property")
	}

	ctx := c.Request().Context()
	if _, err := h.propertyService.GetByID(ctx, id); err != nil {
		return common.SendError(c, err)
	}

	rentals, err := h.rentalService.ListByPropertyID(ctx, id)
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, rentals)
}

// CreateProperty creates a property. Sale details and the archived flag are
// rejected here; they may only arrive on update.
func (h *PropertyHandlers) CreateProperty(c echo.Context) error {
	var payload validation.PropertyPayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	property, err := h.propertyService.Create(c.Request().Context(), &payload)
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, property)
}

// UpdateProperty replaces the full property field set.
func (h *PropertyHandlers) UpdateProperty(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.SendNotFoundError(c, "Property")
	}

	var payload validation.PropertyPayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	property, err := h.propertyService.Update(c.Request().Context(), id, &payload)
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, property)
}

// DeleteProperty archives the property instead of removing it, so rental
// history stays intact.
func (h *PropertyHandlers) DeleteProperty(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.SendNotFoundError(c, "Property")
	}

	property, err := h.propertyService.Archive(c.Request().Context(), id)
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, property)
}
