package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"rentfolio/internal/common"
	"rentfolio/internal/services"
	"rentfolio/internal/validation"
)

// TenantHandlers handles tenant-related HTTP requests
type TenantHandlers struct {
	tenantService services.TenantService
}

// NewTenantHandlers creates a new tenant handlers instance
func NewTenantHandlers(tenantService services.TenantService) *TenantHandlers {
	return &TenantHandlers{tenantService: tenantService}
}

// ListTenants returns all tenants ordered by display name.
func (h *TenantHandlers) ListTenants(c echo.Context) error {
	tenants, err := h.tenantService.List(c.Request().Context())
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, tenants)
}

// GetTenant returns a single tenant.
func (h *TenantHandlers) GetTenant(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.SendNotFoundError(c, "Tenant")
	}

	tenant, err := h.tenantService.GetByID(c.Request().Context(), id)
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, tenant)
}

// CreateTenant creates a tenant.
func (h *TenantHandlers) CreateTenant(c echo.Context) error {
	var payload validation.TenantPayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	tenant, err := h.tenantService.Create(c.Request().Context(), &payload)
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, tenant)
}

// UpdateTenant replaces the tenant field set.
func (h *TenantHandlers) UpdateTenant(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.SendNotFoundError(c, "Tenant")
	}

	var payload validation.TenantPayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	tenant, err := h.tenantService.Update(c.Request().Context(), id, &payload)
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, tenant)
}

// DeleteTenant removes the tenant. Existing rentals keep their snapshot copy.
func (h *TenantHandlers) DeleteTenant(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.SendNotFoundError(c, "Tenant")
	}

	ctx := c.Request().Context()
	tenant, err := h.tenantService.GetByID(ctx, id)
	if err != nil {
		return common.SendError(c, err)
	}

	if err := h.tenantService.Delete(ctx, id); err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, tenant)
}
