package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"rentfolio/internal/common"
	"rentfolio/internal/services"
	"rentfolio/internal/validation"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authService services.AuthService
}

// NewAuthHandlers creates a new auth handlers instance
func NewAuthHandlers(authService services.AuthService) *AuthHandlers {
	return &AuthHandlers{authService: authService}
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login exchanges email and password for a bearer token.
func (h *AuthHandlers) Login(c echo.Context) error {
	var payload validation.CredentialsPayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	token, err := h.authService.Login(c.Request().Context(), &payload)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return common.SendClientError(c, "Invalid email or password")
		}
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, LoginResponse{Token: token})
}
