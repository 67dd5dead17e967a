package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"rentfolio/internal/common"
	"rentfolio/internal/services"
	"rentfolio/internal/validation"
)

// UserHandlers handles user registration and profile requests
type UserHandlers struct {
	userService services.UserService
	authService services.AuthService
}

// NewUserHandlers creates a new user handlers instance
func NewUserHandlers(userService services.UserService, authService services.AuthService) *UserHandlers {
	return &UserHandlers{
		userService: userService,
		authService: authService,
	}
}

// Register creates a user account. The new user's token is returned in the
// x-auth-token header so registration doubles as a login.
func (h *UserHandlers) Register(c echo.Context) error {
	var payload validation.UserPayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	user, err := h.userService.Register(c.Request().Context(), &payload)
	if err != nil {
		return common.SendError(c, err)
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		logrus.WithError(err).Error("token generation failed after registration")
		return common.SendServerError(c, "Failed to generate token")
	}

	c.Response().Header().Set("x-auth-token", token)
	return c.JSON(http.StatusOK, user)
}

// Me returns the authenticated principal's profile.
func (h *UserHandlers) Me(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	user, err := h.userService.GetByID(ctx, userID)
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}
