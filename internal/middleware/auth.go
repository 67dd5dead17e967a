package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"rentfolio/internal/common"
)

// AuthClaims are the JWT claims carried by a bearer token: the principal id
// in the registered subject plus the admin flag.
type AuthClaims struct {
	IsAdmin bool `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Authenticated is the gate for routes requiring a valid principal. It
// verifies the bearer token and stores the principal on the request context.
func Authenticated(jwtSecret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(jwtSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(AuthClaims)
		},
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			claims, ok := token.Claims.(*AuthClaims)
			if !ok {
				return
			}
			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				return
			}
			ctx := common.WithPrincipal(c.Request().Context(), userID, claims.IsAdmin)
			c.SetRequest(c.Request().WithContext(ctx))
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or missing token")
		},
	})
}

// AdminOnly requires the authenticated principal to carry the admin flag.
// It must run after Authenticated.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !common.IsAdminFromContext(c.Request().Context()) {
				return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
			}
			return next(c)
		}
	}
}
