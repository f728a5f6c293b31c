package middleware

import (
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/mkale/transitmate/internal/utils"
)

// RequireRole rejects requests whose validated token does not carry the given
// role claim. Expects the JWT middleware to have run first.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return utils.UnauthorizedResponse(c, "Authentication required")
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok || claims["role"] != role {
				return utils.ForbiddenResponse(c, "Insufficient permissions")
			}
			return next(c)
		}
	}
}
