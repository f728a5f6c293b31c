package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mkale/transitmate/internal/utils"
)

// APIKeyHeader carries the administrative API key
const APIKeyHeader = "X-API-Key"

// ValidateAPIKey guards administrative routes with a shared API key. When no
// key is configured, admin routes are rejected outright.
func ValidateAPIKey(configuredKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if configuredKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusForbidden, "Admin API is disabled")
			}

			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			if subtle.ConstantTimeCompare([]byte(apiKey), []byte(configuredKey)) != 1 {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
