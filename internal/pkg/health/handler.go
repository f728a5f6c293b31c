package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// CheckFunc adapts a function to the HealthChecker interface
type CheckFunc func(ctx context.Context) error

// CheckHealth runs the wrapped function
func (f CheckFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

type healthResponse struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// RegisterHealthEndpoints registers liveness and readiness endpoints.
// /health always answers ok; /health/ready runs the dependency checkers.
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, checkers map[string]HealthChecker) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, healthResponse{
			Status:    "ok",
			Service:   serviceName,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	})

	e.GET("/health/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		status := http.StatusOK
		checks := make(map[string]string, len(checkers))
		for name, checker := range checkers {
			if err := checker.CheckHealth(ctx); err != nil {
				checks[name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			checks[name] = "ok"
		}

		state := "ok"
		if status != http.StatusOK {
			state = "degraded"
		}

		return c.JSON(status, healthResponse{
			Status:    state,
			Service:   serviceName,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Checks:    checks,
		})
	})
}
