package newrelic

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middleware returns the Echo instrumentation middleware for the application,
// or nil when telemetry is disabled
func Middleware(nrApp *newrelic.Application) echo.MiddlewareFunc {
	if nrApp == nil {
		return nil
	}
	return nrecho.Middleware(nrApp)
}

// FromEchoContext extracts the New Relic transaction from an Echo context
func FromEchoContext(c echo.Context) *newrelic.Transaction {
	return nrecho.FromContext(c)
}

// FromContext extracts the New Relic transaction from a standard context
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// WithSegment executes fn within a named segment when a transaction is active
func WithSegment(ctx context.Context, segmentName string, fn func() error) error {
	txn := FromContext(ctx)
	if txn != nil {
		segment := txn.StartSegment(segmentName)
		defer segment.End()
	}
	return fn()
}
