// Package newrelic wraps the optional telemetry collaborator. When disabled
// or misconfigured, initialization returns nil and every helper degrades to a
// no-op, so the rest of the system never branches on telemetry availability.
package newrelic

import (
	"github.com/mkale/transitmate/internal/pkg/logger"
	"github.com/mkale/transitmate/internal/pkg/models"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// InitNewRelic initializes the New Relic application based on configuration.
// Returns nil when telemetry is disabled or cannot be initialized.
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(configs.NewRelic.AppName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(configs.NewRelic.ForwardLogs),
		newrelic.ConfigAppLogDecoratingEnabled(true),
	)
	if err != nil {
		logger.Warn("Failed to initialize New Relic, continuing without telemetry",
			logger.Err(err))
		return nil
	}

	return nrApp
}
