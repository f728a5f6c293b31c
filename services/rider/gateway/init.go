package gateway

import (
	"github.com/mkale/transitmate/internal/pkg/models"
	natspkg "github.com/mkale/transitmate/internal/pkg/nats"
	"github.com/mkale/transitmate/services/rider"
)

// NewIdentityGW selects the external identity provider implementation at
// startup: the HTTP gateway when a base URL is configured, otherwise the
// no-op provider whose "not configured" signal routes every call to the local
// mock path.
func NewIdentityGW(cfg *models.Config, natsClient *natspkg.Client) rider.IdentityGW {
	if cfg.Provider.BaseURL == "" {
		return NewNoopIdentityGW()
	}
	return NewHTTPIdentityGW(cfg, natsClient)
}
