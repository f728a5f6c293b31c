package gateway

import (
	"context"

	"github.com/mkale/transitmate/internal/pkg/apperrors"
	"github.com/mkale/transitmate/internal/pkg/models"
)

// NoopIdentityGW stands in when no external identity provider is configured.
// Every identity call reports ErrProviderNotConfigured so the usecase falls
// back to local mock authentication within the same call.
type NoopIdentityGW struct{}

// NewNoopIdentityGW creates the null-object provider
func NewNoopIdentityGW() *NoopIdentityGW {
	return &NoopIdentityGW{}
}

// SignUp reports that no provider is configured
func (g *NoopIdentityGW) SignUp(ctx context.Context, username, email, password string) (*models.RiderSession, error) {
	return nil, apperrors.ErrProviderNotConfigured
}

// SignIn reports that no provider is configured
func (g *NoopIdentityGW) SignIn(ctx context.Context, email, password string) (*models.RiderSession, error) {
	return nil, apperrors.ErrProviderNotConfigured
}

// SignOut reports that no provider is configured
func (g *NoopIdentityGW) SignOut(ctx context.Context) error {
	return apperrors.ErrProviderNotConfigured
}

// CurrentUser reports that no provider is configured
func (g *NoopIdentityGW) CurrentUser(ctx context.Context) (*models.RiderSession, error) {
	return nil, apperrors.ErrProviderNotConfigured
}

// SubscribeSessionChanges is a no-op without a provider; the nil unsubscribe
// tells callers no push channel exists
func (g *NoopIdentityGW) SubscribeSessionChanges(cb func(*models.RiderSession)) (func(), error) {
	return nil, nil
}
