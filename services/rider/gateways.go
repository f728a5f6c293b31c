package rider

import (
	"context"

	"github.com/mkale/transitmate/internal/pkg/models"
)

// IdentityGW is the capability-typed external identity provider. It is
// consulted before the local mock path on every identity call; the no-op
// implementation reports apperrors.ErrProviderNotConfigured, which triggers
// the transparent local fallback.
type IdentityGW interface {
	SignUp(ctx context.Context, username, email, password string) (*models.RiderSession, error)
	SignIn(ctx context.Context, email, password string) (*models.RiderSession, error)
	SignOut(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.RiderSession, error)
	SubscribeSessionChanges(cb func(*models.RiderSession)) (func(), error)
}
