package rider

import (
	"context"

	"github.com/mkale/transitmate/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/mkale/transitmate/services/rider RiderUC

// RiderUC represents the rider identity usecase interface
type RiderUC interface {
	SignUp(ctx context.Context, username, email, password string) (*models.RiderSession, error)
	SignIn(ctx context.Context, email, password string) (*models.RiderSession, error)
	SignOut(ctx context.Context) error
	CurrentSession(ctx context.Context) (*models.RiderSession, error)
	SubscribeSessionChanges(cb func(*models.RiderSession)) (func(), error)
}
