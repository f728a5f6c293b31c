package driver

import (
	"context"

	"github.com/mkale/transitmate/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/mkale/transitmate/services/driver DriverUC

// DriverUC represents the driver identity usecase interface
type DriverUC interface {
	SignIn(ctx context.Context, driverID, password string) (*models.DriverSession, error)
	SignOut(ctx context.Context) error
	CurrentSession(ctx context.Context) (*models.DriverSession, error)
	RegisterDriver(ctx context.Context, req *models.RegisterDriverRequest) (*models.DriverProfile, error)
}
