package driver

import (
	"context"

	"github.com/mkale/transitmate/internal/pkg/models"
)

// DriverRepo owns the persisted driver account table and the single current
// session pointer. Loading an empty table seeds the fixture drivers.
type DriverRepo interface {
	LoadAccounts(ctx context.Context) (map[string]models.DriverAccount, error)
	SaveAccounts(ctx context.Context, accounts map[string]models.DriverAccount) error
	LoadCurrentSession(ctx context.Context) (*models.DriverSession, error)
	SaveCurrentSession(ctx context.Context, session *models.DriverSession) error
	ClearCurrentSession(ctx context.Context) error
}
