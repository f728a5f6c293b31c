package rider

import (
	"context"

	"github.com/mkale/transitmate/internal/pkg/models"
)

// RiderRepo owns the persisted rider account table and the single current
// session pointer
type RiderRepo interface {
	LoadAccounts(ctx context.Context) (map[string]models.RiderAccount, error)
	SaveAccounts(ctx context.Context, accounts map[string]models.RiderAccount) error
	LoadCurrentSession(ctx context.Context) (*models.RiderSession, error)
	SaveCurrentSession(ctx context.Context, session *models.RiderSession) error
	ClearCurrentSession(ctx context.Context) error
}
