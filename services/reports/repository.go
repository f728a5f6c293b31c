package reports

import (
	"context"

	"github.com/mkale/transitmate/internal/pkg/models"
)

// ReportsRepo owns the append-only field report log
type ReportsRepo interface {
	LoadAll(ctx context.Context) ([]models.FieldReport, error)
	SaveAll(ctx context.Context, reports []models.FieldReport) error
	Clear(ctx context.Context) error
}
