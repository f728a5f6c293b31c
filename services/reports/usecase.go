package reports

import (
	"context"

	"github.com/mkale/transitmate/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/mkale/transitmate/services/reports ReportsUC

// ReportsUC represents the field report usecase interface
type ReportsUC interface {
	SubmitLegacyReport(ctx context.Context, req *models.LegacyReportRequest) (*models.FieldReport, error)
	SubmitStatusUpdate(ctx context.Context, req *models.StatusUpdateRequest) (*models.FieldReport, error)
	ListAll(ctx context.Context) ([]models.FieldReport, error)
	ByRoute(ctx context.Context, routeID string) ([]models.FieldReport, error)
	LatestForRoute(ctx context.Context, routeID string) (*models.FieldReport, error)
	LatestStatusUpdateForRoute(ctx context.Context, routeID string) (*models.FieldReport, error)
	LatestCrowdLevelForRoute(ctx context.Context, routeID string) (models.CrowdLevel, error)
	LatestVehicleStatusForRoute(ctx context.Context, routeID string) (models.VehicleStatus, error)
	ClearAll(ctx context.Context) error
}
