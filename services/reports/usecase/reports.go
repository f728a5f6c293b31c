package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mkale/transitmate/internal/pkg/apperrors"
	"github.com/mkale/transitmate/internal/pkg/logger"
	"github.com/mkale/transitmate/internal/pkg/models"
	"github.com/mkale/transitmate/internal/utils"
)

// SubmitLegacyReport appends a report carrying a caller-chosen delay status
// and no vehicle fields
func (u *ReportsUC) SubmitLegacyReport(ctx context.Context, req *models.LegacyReportRequest) (*models.FieldReport, error) {
	if req.RouteID == "" {
		return nil, fmt.Errorf("route ID is required: %w", apperrors.ErrValidation)
	}
	if !models.ValidDelayStatus(req.DelayStatus) {
		return nil, fmt.Errorf("unknown delay status %q: %w", req.DelayStatus, apperrors.ErrValidation)
	}
	if !models.ValidCrowdLevel(req.CrowdLevel) {
		return nil, fmt.Errorf("unknown crowd level %q: %w", req.CrowdLevel, apperrors.ErrValidation)
	}

	now := time.Now()
	report := models.FieldReport{
		ID:          utils.NewReportID(now),
		RouteID:     req.RouteID,
		RouteName:   req.RouteName,
		DelayStatus: req.DelayStatus,
		CrowdLevel:  req.CrowdLevel,
		Timestamp:   now.UnixMilli(),
		DriverID:    req.DriverID,
	}

	u.appendReport(ctx, &report)
	return &report, nil
}

// SubmitStatusUpdate appends a vehicle status update. The delay status is
// derived from the vehicle status, never taken from the caller.
func (u *ReportsUC) SubmitStatusUpdate(ctx context.Context, req *models.StatusUpdateRequest) (*models.FieldReport, error) {
	if req.RouteID == "" {
		return nil, fmt.Errorf("route ID is required: %w", apperrors.ErrValidation)
	}
	if req.DriverID == "" {
		return nil, fmt.Errorf("driver ID is required: %w", apperrors.ErrValidation)
	}
	if !models.ValidVehicleStatus(req.VehicleStatus) {
		return nil, fmt.Errorf("unknown vehicle status %q: %w", req.VehicleStatus, apperrors.ErrValidation)
	}
	if !models.ValidCrowdLevel(req.CrowdLevel) {
		return nil, fmt.Errorf("unknown crowd level %q: %w", req.CrowdLevel, apperrors.ErrValidation)
	}

	now := time.Now()
	report := models.FieldReport{
		ID:            utils.NewReportID(now),
		RouteID:       req.RouteID,
		RouteName:     req.RouteName,
		DelayStatus:   models.DelayStatusFor(req.VehicleStatus),
		CrowdLevel:    req.CrowdLevel,
		Timestamp:     now.UnixMilli(),
		DriverID:      req.DriverID,
		VehicleNumber: req.VehicleNumber,
		VehicleStatus: req.VehicleStatus,
		DelayReason:   req.DelayReason,
	}

	u.appendReport(ctx, &report)
	return &report, nil
}

// appendReport adds the report to the persisted log and broadcasts it. Both
// are best effort: the caller already holds the accepted report.
func (u *ReportsUC) appendReport(ctx context.Context, report *models.FieldReport) {
	log, err := u.reportsRepo.LoadAll(ctx)
	if err != nil {
		logger.Warn("Failed to load report log, report not persisted",
			logger.String("report_id", report.ID),
			logger.Err(err))
		log = nil
	} else {
		log = append(log, *report)
		if err := u.reportsRepo.SaveAll(ctx, log); err != nil {
			logger.Warn("Failed to persist report log",
				logger.String("report_id", report.ID),
				logger.Err(err))
		}
	}

	if err := u.reportsGW.PublishReportCreated(report); err != nil {
		logger.Warn("Failed to publish report event",
			logger.String("report_id", report.ID),
			logger.Err(err))
	}
}

// ListAll returns the full report log in insertion order
func (u *ReportsUC) ListAll(ctx context.Context) ([]models.FieldReport, error) {
	return u.reportsRepo.LoadAll(ctx)
}

// ByRoute returns a route's reports, newest first. Reports sharing a
// timestamp keep their log order.
func (u *ReportsUC) ByRoute(ctx context.Context, routeID string) ([]models.FieldReport, error) {
	log, err := u.reportsRepo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.FieldReport, 0)
	for _, report := range log {
		if report.RouteID == routeID {
			matched = append(matched, report)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp > matched[j].Timestamp
	})
	return matched, nil
}

// LatestForRoute returns the newest report for a route, nil when the route
// has none. Timestamp ties resolve to the later log entry.
func (u *ReportsUC) LatestForRoute(ctx context.Context, routeID string) (*models.FieldReport, error) {
	return u.latestMatching(ctx, routeID, func(models.FieldReport) bool { return true })
}

// LatestStatusUpdateForRoute returns the newest report carrying a vehicle
// status, skipping reports submitted without vehicle fields
func (u *ReportsUC) LatestStatusUpdateForRoute(ctx context.Context, routeID string) (*models.FieldReport, error) {
	return u.latestMatching(ctx, routeID, func(r models.FieldReport) bool {
		return r.VehicleStatus != ""
	})
}

func (u *ReportsUC) latestMatching(ctx context.Context, routeID string, match func(models.FieldReport) bool) (*models.FieldReport, error) {
	log, err := u.reportsRepo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	var latest *models.FieldReport
	for i := range log {
		report := &log[i]
		if report.RouteID != routeID || !match(*report) {
			continue
		}
		if latest == nil || report.Timestamp >= latest.Timestamp {
			latest = report
		}
	}
	return latest, nil
}

// LatestCrowdLevelForRoute returns the crowd level of the route's newest
// report, empty when unreported
func (u *ReportsUC) LatestCrowdLevelForRoute(ctx context.Context, routeID string) (models.CrowdLevel, error) {
	latest, err := u.LatestForRoute(ctx, routeID)
	if err != nil || latest == nil {
		return "", err
	}
	return latest.CrowdLevel, nil
}

// LatestVehicleStatusForRoute returns the vehicle status of the route's
// newest status update, empty when unreported
func (u *ReportsUC) LatestVehicleStatusForRoute(ctx context.Context, routeID string) (models.VehicleStatus, error) {
	latest, err := u.LatestStatusUpdateForRoute(ctx, routeID)
	if err != nil || latest == nil {
		return "", err
	}
	return latest.VehicleStatus, nil
}

// ClearAll wipes the report log
func (u *ReportsUC) ClearAll(ctx context.Context) error {
	if err := u.reportsRepo.Clear(ctx); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	logger.Info("Cleared report log")
	return nil
}
