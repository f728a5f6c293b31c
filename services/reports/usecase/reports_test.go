package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/mkale/transitmate/internal/pkg/apperrors"
	"github.com/mkale/transitmate/internal/pkg/models"
	"github.com/mkale/transitmate/internal/pkg/store"
	"github.com/mkale/transitmate/services/reports/gateway"
	"github.com/mkale/transitmate/services/reports/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReportsUC() (*ReportsUC, *repository.ReportsRepo) {
	kv := store.NewMemoryStore()
	repo := repository.NewReportsRepo(kv)
	return NewReportsUC(repo, gateway.NewReportsGW(nil)), repo
}

func TestSubmitLegacyReport(t *testing.T) {
	uc, _ := newTestReportsUC()

	report, err := uc.SubmitLegacyReport(context.Background(), &models.LegacyReportRequest{
		RouteID:     "42B",
		RouteName:   "Airport Express",
		DelayStatus: models.DelayDelayed,
		CrowdLevel:  models.CrowdHigh,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(report.ID, "report_"))
	assert.Equal(t, models.DelayDelayed, report.DelayStatus)
	assert.Empty(t, report.VehicleStatus)
	assert.NotZero(t, report.Timestamp)

	log, err := uc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, report.ID, log[0].ID)
}

func TestSubmitLegacyReport_InvalidEnums(t *testing.T) {
	uc, _ := newTestReportsUC()
	ctx := context.Background()

	_, err := uc.SubmitLegacyReport(ctx, &models.LegacyReportRequest{
		RouteID:     "42B",
		DelayStatus: "sideways",
		CrowdLevel:  models.CrowdLow,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = uc.SubmitLegacyReport(ctx, &models.LegacyReportRequest{
		RouteID:     "42B",
		DelayStatus: models.DelayOnTime,
		CrowdLevel:  "packed",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = uc.SubmitLegacyReport(ctx, &models.LegacyReportRequest{
		DelayStatus: models.DelayOnTime,
		CrowdLevel:  models.CrowdLow,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSubmitStatusUpdate_DerivesDelayStatus(t *testing.T) {
	uc, _ := newTestReportsUC()
	ctx := context.Background()

	report, err := uc.SubmitStatusUpdate(ctx, &models.StatusUpdateRequest{
		RouteID:       "42B",
		RouteName:     "Airport Express",
		VehicleNumber: "MH-12-AB-1234",
		VehicleStatus: models.VehicleBreakdown,
		CrowdLevel:    models.CrowdMedium,
		DriverID:      "DRV001",
		DelayReason:   "engine failure",
	})
	require.NoError(t, err)
	assert.Equal(t, models.DelayHeavilyDelayed, report.DelayStatus)
	assert.Equal(t, models.VehicleBreakdown, report.VehicleStatus)
	assert.Equal(t, "engine failure", report.DelayReason)

	report, err = uc.SubmitStatusUpdate(ctx, &models.StatusUpdateRequest{
		RouteID:       "42B",
		VehicleStatus: models.VehicleDelayed,
		CrowdLevel:    models.CrowdLow,
		DriverID:      "DRV001",
	})
	require.NoError(t, err)
	assert.Equal(t, models.DelayDelayed, report.DelayStatus)

	report, err = uc.SubmitStatusUpdate(ctx, &models.StatusUpdateRequest{
		RouteID:       "42B",
		VehicleStatus: models.VehicleOnTime,
		CrowdLevel:    models.CrowdLow,
		DriverID:      "DRV001",
	})
	require.NoError(t, err)
	assert.Equal(t, models.DelayOnTime, report.DelayStatus)
}

func TestSubmitStatusUpdate_RequiresDriver(t *testing.T) {
	uc, _ := newTestReportsUC()

	_, err := uc.SubmitStatusUpdate(context.Background(), &models.StatusUpdateRequest{
		RouteID:       "42B",
		VehicleStatus: models.VehicleOnTime,
		CrowdLevel:    models.CrowdLow,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func seedReports(t *testing.T, repo *repository.ReportsRepo, reports []models.FieldReport) {
	t.Helper()
	require.NoError(t, repo.SaveAll(context.Background(), reports))
}

func TestByRoute_NewestFirst(t *testing.T) {
	uc, repo := newTestReportsUC()
	seedReports(t, repo, []models.FieldReport{
		{ID: "a", RouteID: "42B", Timestamp: 100},
		{ID: "b", RouteID: "101", Timestamp: 200},
		{ID: "c", RouteID: "42B", Timestamp: 300},
		{ID: "d", RouteID: "42B", Timestamp: 200},
	})

	matched, err := uc.ByRoute(context.Background(), "42B")
	require.NoError(t, err)
	require.Len(t, matched, 3)
	assert.Equal(t, "c", matched[0].ID)
	assert.Equal(t, "d", matched[1].ID)
	assert.Equal(t, "a", matched[2].ID)
}

func TestLatestForRoute(t *testing.T) {
	uc, repo := newTestReportsUC()
	seedReports(t, repo, []models.FieldReport{
		{ID: "a", RouteID: "42B", Timestamp: 100},
		{ID: "b", RouteID: "42B", Timestamp: 200},
		{ID: "c", RouteID: "42B", Timestamp: 300},
	})

	latest, err := uc.LatestForRoute(context.Background(), "42B")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "c", latest.ID)

	latest, err = uc.LatestForRoute(context.Background(), "999")
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestLatestForRoute_TieResolvesToLaterEntry(t *testing.T) {
	uc, repo := newTestReportsUC()
	seedReports(t, repo, []models.FieldReport{
		{ID: "a", RouteID: "42B", Timestamp: 100},
		{ID: "b", RouteID: "42B", Timestamp: 100},
	})

	latest, err := uc.LatestForRoute(context.Background(), "42B")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "b", latest.ID)
}

func TestLatestStatusUpdate_SkipsLegacyReports(t *testing.T) {
	uc, repo := newTestReportsUC()
	seedReports(t, repo, []models.FieldReport{
		{ID: "a", RouteID: "42B", Timestamp: 100, VehicleStatus: models.VehicleDelayed},
		{ID: "b", RouteID: "42B", Timestamp: 300},
	})

	latest, err := uc.LatestStatusUpdateForRoute(context.Background(), "42B")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "a", latest.ID)

	status, err := uc.LatestVehicleStatusForRoute(context.Background(), "42B")
	require.NoError(t, err)
	assert.Equal(t, models.VehicleDelayed, status)
}

func TestLatestCrowdLevelForRoute(t *testing.T) {
	uc, repo := newTestReportsUC()
	seedReports(t, repo, []models.FieldReport{
		{ID: "a", RouteID: "42B", Timestamp: 100, CrowdLevel: models.CrowdLow},
		{ID: "b", RouteID: "42B", Timestamp: 200, CrowdLevel: models.CrowdOvercrowded},
	})

	level, err := uc.LatestCrowdLevelForRoute(context.Background(), "42B")
	require.NoError(t, err)
	assert.Equal(t, models.CrowdOvercrowded, level)

	level, err = uc.LatestCrowdLevelForRoute(context.Background(), "999")
	require.NoError(t, err)
	assert.Empty(t, level)
}

func TestClearAll(t *testing.T) {
	uc, repo := newTestReportsUC()
	seedReports(t, repo, []models.FieldReport{
		{ID: "a", RouteID: "42B", Timestamp: 100},
	})

	require.NoError(t, uc.ClearAll(context.Background()))

	log, err := uc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, log)
}
