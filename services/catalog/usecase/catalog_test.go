package usecase

import (
	"context"
	"testing"

	"github.com/mkale/transitmate/internal/pkg/apperrors"
	"github.com/mkale/transitmate/internal/pkg/models"
	"github.com/mkale/transitmate/internal/pkg/store"
	catalogRepository "github.com/mkale/transitmate/services/catalog/repository"
	"github.com/mkale/transitmate/services/reports/gateway"
	reportsRepository "github.com/mkale/transitmate/services/reports/repository"
	reportsUsecase "github.com/mkale/transitmate/services/reports/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalogUC() (*CatalogUC, *reportsRepository.ReportsRepo) {
	kv := store.NewMemoryStore()
	reportsRepo := reportsRepository.NewReportsRepo(kv)
	reportsUC := reportsUsecase.NewReportsUC(reportsRepo, gateway.NewReportsGW(nil))
	return NewCatalogUC(catalogRepository.NewTicketRepo(kv), reportsUC), reportsRepo
}

func TestListModes(t *testing.T) {
	uc, _ := newTestCatalogUC()

	modes := uc.ListModes(context.Background())
	require.Len(t, modes, 4)
	assert.Equal(t, "bus", modes[0].ID)
	assert.Equal(t, "metro", modes[1].ID)
}

func TestListRouteOptions(t *testing.T) {
	uc, _ := newTestCatalogUC()

	options := uc.ListRouteOptions(context.Background())
	require.Len(t, options, 3)
	assert.Equal(t, "r1", options[0].ID)
	assert.Equal(t, 3735, options[0].Fare)
	assert.Equal(t, "Cheapest", options[1].Label)
	assert.Equal(t, 98, options[2].EcoScore)
}

func TestRouteStatus_ComposesLatestReports(t *testing.T) {
	uc, reportsRepo := newTestCatalogUC()
	ctx := context.Background()

	require.NoError(t, reportsRepo.SaveAll(ctx, []models.FieldReport{
		{
			ID:            "a",
			RouteID:       "42B",
			RouteName:     "Airport Express",
			DelayStatus:   models.DelayHeavilyDelayed,
			CrowdLevel:    models.CrowdHigh,
			Timestamp:     200,
			VehicleStatus: models.VehicleBreakdown,
			DelayReason:   "engine failure",
		},
		{
			ID:          "b",
			RouteID:     "42B",
			RouteName:   "Airport Express",
			DelayStatus: models.DelayOnTime,
			CrowdLevel:  models.CrowdLow,
			Timestamp:   300,
		},
	}))

	status, err := uc.RouteStatus(ctx, "42B")
	require.NoError(t, err)
	assert.Equal(t, models.DelayOnTime, status.DelayStatus)
	assert.Equal(t, models.CrowdLow, status.CrowdLevel)
	// Vehicle fields come from the newest status update even when a newer
	// legacy report exists
	assert.Equal(t, models.VehicleBreakdown, status.VehicleStatus)
	assert.Equal(t, "engine failure", status.DelayReason)
	assert.Equal(t, int64(300), status.ReportedAt)
}

func TestRouteStatus_UnreportedRoute(t *testing.T) {
	uc, _ := newTestCatalogUC()

	status, err := uc.RouteStatus(context.Background(), "999")
	require.NoError(t, err)
	assert.Equal(t, "999", status.RouteID)
	assert.Empty(t, status.DelayStatus)
	assert.Zero(t, status.ReportedAt)
}

func TestCheckout_MultipliesFare(t *testing.T) {
	uc, _ := newTestCatalogUC()

	ticket, err := uc.Checkout(context.Background(), "Asha@Example.com", &models.CheckoutRequest{
		RouteOptionID: "r2",
		Passengers:    3,
	})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", ticket.Email)
	assert.Equal(t, 1245*3, ticket.Fare)
	assert.Equal(t, TicketConfirmed, ticket.Status)
	assert.NotEmpty(t, ticket.TicketID)
}

func TestCheckout_UnknownOption(t *testing.T) {
	uc, _ := newTestCatalogUC()

	_, err := uc.Checkout(context.Background(), "asha@example.com", &models.CheckoutRequest{
		RouteOptionID: "r99",
		Passengers:    1,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCheckout_RequiresPassengers(t *testing.T) {
	uc, _ := newTestCatalogUC()

	_, err := uc.Checkout(context.Background(), "asha@example.com", &models.CheckoutRequest{
		RouteOptionID: "r1",
		Passengers:    0,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestTicketsFor_HistoryPerRider(t *testing.T) {
	uc, _ := newTestCatalogUC()
	ctx := context.Background()

	_, err := uc.Checkout(ctx, "asha@example.com", &models.CheckoutRequest{RouteOptionID: "r1", Passengers: 1})
	require.NoError(t, err)
	_, err = uc.Checkout(ctx, "asha@example.com", &models.CheckoutRequest{RouteOptionID: "r3", Passengers: 2})
	require.NoError(t, err)
	_, err = uc.Checkout(ctx, "ravi@example.com", &models.CheckoutRequest{RouteOptionID: "r2", Passengers: 1})
	require.NoError(t, err)

	tickets, err := uc.TicketsFor(ctx, "ASHA@example.com")
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, "r1", tickets[0].RouteOptionID)
	assert.Equal(t, 2490*2, tickets[1].Fare)

	tickets, err = uc.TicketsFor(ctx, "ravi@example.com")
	require.NoError(t, err)
	require.Len(t, tickets, 1)
}
