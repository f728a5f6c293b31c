package catalog

import (
	"context"

	"github.com/mkale/transitmate/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/mkale/transitmate/services/catalog CatalogUC

// CatalogUC represents the route catalog and ticketing usecase interface
type CatalogUC interface {
	ListModes(ctx context.Context) []models.TransportMode
	ListRouteOptions(ctx context.Context) []models.RouteOption
	RouteStatus(ctx context.Context, routeID string) (*models.RouteStatus, error)
	Checkout(ctx context.Context, email string, req *models.CheckoutRequest) (*models.Ticket, error)
	TicketsFor(ctx context.Context, email string) ([]models.Ticket, error)
}
