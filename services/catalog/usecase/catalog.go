package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkale/transitmate/internal/pkg/apperrors"
	"github.com/mkale/transitmate/internal/pkg/logger"
	"github.com/mkale/transitmate/internal/pkg/models"
	"github.com/mkale/transitmate/internal/utils"
	"github.com/mkale/transitmate/services/catalog"
)

// TicketConfirmed is the only ticket status: checkout is simulated and
// succeeds immediately
const TicketConfirmed = "confirmed"

// ListModes returns the fixed transport mode catalog
func (u *CatalogUC) ListModes(ctx context.Context) []models.TransportMode {
	return catalog.Modes
}

// ListRouteOptions returns the fixed trip option catalog
func (u *CatalogUC) ListRouteOptions(ctx context.Context) []models.RouteOption {
	return catalog.RouteOptions
}

// RouteStatus composes a route's latest reported condition. A route with no
// reports yields a status carrying only the route ID.
func (u *CatalogUC) RouteStatus(ctx context.Context, routeID string) (*models.RouteStatus, error) {
	if routeID == "" {
		return nil, fmt.Errorf("route ID is required: %w", apperrors.ErrValidation)
	}

	status := &models.RouteStatus{RouteID: routeID}

	latest, err := u.reportsUC.LatestForRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		status.RouteName = latest.RouteName
		status.DelayStatus = latest.DelayStatus
		status.CrowdLevel = latest.CrowdLevel
		status.ReportedAt = latest.Timestamp
	}

	update, err := u.reportsUC.LatestStatusUpdateForRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}
	if update != nil {
		status.VehicleStatus = update.VehicleStatus
		status.DelayReason = update.DelayReason
	}

	return status, nil
}

// Checkout issues a confirmed ticket for a route option. No payment is
// processed.
func (u *CatalogUC) Checkout(ctx context.Context, email string, req *models.CheckoutRequest) (*models.Ticket, error) {
	normalized := utils.NormalizeEmail(email)
	if normalized == "" {
		return nil, fmt.Errorf("email is required: %w", apperrors.ErrValidation)
	}
	if req.Passengers < 1 {
		return nil, fmt.Errorf("at least one passenger is required: %w", apperrors.ErrValidation)
	}

	option := catalog.RouteOptionByID(req.RouteOptionID)
	if option == nil {
		return nil, fmt.Errorf("unknown route option %q: %w", req.RouteOptionID, apperrors.ErrValidation)
	}

	ticket := models.Ticket{
		TicketID:      uuid.New().String(),
		Email:         normalized,
		RouteOptionID: option.ID,
		Passengers:    req.Passengers,
		Fare:          option.Fare * req.Passengers,
		Status:        TicketConfirmed,
		IssuedAt:      time.Now(),
	}

	tickets, err := u.ticketRepo.LoadTickets(ctx, normalized)
	if err != nil {
		logger.Warn("Failed to load ticket history, ticket not persisted",
			logger.String("ticket_id", ticket.TicketID),
			logger.Err(err))
		return &ticket, nil
	}

	tickets = append(tickets, ticket)
	if err := u.ticketRepo.SaveTickets(ctx, normalized, tickets); err != nil {
		logger.Warn("Failed to persist ticket history",
			logger.String("ticket_id", ticket.TicketID),
			logger.Err(err))
	}

	return &ticket, nil
}

// TicketsFor returns a rider's ticket history
func (u *CatalogUC) TicketsFor(ctx context.Context, email string) ([]models.Ticket, error) {
	normalized := utils.NormalizeEmail(email)
	if normalized == "" {
		return nil, fmt.Errorf("email is required: %w", apperrors.ErrValidation)
	}
	return u.ticketRepo.LoadTickets(ctx, normalized)
}
