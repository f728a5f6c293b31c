package catalog

import (
	"context"

	"github.com/mkale/transitmate/internal/pkg/models"
)

// TicketRepo owns per-rider ticket history
type TicketRepo interface {
	LoadTickets(ctx context.Context, email string) ([]models.Ticket, error)
	SaveTickets(ctx context.Context, email string, tickets []models.Ticket) error
}
