package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mkale/transitmate/internal/pkg/logger"
	"github.com/mkale/transitmate/internal/pkg/models"
	"github.com/mkale/transitmate/internal/pkg/store"
	"github.com/mkale/transitmate/internal/utils"
)

func ticketKey(email string) string {
	return store.KeyTicketsPrefix + utils.NormalizeEmail(email)
}

// LoadTickets reads a rider's ticket history, empty when none exists
func (r *TicketRepo) LoadTickets(ctx context.Context, email string) ([]models.Ticket, error) {
	raw, err := r.store.Get(ctx, ticketKey(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []models.Ticket{}, nil
		}
		return nil, fmt.Errorf("failed to load tickets: %w", err)
	}

	var tickets []models.Ticket
	if err := json.Unmarshal(raw, &tickets); err != nil {
		logger.Warn("Unparsable ticket history, starting empty", logger.Err(err))
		return []models.Ticket{}, nil
	}
	return tickets, nil
}

// SaveTickets writes a rider's full ticket history
func (r *TicketRepo) SaveTickets(ctx context.Context, email string, tickets []models.Ticket) error {
	raw, err := json.Marshal(tickets)
	if err != nil {
		return fmt.Errorf("failed to encode tickets: %w", err)
	}
	if err := r.store.Set(ctx, ticketKey(email), raw); err != nil {
		return fmt.Errorf("failed to save tickets: %w", err)
	}
	return nil
}
