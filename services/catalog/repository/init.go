package repository

import (
	"github.com/mkale/transitmate/internal/pkg/store"
)

// TicketRepo persists per-rider ticket history through the key-value store
type TicketRepo struct {
	store store.Store
}

// NewTicketRepo creates a new ticket repository instance
func NewTicketRepo(kv store.Store) *TicketRepo {
	return &TicketRepo{store: kv}
}
