package repository

import (
	"github.com/mkale/transitmate/internal/pkg/store"
)

// RiderRepo persists rider accounts and the current session pointer through
// the key-value store
type RiderRepo struct {
	store store.Store
}

// NewRiderRepo creates a new rider repository instance
func NewRiderRepo(kv store.Store) *RiderRepo {
	return &RiderRepo{store: kv}
}
