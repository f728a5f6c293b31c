package repository

import (
	"github.com/mkale/transitmate/internal/pkg/store"
)

// DriverRepo persists driver accounts and the current session pointer through
// the key-value store
type DriverRepo struct {
	store store.Store
}

// NewDriverRepo creates a new driver repository instance
func NewDriverRepo(kv store.Store) *DriverRepo {
	return &DriverRepo{store: kv}
}
