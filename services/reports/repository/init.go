package repository

import (
	"github.com/mkale/transitmate/internal/pkg/store"
)

// ReportsRepo persists the field report log through the key-value store
type ReportsRepo struct {
	store store.Store
}

// NewReportsRepo creates a new reports repository instance
func NewReportsRepo(kv store.Store) *ReportsRepo {
	return &ReportsRepo{store: kv}
}
