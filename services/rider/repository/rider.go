package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mkale/transitmate/internal/pkg/logger"
	"github.com/mkale/transitmate/internal/pkg/models"
	"github.com/mkale/transitmate/internal/pkg/store"
)

// LoadAccounts reads the rider account table. An absent or unparsable table
// yields an empty one, matching the forgiving load behavior of the storage
// format.
func (r *RiderRepo) LoadAccounts(ctx context.Context) (map[string]models.RiderAccount, error) {
	raw, err := r.store.Get(ctx, store.KeyRiderAccounts)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return make(map[string]models.RiderAccount), nil
		}
		return nil, fmt.Errorf("failed to load rider accounts: %w", err)
	}

	accounts := make(map[string]models.RiderAccount)
	if err := json.Unmarshal(raw, &accounts); err != nil {
		logger.Warn("Unparsable rider account table, starting empty",
			logger.Err(err))
		return make(map[string]models.RiderAccount), nil
	}
	return accounts, nil
}

// SaveAccounts writes the full rider account table
func (r *RiderRepo) SaveAccounts(ctx context.Context, accounts map[string]models.RiderAccount) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to encode rider accounts: %w", err)
	}
	if err := r.store.Set(ctx, store.KeyRiderAccounts, raw); err != nil {
		return fmt.Errorf("failed to save rider accounts: %w", err)
	}
	return nil
}

// LoadCurrentSession reads the persisted session pointer. Absent or
// unparsable pointers read as no session.
func (r *RiderRepo) LoadCurrentSession(ctx context.Context) (*models.RiderSession, error) {
	raw, err := r.store.Get(ctx, store.KeyRiderSession)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load rider session: %w", err)
	}

	var session models.RiderSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, nil
	}
	return &session, nil
}

// SaveCurrentSession overwrites the session pointer. Only the last session
// written survives a restart.
func (r *RiderRepo) SaveCurrentSession(ctx context.Context, session *models.RiderSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode rider session: %w", err)
	}
	if err := r.store.Set(ctx, store.KeyRiderSession, raw); err != nil {
		return fmt.Errorf("failed to save rider session: %w", err)
	}
	return nil
}

// ClearCurrentSession removes the session pointer
func (r *RiderRepo) ClearCurrentSession(ctx context.Context) error {
	if err := r.store.Delete(ctx, store.KeyRiderSession); err != nil {
		return fmt.Errorf("failed to clear rider session: %w", err)
	}
	return nil
}
