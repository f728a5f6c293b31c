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

// LoadAll reads the full report log in insertion order. An absent or
// unparsable log reads as empty.
func (r *ReportsRepo) LoadAll(ctx context.Context) ([]models.FieldReport, error) {
	raw, err := r.store.Get(ctx, store.KeyReportsLog)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []models.FieldReport{}, nil
		}
		return nil, fmt.Errorf("failed to load report log: %w", err)
	}

	var reports []models.FieldReport
	if err := json.Unmarshal(raw, &reports); err != nil {
		logger.Warn("Unparsable report log, starting empty", logger.Err(err))
		return []models.FieldReport{}, nil
	}
	return reports, nil
}

// SaveAll writes the full report log
func (r *ReportsRepo) SaveAll(ctx context.Context, reports []models.FieldReport) error {
	raw, err := json.Marshal(reports)
	if err != nil {
		return fmt.Errorf("failed to encode report log: %w", err)
	}
	if err := r.store.Set(ctx, store.KeyReportsLog, raw); err != nil {
		return fmt.Errorf("failed to save report log: %w", err)
	}
	return nil
}

// Clear removes the report log
func (r *ReportsRepo) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, store.KeyReportsLog); err != nil {
		return fmt.Errorf("failed to clear report log: %w", err)
	}
	return nil
}
