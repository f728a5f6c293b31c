package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mkale/transitmate/internal/pkg/logger"
	"github.com/mkale/transitmate/internal/pkg/models"
	"github.com/mkale/transitmate/internal/pkg/store"
	"golang.org/x/crypto/bcrypt"
)

// Fixture drivers provisioned on first run so the system is usable out of the
// box. Both sign in with "driver123".
var fixtureDrivers = []struct {
	driverID      string
	password      string
	name          string
	vehicleNumber string
	routeID       string
}{
	{"DRV001", "driver123", "John Driver", "MH-12-AB-1234", "42B"},
	{"DRV002", "driver123", "Jane Driver", "MH-12-CD-5678", "101"},
}

// LoadAccounts reads the driver account table, seeding the fixture drivers
// when no table exists yet
func (r *DriverRepo) LoadAccounts(ctx context.Context) (map[string]models.DriverAccount, error) {
	raw, err := r.store.Get(ctx, store.KeyDriverAccounts)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return r.seedAccounts(ctx)
		}
		return nil, fmt.Errorf("failed to load driver accounts: %w", err)
	}

	accounts := make(map[string]models.DriverAccount)
	if err := json.Unmarshal(raw, &accounts); err != nil {
		logger.Warn("Unparsable driver account table, starting empty",
			logger.Err(err))
		return make(map[string]models.DriverAccount), nil
	}
	return accounts, nil
}

func (r *DriverRepo) seedAccounts(ctx context.Context) (map[string]models.DriverAccount, error) {
	accounts := make(map[string]models.DriverAccount, len(fixtureDrivers))
	for _, fixture := range fixtureDrivers {
		hash, err := bcrypt.GenerateFromPassword([]byte(fixture.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash fixture password: %w", err)
		}
		accounts[fixture.driverID] = models.DriverAccount{
			DriverID:      fixture.driverID,
			PasswordHash:  string(hash),
			Name:          fixture.name,
			VehicleNumber: fixture.vehicleNumber,
			RouteID:       fixture.routeID,
			CreatedAt:     time.Now(),
		}
	}

	if err := r.SaveAccounts(ctx, accounts); err != nil {
		logger.Warn("Failed to persist seeded driver accounts", logger.Err(err))
	} else {
		logger.Info("Seeded fixture driver accounts",
			logger.Int("count", len(accounts)))
	}

	return accounts, nil
}

// SaveAccounts writes the full driver account table
func (r *DriverRepo) SaveAccounts(ctx context.Context, accounts map[string]models.DriverAccount) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to encode driver accounts: %w", err)
	}
	if err := r.store.Set(ctx, store.KeyDriverAccounts, raw); err != nil {
		return fmt.Errorf("failed to save driver accounts: %w", err)
	}
	return nil
}

// LoadCurrentSession reads the persisted session pointer. Absent or
// unparsable pointers read as no session.
func (r *DriverRepo) LoadCurrentSession(ctx context.Context) (*models.DriverSession, error) {
	raw, err := r.store.Get(ctx, store.KeyDriverSession)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load driver session: %w", err)
	}

	var session models.DriverSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, nil
	}
	return &session, nil
}

// SaveCurrentSession overwrites the session pointer
func (r *DriverRepo) SaveCurrentSession(ctx context.Context, session *models.DriverSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode driver session: %w", err)
	}
	if err := r.store.Set(ctx, store.KeyDriverSession, raw); err != nil {
		return fmt.Errorf("failed to save driver session: %w", err)
	}
	return nil
}

// ClearCurrentSession removes the session pointer
func (r *DriverRepo) ClearCurrentSession(ctx context.Context) error {
	if err := r.store.Delete(ctx, store.KeyDriverSession); err != nil {
		return fmt.Errorf("failed to clear driver session: %w", err)
	}
	return nil
}
