package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkale/transitmate/internal/pkg/apperrors"
	jwtpkg "github.com/mkale/transitmate/internal/pkg/jwt"
	"github.com/mkale/transitmate/internal/pkg/logger"
	"github.com/mkale/transitmate/internal/pkg/models"
	"github.com/mkale/transitmate/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// SignIn authenticates a driver by normalized driver ID, reusing the existing
// in-memory session for that driver when one exists
func (u *DriverUC) SignIn(ctx context.Context, driverID, password string) (*models.DriverSession, error) {
	normalized := utils.NormalizeDriverID(driverID)
	if normalized == "" || password == "" {
		return nil, fmt.Errorf("driver ID and password are required: %w", apperrors.ErrValidation)
	}

	accounts, err := u.driverRepo.LoadAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	account, exists := accounts[normalized]
	if !exists {
		return nil, fmt.Errorf("sign in %s: %w", normalized, apperrors.ErrInvalidCredentials)
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, fmt.Errorf("sign in %s: %w", normalized, apperrors.ErrInvalidCredentials)
	}

	if existing := u.sessionFor(normalized); existing != nil {
		if err := u.driverRepo.SaveCurrentSession(ctx, existing); err != nil {
			logger.Warn("Failed to persist driver session",
				logger.String("driver_id", normalized),
				logger.Err(err))
		}
		return existing, nil
	}

	token, expiresAt, err := jwtpkg.GenerateToken(normalized, jwtpkg.RoleDriver, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	session := &models.DriverSession{
		SessionID:     uuid.New().String(),
		DriverID:      normalized,
		Name:          account.Name,
		VehicleNumber: account.VehicleNumber,
		RouteID:       account.RouteID,
		Token:         token,
		ExpiresAt:     expiresAt,
	}

	u.putSession(session)
	if err := u.driverRepo.SaveCurrentSession(ctx, session); err != nil {
		logger.Warn("Failed to persist driver session",
			logger.String("driver_id", normalized),
			logger.Err(err))
	}

	return session, nil
}

// SignOut clears the current session pointer and drops every in-memory driver
// session. Best effort: persistence errors are swallowed.
func (u *DriverUC) SignOut(ctx context.Context) error {
	if err := u.driverRepo.ClearCurrentSession(ctx); err != nil {
		logger.Warn("Failed to clear driver session pointer", logger.Err(err))
	}
	u.dropSessions()
	return nil
}

// CurrentSession reads the persisted session pointer
func (u *DriverUC) CurrentSession(ctx context.Context) (*models.DriverSession, error) {
	return u.driverRepo.LoadCurrentSession(ctx)
}

// RegisterDriver provisions a driver account for administrative use
func (u *DriverUC) RegisterDriver(ctx context.Context, req *models.RegisterDriverRequest) (*models.DriverProfile, error) {
	normalized := utils.NormalizeDriverID(req.DriverID)
	if normalized == "" {
		return nil, fmt.Errorf("driver ID is required: %w", apperrors.ErrValidation)
	}
	if req.Password == "" {
		return nil, fmt.Errorf("password is required: %w", apperrors.ErrValidation)
	}

	accounts, err := u.driverRepo.LoadAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	if _, exists := accounts[normalized]; exists {
		return nil, fmt.Errorf("register %s: %w", normalized, apperrors.ErrDuplicateDriverID)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	accounts[normalized] = models.DriverAccount{
		DriverID:      normalized,
		PasswordHash:  string(hash),
		Name:          req.Name,
		VehicleNumber: req.VehicleNumber,
		RouteID:       req.RouteID,
		CreatedAt:     time.Now(),
	}

	if err := u.driverRepo.SaveAccounts(ctx, accounts); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	logger.Info("Registered driver account",
		logger.String("driver_id", normalized),
		logger.String("route_id", req.RouteID))

	return &models.DriverProfile{
		DriverID:      normalized,
		Name:          req.Name,
		VehicleNumber: req.VehicleNumber,
		RouteID:       req.RouteID,
	}, nil
}
