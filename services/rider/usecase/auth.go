package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mkale/transitmate/internal/pkg/apperrors"
	jwtpkg "github.com/mkale/transitmate/internal/pkg/jwt"
	"github.com/mkale/transitmate/internal/pkg/logger"
	"github.com/mkale/transitmate/internal/pkg/models"
	"github.com/mkale/transitmate/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// SignUp registers a rider account and signs it in. The external identity
// provider is tried first; an unconfigured provider falls back to the local
// account table within the same call, while provider domain errors are
// surfaced directly without fallback.
func (u *RiderUC) SignUp(ctx context.Context, username, email, password string) (*models.RiderSession, error) {
	username = strings.TrimSpace(username)
	normalized := utils.NormalizeEmail(email)
	if username == "" {
		return nil, fmt.Errorf("username is required: %w", apperrors.ErrValidation)
	}
	if normalized == "" {
		return nil, fmt.Errorf("email is required: %w", apperrors.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("password is required: %w", apperrors.ErrValidation)
	}

	session, err := u.identityGW.SignUp(ctx, username, normalized, password)
	if err == nil {
		return u.adoptSession(ctx, session)
	}
	if !errors.Is(err, apperrors.ErrProviderNotConfigured) {
		return nil, err
	}

	// Local mock path
	accounts, err := u.riderRepo.LoadAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	if _, exists := accounts[normalized]; exists {
		return nil, fmt.Errorf("sign up %s: %w", normalized, apperrors.ErrDuplicateEmail)
	}
	for _, account := range accounts {
		if strings.EqualFold(account.Username, username) {
			return nil, fmt.Errorf("sign up %s: %w", normalized, apperrors.ErrDuplicateUsername)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	accounts[normalized] = models.RiderAccount{
		Email:        normalized,
		PasswordHash: string(hash),
		Username:     username,
		CreatedAt:    time.Now(),
	}

	// Persistence failures are swallowed after logging: the session is still
	// created, trading durability for availability.
	if err := u.riderRepo.SaveAccounts(ctx, accounts); err != nil {
		logger.Warn("Failed to persist rider accounts",
			logger.String("email", normalized),
			logger.Err(err))
	}

	return u.mintSession(ctx, normalized, username)
}

// SignIn authenticates a rider against the provider or the local account
// table, reusing an existing in-memory session for the email when one exists
func (u *RiderUC) SignIn(ctx context.Context, email, password string) (*models.RiderSession, error) {
	normalized := utils.NormalizeEmail(email)
	if normalized == "" || password == "" {
		return nil, fmt.Errorf("email and password are required: %w", apperrors.ErrValidation)
	}

	session, err := u.identityGW.SignIn(ctx, normalized, password)
	if err == nil {
		return u.adoptSession(ctx, session)
	}
	if !errors.Is(err, apperrors.ErrProviderNotConfigured) {
		return nil, err
	}

	accounts, err := u.riderRepo.LoadAccounts(ctx)
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

	if existing := u.sessionByEmail(normalized); existing != nil {
		if err := u.riderRepo.SaveCurrentSession(ctx, existing); err != nil {
			logger.Warn("Failed to persist rider session",
				logger.String("email", normalized),
				logger.Err(err))
		}
		return existing, nil
	}

	return u.mintSession(ctx, normalized, account.Username)
}

// SignOut clears the current session pointer and drops every in-memory rider
// session. Best effort: persistence and provider errors are swallowed.
func (u *RiderUC) SignOut(ctx context.Context) error {
	if err := u.identityGW.SignOut(ctx); err != nil && !errors.Is(err, apperrors.ErrProviderNotConfigured) {
		logger.Warn("Identity provider sign out failed", logger.Err(err))
	}

	if err := u.riderRepo.ClearCurrentSession(ctx); err != nil {
		logger.Warn("Failed to clear rider session pointer", logger.Err(err))
	}

	u.dropSessions()
	return nil
}

// CurrentSession returns the provider's current session when one exists,
// otherwise the persisted local pointer. Absent or unparsable state reads as
// no session.
func (u *RiderUC) CurrentSession(ctx context.Context) (*models.RiderSession, error) {
	session, err := u.identityGW.CurrentUser(ctx)
	if err == nil && session != nil {
		return session, nil
	}
	if err != nil && !errors.Is(err, apperrors.ErrProviderNotConfigured) {
		logger.Debug("Identity provider current-user lookup failed", logger.Err(err))
	}

	return u.riderRepo.LoadCurrentSession(ctx)
}

// SubscribeSessionChanges registers a callback for the external provider's
// auth-state notifications. Without a configured provider the returned
// unsubscribe is nil and no notifications are delivered.
func (u *RiderUC) SubscribeSessionChanges(cb func(*models.RiderSession)) (func(), error) {
	return u.identityGW.SubscribeSessionChanges(cb)
}

// adoptSession records a provider-issued session locally: it gets an API
// token, joins the in-memory table and becomes the persisted pointer
func (u *RiderUC) adoptSession(ctx context.Context, session *models.RiderSession) (*models.RiderSession, error) {
	if session.SessionID == "" {
		session.SessionID = uuid.New().String()
	}
	token, expiresAt, err := jwtpkg.GenerateToken(session.Email, jwtpkg.RoleRider, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	session.Token = token
	session.ExpiresAt = expiresAt

	u.putSession(session)
	if err := u.riderRepo.SaveCurrentSession(ctx, session); err != nil {
		logger.Warn("Failed to persist rider session",
			logger.String("email", session.Email),
			logger.Err(err))
	}
	return session, nil
}

func (u *RiderUC) mintSession(ctx context.Context, email, username string) (*models.RiderSession, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(email, jwtpkg.RoleRider, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	session := &models.RiderSession{
		SessionID: uuid.New().String(),
		Email:     email,
		Username:  username,
		Token:     token,
		ExpiresAt: expiresAt,
	}

	u.putSession(session)
	if err := u.riderRepo.SaveCurrentSession(ctx, session); err != nil {
		logger.Warn("Failed to persist rider session",
			logger.String("email", email),
			logger.Err(err))
	}

	return session, nil
}
