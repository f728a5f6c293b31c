package usecase

import (
	"context"
	"testing"

	"github.com/mkale/transitmate/internal/pkg/apperrors"
	"github.com/mkale/transitmate/internal/pkg/models"
	"github.com/mkale/transitmate/internal/pkg/store"
	"github.com/mkale/transitmate/services/driver/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *models.Config {
	cfg := &models.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = 60
	cfg.JWT.Issuer = "transitmate-test"
	return cfg
}

func newTestDriverUC() (*DriverUC, store.Store) {
	kv := store.NewMemoryStore()
	return NewDriverUC(repository.NewDriverRepo(kv), testConfig()), kv
}

func TestSignIn_FixtureDriverNormalizedID(t *testing.T) {
	uc, _ := newTestDriverUC()

	session, err := uc.SignIn(context.Background(), "  drv001 ", "driver123")
	require.NoError(t, err)
	assert.Equal(t, "DRV001", session.DriverID)
	assert.Equal(t, "John Driver", session.Name)
	assert.Equal(t, "MH-12-AB-1234", session.VehicleNumber)
	assert.Equal(t, "42B", session.RouteID)
	assert.NotEmpty(t, session.Token)
}

func TestSignIn_SecondFixtureDriver(t *testing.T) {
	uc, _ := newTestDriverUC()

	session, err := uc.SignIn(context.Background(), "DRV002", "driver123")
	require.NoError(t, err)
	assert.Equal(t, "Jane Driver", session.Name)
	assert.Equal(t, "101", session.RouteID)
}

func TestSignIn_WrongPassword(t *testing.T) {
	uc, _ := newTestDriverUC()

	_, err := uc.SignIn(context.Background(), "DRV001", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestSignIn_UnknownDriver(t *testing.T) {
	uc, _ := newTestDriverUC()

	_, err := uc.SignIn(context.Background(), "DRV999", "driver123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestSignIn_ReusesExistingSession(t *testing.T) {
	uc, _ := newTestDriverUC()
	ctx := context.Background()

	first, err := uc.SignIn(ctx, "DRV001", "driver123")
	require.NoError(t, err)

	second, err := uc.SignIn(ctx, "drv001", "driver123")
	require.NoError(t, err)
	assert.Equal(t, first.SessionID, second.SessionID)
}

func TestSignOut_ClearsSession(t *testing.T) {
	uc, _ := newTestDriverUC()
	ctx := context.Background()

	_, err := uc.SignIn(ctx, "DRV001", "driver123")
	require.NoError(t, err)

	require.NoError(t, uc.SignOut(ctx))

	session, err := uc.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestRegisterDriver_ThenSignIn(t *testing.T) {
	uc, _ := newTestDriverUC()
	ctx := context.Background()

	profile, err := uc.RegisterDriver(ctx, &models.RegisterDriverRequest{
		DriverID:      "drv010",
		Password:      "newpass",
		Name:          "Sam Driver",
		VehicleNumber: "MH-12-EF-9012",
		RouteID:       "7A",
	})
	require.NoError(t, err)
	assert.Equal(t, "DRV010", profile.DriverID)

	session, err := uc.SignIn(ctx, "DRV010", "newpass")
	require.NoError(t, err)
	assert.Equal(t, "Sam Driver", session.Name)
}

func TestRegisterDriver_DuplicateIDCaseInsensitive(t *testing.T) {
	uc, _ := newTestDriverUC()

	_, err := uc.RegisterDriver(context.Background(), &models.RegisterDriverRequest{
		DriverID: "drv001",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateDriverID)
}

func TestCurrentSession_SurvivesRestart(t *testing.T) {
	kv := store.NewMemoryStore()
	uc := NewDriverUC(repository.NewDriverRepo(kv), testConfig())
	ctx := context.Background()

	created, err := uc.SignIn(ctx, "DRV001", "driver123")
	require.NoError(t, err)

	restarted := NewDriverUC(repository.NewDriverRepo(kv), testConfig())
	session, err := restarted.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, created.SessionID, session.SessionID)
}
