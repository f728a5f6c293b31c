package jwt

import (
	"testing"
	"time"

	"github.com/mkale/transitmate/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60,
			Issuer:     "transitmate-test",
		},
	}
}

func TestGenerateToken(t *testing.T) {
	cfg := getTestConfig()

	tokenString, expiresAt, err := GenerateToken("rider@example.com", RoleRider, cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(tokenString, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, "rider@example.com", claims["sub"])
	assert.Equal(t, RoleRider, claims["role"])
	assert.Equal(t, "transitmate-test", claims["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := getTestConfig()

	tokenString, _, err := GenerateToken("DRV001", RoleDriver, cfg)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, "some-other-secret")
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", "secret")
	assert.Error(t, err)
}
