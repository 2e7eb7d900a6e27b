package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fleetflow/fleetflow/internal/pkg/jwt"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

func newAuthConfig(t *testing.T) *models.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("dispatch123"), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "fleetflow-test",
		},
		Auth: models.AuthConfig{
			Operators: []models.Operator{
				{
					Name:         "Dana Ops",
					Email:        "dana@fleet.io",
					PasswordHash: string(hash),
					Role:         models.RoleDispatcher,
				},
			},
		},
	}
}

func TestLogin(t *testing.T) {
	cfg := newAuthConfig(t)
	uc := NewAuthUC(cfg)
	ctx := context.Background()

	t.Run("valid credentials issue a token", func(t *testing.T) {
		resp, err := uc.Login(ctx, models.LoginRequest{Email: "dana@fleet.io", Password: "dispatch123"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, models.RoleDispatcher, resp.Role)
		assert.Equal(t, "Dana Ops", resp.Name)

		claims, err := jwt.ValidateToken(resp.Token, cfg.JWT.Secret)
		require.NoError(t, err)
		assert.Equal(t, "dana@fleet.io", (*claims)["email"])
		assert.Equal(t, string(models.RoleDispatcher), (*claims)["role"])
	})

	t.Run("email match is case insensitive", func(t *testing.T) {
		_, err := uc.Login(ctx, models.LoginRequest{Email: "Dana@Fleet.IO", Password: "dispatch123"})
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.Login(ctx, models.LoginRequest{Email: "dana@fleet.io", Password: "nope"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown operator", func(t *testing.T) {
		_, err := uc.Login(ctx, models.LoginRequest{Email: "ghost@fleet.io", Password: "dispatch123"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
