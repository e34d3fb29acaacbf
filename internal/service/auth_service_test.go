package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhoo999/mail-maker/internal/config"
	"github.com/mhoo999/mail-maker/internal/service"
)

func authConfig(t *testing.T) config.AuthConfig {
	t.Helper()
	hash, err := service.HashPassword("s3cret")
	require.NoError(t, err)
	return config.AuthConfig{
		Enabled:              true,
		Secret:               "test-secret",
		OperatorEmail:        "ops@example.com",
		OperatorPasswordHash: hash,
		TokenTTL:             time.Hour,
	}
}

func TestLogin(t *testing.T) {
	svc := service.NewAuthService(authConfig(t))

	token, expiresAt, err := svc.Login(context.Background(), " OPS@example.com ", "s3cret")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) { return []byte("test-secret"), nil })
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "ops@example.com", claims["sub"])
	assert.Equal(t, "access", claims["type"])
}

func TestLoginRejected(t *testing.T) {
	svc := service.NewAuthService(authConfig(t))

	_, _, err := svc.Login(context.Background(), "ops@example.com", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "other@example.com", "s3cret")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginDisabled(t *testing.T) {
	svc := service.NewAuthService(config.AuthConfig{})
	_, _, err := svc.Login(context.Background(), "ops@example.com", "s3cret")
	assert.ErrorIs(t, err, service.ErrAuthDisabled)
}
