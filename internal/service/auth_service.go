package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/mhoo999/mail-maker/internal/config"
)

// AuthService authenticates the single operator configured for the server.
type AuthService struct {
	cfg config.AuthConfig
	now func() time.Time
}

func NewAuthService(cfg config.AuthConfig) *AuthService {
	return &AuthService{
		cfg: cfg,
		now: time.Now,
	}
}

func (s *AuthService) Login(ctx context.Context, email string, password string) (string, time.Time, error) {
	if !s.cfg.Enabled {
		return "", time.Time{}, ErrAuthDisabled
	}
	if !strings.EqualFold(strings.TrimSpace(email), s.cfg.OperatorEmail) {
		slog.Warn("login with unknown operator", "email", email)
		return "", time.Time{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.OperatorPasswordHash), []byte(password)); err != nil {
		slog.Warn("login with wrong password", "email", email)
		return "", time.Time{}, ErrInvalidCredentials
	}
	return s.GenerateToken(s.cfg.OperatorEmail)
}

func (s *AuthService) GenerateToken(subject string) (string, time.Time, error) {
	expiresAt := s.now().Add(s.cfg.TokenTTL)
	claims := jwt.MapClaims{
		"sub":  subject,
		"exp":  expiresAt.Unix(),
		"type": "access",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
