package httptransport

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/mhoo999/mail-maker/internal/httpx"
	"github.com/mhoo999/mail-maker/internal/service"
)

type AuthHandlers struct {
	service AuthServices
}

type AuthServices interface {
	Login(ctx context.Context, email string, password string) (string, time.Time, error)
}

func NewAuthHandlers(service AuthServices) *AuthHandlers {
	return &AuthHandlers{
		service: service,
	}
}

func (srv AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	loginData, err := httpx.ReadBody[LoginData](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	accessToken, expiresAt, err := srv.service.Login(r.Context(), loginData.Email, loginData.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAuthDisabled):
			httpx.Error(w, http.StatusNotFound, "auth is disabled")
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.Error(w, http.StatusUnauthorized, "invalid email or password")
		default:
			httpx.Error(w, http.StatusInternalServerError, "failed to log in")
		}
		return
	}

	httpx.JSON(w, http.StatusOK, struct {
		AccessToken string    `json:"access_token"`
		ExpiresAt   time.Time `json:"expires_at"`
	}{AccessToken: accessToken, ExpiresAt: expiresAt})
}
