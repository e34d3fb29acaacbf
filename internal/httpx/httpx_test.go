package httpx_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhoo999/mail-maker/internal/httpx"
)

const secret = "test-secret"

func signToken(t *testing.T, key string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func TestProtected(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		operator, ok := httpx.OperatorFromContext(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(operator))
	})
	handler := httpx.Protected(secret)(next)

	valid := signToken(t, secret, jwt.MapClaims{"sub": "ops@example.com", "exp": time.Now().Add(time.Hour).Unix()})
	expired := signToken(t, secret, jwt.MapClaims{"sub": "ops@example.com", "exp": time.Now().Add(-time.Hour).Unix()})
	wrongKey := signToken(t, "other", jwt.MapClaims{"sub": "ops@example.com", "exp": time.Now().Add(time.Hour).Unix()})
	noSubject := signToken(t, secret, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "valid", header: "Bearer " + valid, status: http.StatusOK},
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + expired, status: http.StatusUnauthorized},
		{name: "wrong key", header: "Bearer " + wrongKey, status: http.StatusUnauthorized},
		{name: "no subject", header: "Bearer " + noSubject, status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/templates", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "ops@example.com", w.Body.String())
			}
		})
	}
}

func TestLoggerRecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	handler := httpx.Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/starters", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http request", entry["msg"])
	assert.Equal(t, "/api/starters", entry["path"])
	assert.EqualValues(t, http.StatusTeapot, entry["status"])
}

func TestGetId(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.GetId(w, r)
		require.True(t, ok)
		httpx.JSON(w, http.StatusOK, map[string]string{"id": id})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/abc", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"abc"}`, w.Body.String())

	w = httptest.NewRecorder()
	_, ok := httpx.GetId(w, httptest.NewRequest(http.MethodGet, "/items/", nil))
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReadBody(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}
	got, err := httpx.ReadBody[payload](httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`)))
	require.NoError(t, err)
	assert.Equal(t, "x", got.Name)

	_, err = httpx.ReadBody[payload](httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`)))
	assert.Error(t, err)
}

func TestReadTextLimit(t *testing.T) {
	text, err := httpx.ReadText(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("<p>hi</p>")))
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", text)

	big := strings.Repeat("a", httpx.MaxBodyBytes+1)
	_, err = httpx.ReadText(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big)))
	assert.Error(t, err)
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.Error(w, http.StatusNotFound, "missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"missing"}`, w.Body.String())
}
