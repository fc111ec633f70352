package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helper ----

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: &mockAuthService{
				signUpFn: func(_ context.Context, _ models.Credentials) (models.Token, error) {
					return stubToken("signed.jwt.token"), nil
				},
				loginFn: func(_ context.Context, _ models.Credentials) (models.Token, error) {
					return stubToken("signed.jwt.token"), nil
				},
				authenticateFn: func(_ context.Context, _ string) (models.User, error) {
					return models.User{UserID: 1, Email: "alice@example.com"}, nil
				},
			},
		},
	}
	return h.Init()
}

// ---- Route wiring ----

func TestRoutes_TableTest(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "liveness probe",
			method:     http.MethodGet,
			target:     "/",
			wantStatus: http.StatusOK,
		},
		{
			name:       "signup",
			method:     http.MethodPost,
			target:     "/signup",
			body:       `{"email":"alice@example.com","password":"secret123"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "login",
			method:     http.MethodPost,
			target:     "/login",
			body:       `{"email":"alice@example.com","password":"secret123"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "me with bearer token",
			method:     http.MethodGet,
			target:     "/api/user/me",
			authHeader: "Bearer signed.jwt.token",
			wantStatus: http.StatusOK,
		},
		{
			name:       "me without token",
			method:     http.MethodGet,
			target:     "/api/user/me",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			target:     "/nope",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "signup rejects GET",
			method:     http.MethodGet,
			target:     "/signup",
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body *strings.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			} else {
				body = strings.NewReader("")
			}

			req := httptest.NewRequest(tt.method, tt.target, body)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

// TestRoutes_TraceIDEchoed verifies the middleware chain is wired: every
// response carries an X-Trace-ID header.
func TestRoutes_TraceIDEchoed(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))
}

// TestRoutes_TraceIDReused verifies a caller-provided trace id survives the
// round trip unchanged.
func TestRoutes_TraceIDReused(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace-ID", "my-custom-trace-id")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "my-custom-trace-id", rr.Header().Get("X-Trace-ID"))
}
