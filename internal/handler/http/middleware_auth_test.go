package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

func newHandlerWithAuthService(authSvc service.AuthService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: authSvc,
		},
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:      "scheme matched case-insensitively",
			header:    "bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:      "extra whitespace after scheme",
			header:    "Bearer   my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:    "scheme only",
			header:  "Bearer",
			wantErr: ErrEmptyToken,
		},
		{
			name:    "scheme with trailing space only",
			header:  "Bearer ",
			wantErr: ErrEmptyToken,
		},
		{
			name:    "wrong scheme",
			header:  "Basic my-jwt-token",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "more than one token part",
			header:  "Bearer my-jwt-token trailing-junk",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "whitespace only",
			header:  "   ",
			wantErr: ErrInvalidAuthorizationHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ---- auth middleware ----

func TestAuthMiddleware_Success(t *testing.T) {
	want := models.User{UserID: 42, Email: "alice@example.com"}

	authSvc := &mockAuthService{
		authenticateFn: func(_ context.Context, tokenString string) (models.User, error) {
			require.Equal(t, "valid-token", tokenString)
			return want, nil
		},
	}
	h := newHandlerWithAuthService(authSvc)

	var gotUser models.User
	var found bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, found = utils.GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(h, "Bearer valid-token", next)

	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, found)
	assert.Equal(t, want, gotUser)
}

// TestAuthMiddleware_AllRejectionsLookTheSame verifies that every token
// rejection answers 401 with the same body, never reaching the next handler.
func TestAuthMiddleware_AllRejectionsLookTheSame(t *testing.T) {
	tests := []struct {
		name   string
		header string
		svcErr error
	}{
		{name: "missing header", header: ""},
		{name: "scheme only", header: "Bearer"},
		{name: "wrong scheme", header: "Basic some-token"},
		{name: "rejected token", header: "Bearer bad-token", svcErr: service.ErrTokenIsExpiredOrInvalid},
	}

	var bodies []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := &mockAuthService{
				authenticateFn: func(_ context.Context, _ string) (models.User, error) {
					return models.User{}, tt.svcErr
				},
			}
			h := newHandlerWithAuthService(authSvc)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler must not be reached")
			})

			rr := executeAuth(h, tt.header, next)

			require.Equal(t, http.StatusUnauthorized, rr.Code)
			bodies = append(bodies, rr.Body.String())
		})
	}

	for _, body := range bodies {
		assert.Equal(t, bodies[0], body)
	}
}

// TestAuthMiddleware_StoreOutageAnswers500 verifies that a resolution failure
// that is not a token rejection surfaces as 500 instead of masquerading as an
// invalid token, and leaks nothing about the cause.
func TestAuthMiddleware_StoreOutageAnswers500(t *testing.T) {
	authSvc := &mockAuthService{
		authenticateFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, errors.New("store unavailable")
		},
	}
	h := newHandlerWithAuthService(authSvc)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be reached")
	})

	rr := executeAuth(h, "Bearer some-token", next)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "store unavailable")
}
