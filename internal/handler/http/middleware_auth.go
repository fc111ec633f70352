package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
)

const unauthorizedMessage = "invalid or expired token"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// resolves it to a user via [service.AuthService.Authenticate], and on success
// stores the authenticated user in the request context under
// [utils.UserCtxKey] before delegating to the next handler.
//
// Every token rejection (missing header, malformed header, bad signature,
// expired token, user no longer present) answers with the same HTTP 401 body;
// the specific cause is only logged via [logger.FromRequest]. A failure that
// is not a token rejection, such as an unreachable store, answers 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, unauthorizedMessage, http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, unauthorizedMessage, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
				log.Err(err).Msg("bearer token rejected")
				http.Error(w, unauthorizedMessage, http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("unexpected error occurred during token resolution")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// The scheme is matched case-insensitively and any run of whitespace between
// scheme and token is accepted. It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] if the scheme is not "Bearer" or the
//     header does not split into a scheme and a token.
//   - [ErrEmptyToken] if the scheme is present but no token follows it.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Fields(authHeader)
	if len(parts) == 0 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	if len(parts) == 1 {
		return "", ErrEmptyToken
	}
	if len(parts) > 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	return parts[1], nil
}
