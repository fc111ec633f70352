package service

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

// AuthService is the credential and token service. It owns password hashing,
// token issuance and verification, and the signup/login/resolution flows that
// compose them with the user store.
type AuthService interface {
	// SignUp registers a new account and returns a freshly issued token for
	// it. The email is validated and normalized before any store access.
	SignUp(ctx context.Context, creds models.Credentials) (models.Token, error)

	// Login verifies the credentials and returns a freshly issued token.
	// An unknown email and a wrong password are indistinguishable to the
	// caller: both yield ErrInvalidCredentials.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	// Authenticate verifies a raw bearer token string and resolves it to the
	// user it was issued for. Every token failure mode collapses into
	// ErrTokenIsExpiredOrInvalid.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}
