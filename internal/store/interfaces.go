package store

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

// UserRepository is the persistence contract for user accounts.
//
// Uniqueness of Email is enforced by the storage layer itself (a unique
// index), not by a preceding read: CreateUser is the single source of truth
// for the "email already registered" condition.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists on a uniqueness
	// conflict.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given identifier or
	// ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}
