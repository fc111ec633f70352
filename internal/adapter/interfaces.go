// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a transport-layer abstraction for communicating
// with the go-auth-gate server.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrBadRequest] for 400, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

// ServerAdapter defines transport-agnostic communication with the
// go-auth-gate server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful SignUp or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// SignUp creates an account with the provided credentials. On success it
	// stores the returned bearer token via SetToken and returns the token
	// envelope. Returns [ErrBadRequest] (wrapped) when the email is taken or
	// the credentials are rejected.
	SignUp(ctx context.Context, credentials models.Credentials) (models.TokenResponse, error)

	// Login authenticates with the provided credentials. On success it stores
	// the returned bearer token via SetToken and returns the token envelope.
	// Returns [ErrUnauthorized] (wrapped) when the credentials are rejected.
	Login(ctx context.Context, credentials models.Credentials) (models.TokenResponse, error)

	// Me fetches the account behind the stored bearer token. Returns
	// [ErrUnauthorized] (wrapped) when the token is missing, expired, or
	// otherwise rejected.
	Me(ctx context.Context) (models.User, error)
}
