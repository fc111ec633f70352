package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the cost factor passed to the password hasher.
	// Zero means the bcrypt default.
	bcryptCost int

	// dummyHash is a bcrypt hash computed once at construction. Login
	// compares against it when the email is unknown, so the unknown-email
	// path costs about as much as a real password check.
	dummyHash string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// Construction probes the password hasher once with the configured cost. A
// failing probe means the hasher is misconfigured and is reported as an error
// so the process can refuse to start; the probe's output doubles as the dummy
// hash used to equalize login timing for unknown emails.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) (AuthService, error) {
	dummyHash, err := utils.HashPassword("go-auth-gate.dummy.compare", cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("password hasher is misconfigured: %w", err)
	}

	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cfg.BcryptCost,
		dummyHash:      dummyHash,
		logger:         logger,
	}, nil
}

// SignUp registers a new user account.
//
// The email is validated and lower-cased before any store or crypto work;
// the password is hashed with bcrypt; persistence is delegated to the
// UserRepository, whose unique index is the only uniqueness check.
//
// Returns the issued token or:
//   - ErrInvalidEmail / ErrInvalidDataProvided for rejected input.
//   - store.ErrEmailAlreadyExists (wrapped) when the email is taken.
//   - A wrapped storage or token error otherwise.
func (a *authService) SignUp(ctx context.Context, creds models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	email, err := normalizeEmail(creds.Email)
	if err != nil {
		log.Error().Str("email", creds.Email).Msg("invalid email provided")
		return models.Token{}, err
	}
	if creds.Password == "" {
		log.Error().Str("email", email).Msg("empty password provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(creds.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.createToken(registeredUser)
}

// Login authenticates an existing user.
//
// It looks up the account by normalized email and verifies the password
// against the stored bcrypt hash. Both the unknown-email and wrong-password
// paths return ErrInvalidCredentials, and the unknown-email path performs a
// dummy bcrypt compare first so the two paths take comparable time.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if creds.Email == "" || creds.Password == "" {
		log.Error().Msg("empty credentials provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	email := strings.ToLower(strings.TrimSpace(creds.Email))

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// burn a compare so an unknown email costs as much as a known one
			utils.VerifyPassword(creds.Password, a.dummyHash)

			log.Error().Str("email", email).Msg("no user with this email")
			return models.Token{}, ErrInvalidCredentials
		}

		// a store failure is not a credential rejection
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(creds.Password, foundUser.PasswordHash) {
		log.Error().Int64("id", foundUser.UserID).Str("email", email).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	return a.createToken(foundUser)
}

// Authenticate validates a raw JWT string and resolves it to a user record.
//
// Any token validation failure (malformed, bad signature, expired, missing
// subject) and a subject pointing at a since-deleted user are all normalised
// to ErrTokenIsExpiredOrInvalid so callers cannot distinguish the sub-cases.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token validation failed")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// token is valid but the user is gone: a legitimate race given
			// tokens are stateless
			log.Debug().Err(err).Int64("id", token.UserID).Msg("token subject not found")
			return models.User{}, ErrTokenIsExpiredOrInvalid
		}

		log.Err(err).Int64("id", token.UserID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// createToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) createToken(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// normalizeEmail validates the email format and returns its canonical
// lower-cased form. Display-name forms ("Alice <a@x.com>") are rejected:
// the login key is a bare address.
func normalizeEmail(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidDataProvided
	}

	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return "", ErrInvalidEmail
	}

	return strings.ToLower(addr.Address), nil
}
