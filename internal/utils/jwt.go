package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/golang-jwt/jwt/v5"
)

// Sentinel errors returned by ValidateAndParseJWTToken. They classify every
// way a presented token can fail verification. Callers that face the outside
// world must collapse them into a single unauthorized response; the sentinels
// exist for logging and tests, not for clients.
var (
	// ErrTokenMalformed is returned when the token string cannot be decoded
	// or parsed at all.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenSignatureInvalid is returned when the token decodes but its
	// signature does not verify against the configured sign key.
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")

	// ErrTokenExpired is returned when the "exp" claim is in the past.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenMissingSubject is returned when the token verifies but carries
	// no usable "sub" claim (absent, empty, or not a base-10 integer).
	ErrTokenMissingSubject = errors.New("token subject is missing or invalid")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence and conversion to int64 UserID
//
// Failures are reported through the sentinel errors declared in this file so
// that callers can distinguish them with [errors.Is]:
// [ErrTokenExpired], [ErrTokenSignatureInvalid], [ErrTokenMissingSubject],
// and [ErrTokenMalformed] for everything else.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, classifyJWTError(err)
	}

	userIDStr, err := token.Claims.GetSubject()
	if err != nil || userIDStr == "" {
		return models.Token{}, ErrTokenMissingSubject
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenMissingSubject, err)
	}

	return models.Token{Token: token, UserID: userID}, nil
}

// classifyJWTError maps a golang-jwt parse error onto this package's
// sentinel errors, preserving the original error in the chain.
func classifyJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %w", ErrTokenSignatureInvalid, err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	default:
		// Wrong issuer, future iat, unexpected signing method and any other
		// validation failure: treated as malformed for the caller.
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
}
