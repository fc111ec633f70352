package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from httpAddress
// and configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if httpAddress is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(httpAddress string, requestTimeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(httpAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// SignUp implements [ServerAdapter]. It POSTs the credentials to /signup,
// decodes the token envelope, and stores the bearer token via SetToken.
func (h *httpServerAdapter) SignUp(ctx context.Context, credentials models.Credentials) (models.TokenResponse, error) {
	return h.requestToken(ctx, "/signup", credentials)
}

// Login implements [ServerAdapter]. It POSTs the credentials to /login,
// decodes the token envelope, and stores the bearer token via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.TokenResponse, error) {
	return h.requestToken(ctx, "/login", credentials)
}

func (h *httpServerAdapter) requestToken(ctx context.Context, path string, credentials models.Credentials) (models.TokenResponse, error) {
	var tokenResponse models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&tokenResponse).
		Post(path)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	if tokenResponse.AccessToken == "" {
		return models.TokenResponse{}, fmt.Errorf("%s: empty access token in response", path)
	}

	h.SetToken(tokenResponse.AccessToken)

	return tokenResponse, nil
}

// Me implements [ServerAdapter]. It GETs /api/user/me with the stored bearer
// token and decodes the user record.
func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	if h.token == "" {
		return models.User{}, fmt.Errorf("%w: no token set", ErrUnauthorized)
	}

	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.token).
		SetResult(&user).
		Get("/api/user/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}
