package models

// Credentials is the request body shared by the signup and login endpoints.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the envelope returned by signup and login on success.
// TokenType is always "bearer".
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// StatusResponse is the body of the liveness route.
type StatusResponse struct {
	Message string `json:"message"`
}
