package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/adapter"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
)

// A small command-line probe against a running auth server: creates the
// account (or logs into an existing one), then fetches the current user with
// the issued token.
func main() {
	addr := flag.String("a", "localhost:8080", "auth server address")
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	timeout := flag.Duration("timeout", 10*time.Second, "request timeout")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "both -email and -password are required")
		os.Exit(2)
	}

	log := logger.NewLogger("auth-client")

	serverAdapter, err := adapter.NewHTTPServerAdapter(*addr, *timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	credentials := models.Credentials{Email: *email, Password: *password}

	tokenResponse, err := serverAdapter.SignUp(ctx, credentials)
	switch {
	case err == nil:
		fmt.Println("account created")
	case errors.Is(err, adapter.ErrBadRequest):
		// likely an existing account, try to log in instead
		tokenResponse, err = serverAdapter.Login(ctx, credentials)
		if err != nil {
			log.Fatal().Err(err).Msg("login failed")
		}
		fmt.Println("logged in")
	default:
		log.Fatal().Err(err).Msg("signup failed")
	}

	user, err := serverAdapter.Me(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("fetching current user failed")
	}

	fmt.Printf("user id: %d\n", user.UserID)
	fmt.Printf("email:   %s\n", user.Email)
	fmt.Printf("token:   %s (%s)\n", tokenResponse.AccessToken, tokenResponse.TokenType)
}
