package utils

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_ProducesDistinctHashes(t *testing.T) {
	first, err := HashPassword("secret123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashPassword("secret123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Error("expected different hashes for the same password (random salt per call)")
	}
}

// TestHashVerify_RandomPasswords round-trips random password pairs: each hash
// verifies against its own password and rejects the other. At bcrypt.MinCost
// the full run stays in the tens of seconds; -short keeps a smoke sample.
func TestHashVerify_RandomPasswords(t *testing.T) {
	pairs := 10000
	if testing.Short() {
		pairs = 100
	}

	randomPassword := func() string {
		b := make([]byte, 12)
		if _, err := rand.Read(b); err != nil {
			t.Fatalf("unexpected error generating password: %v", err)
		}
		return hex.EncodeToString(b)
	}

	for i := 0; i < pairs; i++ {
		p1 := randomPassword()
		p2 := randomPassword()

		hash, err := HashPassword(p1, bcrypt.MinCost)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !VerifyPassword(p1, hash) {
			t.Fatalf("hash of %q did not verify against itself", p1)
		}
		if VerifyPassword(p2, hash) {
			t.Fatalf("hash of %q verified against unrelated password %q", p1, p2)
		}
	}
}

func TestHashPassword_DefaultCostFallback(t *testing.T) {
	hash, err := HashPassword("secret123", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("unexpected error reading cost: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("expected cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}

func TestHashPassword_CostTooHigh(t *testing.T) {
	if _, err := HashPassword("secret123", bcrypt.MaxCost+1); err == nil {
		t.Error("expected error for cost above bcrypt.MaxCost, got nil")
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{"correct password", "secret123", hash, true},
		{"wrong password", "secret124", hash, false},
		{"empty password", "", hash, false},
		{"malformed hash", "secret123", "not-a-bcrypt-hash", false},
		{"empty hash", "secret123", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifyPassword(tt.password, tt.hash); got != tt.want {
				t.Errorf("VerifyPassword(%q, %q) = %v, want %v", tt.password, tt.hash, got, tt.want)
			}
		})
	}
}
