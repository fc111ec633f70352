package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_MissingTokenSignKey(t *testing.T) {
	cfg := &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
	}

	err := cfg.validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingTokenSignKey)
}

func TestValidate_MissingDSN(t *testing.T) {
	cfg := &StructuredConfig{
		App: App{TokenSignKey: "secret"},
	}

	err := cfg.validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingDatabaseDSN)
}

func TestValidate_Complete(t *testing.T) {
	cfg := &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
	}

	assert.NoError(t, cfg.validate())
}
