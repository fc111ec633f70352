package store

import (
	"testing"

	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCreateUserQuery(t *testing.T) {
	user := models.User{Email: "a@x.com", PasswordHash: "hash"}

	query, args, err := buildCreateUserQuery(user)

	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO users (email,password_hash) VALUES ($1,$2) RETURNING user_id, email, password_hash, created_at",
		query)
	assert.Equal(t, []any{"a@x.com", "hash"}, args)
}

func TestBuildFindUserByEmailQuery(t *testing.T) {
	query, args, err := buildFindUserByEmailQuery("a@x.com")

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT user_id, email, password_hash, created_at FROM users WHERE email = $1",
		query)
	assert.Equal(t, []any{"a@x.com"}, args)
}

func TestBuildFindUserByIDQuery(t *testing.T) {
	query, args, err := buildFindUserByIDQuery(42)

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT user_id, email, password_hash, created_at FROM users WHERE user_id = $1",
		query)
	assert.Equal(t, []any{int64(42)}, args)
}
