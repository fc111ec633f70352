package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-gate/models"
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns is the canonical column list scanned into models.User.
var userColumns = []string{"user_id", "email", "password_hash", "created_at"}

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.
		Insert(user.TableName()).
		Columns("email", "password_hash").
		Values(user.Email, user.PasswordHash).
		Suffix("RETURNING user_id, email, password_hash, created_at").
		ToSql()
}

func buildFindUserByEmailQuery(email string) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildFindUserByIDQuery(userID int64) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
