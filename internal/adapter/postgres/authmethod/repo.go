// Package authmethod implements the AuthMethod repository using PostgreSQL.
package authmethod

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/whiskerlog/catcare-backend/internal/adapter/postgres"
	"github.com/whiskerlog/catcare-backend/internal/domain"
)

// Repo provides auth method persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new auth method repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByUserAndMethodSQL = `
SELECT id, user_id, method, password_hash, created_at, updated_at
FROM auth_methods
WHERE user_id = $1 AND method = $2`

const createSQL = `
INSERT INTO auth_methods (id, user_id, method, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())
RETURNING id, user_id, method, password_hash, created_at, updated_at`

const updatePasswordHashSQL = `
UPDATE auth_methods
SET password_hash = $3, updated_at = now()
WHERE user_id = $1 AND method = $2`

// GetByUserAndMethod returns the auth method of the given type for a user.
func (r *Repo) GetByUserAndMethod(ctx context.Context, userID uuid.UUID, method domain.AuthMethodType) (*domain.AuthMethod, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	return scan(q.QueryRow(ctx, getByUserAndMethodSQL, userID, string(method)), userID)
}

// Create inserts a new auth method.
func (r *Repo) Create(ctx context.Context, am *domain.AuthMethod) (*domain.AuthMethod, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := am.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	row := q.QueryRow(ctx, createSQL, id, am.UserID, string(am.Method), postgres.PtrToText(am.PasswordHash))
	return scan(row, am.UserID)
}

// UpdatePasswordHash replaces the stored password hash for a user's
// password auth method.
func (r *Repo) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, hash string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updatePasswordHashSQL, userID, string(domain.AuthMethodPassword), hash)
	if err != nil {
		return postgres.MapError(err, "auth_method", userID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "auth_method", userID)
	}
	return nil
}

func scan(row interface{ Scan(...any) error }, userID uuid.UUID) (*domain.AuthMethod, error) {
	var (
		am     domain.AuthMethod
		method string
		hash   pgtype.Text
	)
	err := row.Scan(&am.ID, &am.UserID, &method, &hash, &am.CreatedAt, &am.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "auth_method", userID)
	}
	am.Method = domain.AuthMethodType(method)
	am.PasswordHash = postgres.TextToPtr(hash)
	return &am, nil
}
