// Package cat implements the Cat repository using PostgreSQL.
package cat

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/whiskerlog/catcare-backend/internal/adapter/postgres"
	"github.com/whiskerlog/catcare-backend/internal/domain"
)

// Repo provides cat profile persistence backed by PostgreSQL.
// Every query is scoped by user_id; a cat belonging to another user
// behaves exactly like a missing cat (ErrNotFound).
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new cat repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const catColumns = `
id, user_id, name, breed, birth_date, weight_kg, neutered, activity_level,
photo_url, notes, created_at, updated_at`

const getByIDSQL = `SELECT ` + catColumns + ` FROM cats WHERE id = $1 AND user_id = $2`

const listByUserSQL = `SELECT ` + catColumns + ` FROM cats WHERE user_id = $1 ORDER BY created_at`

const countByUserSQL = `SELECT count(*) FROM cats WHERE user_id = $1`

const createSQL = `
INSERT INTO cats (id, user_id, name, breed, birth_date, weight_kg, neutered,
                  activity_level, photo_url, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
RETURNING ` + catColumns

const updateSQL = `
UPDATE cats
SET name = $3, breed = $4, birth_date = $5, weight_kg = $6, neutered = $7,
    activity_level = $8, photo_url = $9, notes = $10, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + catColumns

const deleteSQL = `DELETE FROM cats WHERE id = $1 AND user_id = $2`

// GetByID returns a cat owned by the given user.
func (r *Repo) GetByID(ctx context.Context, userID, catID uuid.UUID) (*domain.Cat, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	return scanCat(q.QueryRow(ctx, getByIDSQL, catID, userID), catID)
}

// ListByUser returns all cats of a user ordered by creation time.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Cat, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, postgres.MapError(err, "cat", userID)
	}
	defer rows.Close()

	var cats []*domain.Cat
	for rows.Next() {
		c, err := scanCat(rows, userID)
		if err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "cat", userID)
	}
	return cats, nil
}

// CountByUser returns the number of cats a user owns.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, countByUserSQL, userID).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "cat", userID)
	}
	return n, nil
}

// Create inserts a new cat and returns the persisted domain.Cat.
func (r *Repo) Create(ctx context.Context, c *domain.Cat) (*domain.Cat, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		c.ID, c.UserID, c.Name, postgres.PtrToText(c.Breed), postgres.PtrToTimestamptz(c.BirthDate),
		postgres.PtrToFloat8(c.WeightKg), c.Neutered, string(c.ActivityLevel),
		postgres.PtrToText(c.PhotoURL), postgres.PtrToText(c.Notes))
	return scanCat(row, c.ID)
}

// Update replaces all mutable fields of a cat owned by the given user.
func (r *Repo) Update(ctx context.Context, userID uuid.UUID, c *domain.Cat) (*domain.Cat, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updateSQL,
		c.ID, userID, c.Name, postgres.PtrToText(c.Breed), postgres.PtrToTimestamptz(c.BirthDate),
		postgres.PtrToFloat8(c.WeightKg), c.Neutered, string(c.ActivityLevel),
		postgres.PtrToText(c.PhotoURL), postgres.PtrToText(c.Notes))
	return scanCat(row, c.ID)
}

// Delete removes a cat owned by the given user. Diary records and daily
// summaries cascade via foreign keys.
func (r *Repo) Delete(ctx context.Context, userID, catID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, catID, userID)
	if err != nil {
		return postgres.MapError(err, "cat", catID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "cat", catID)
	}
	return nil
}

func scanCat(row interface{ Scan(...any) error }, id uuid.UUID) (*domain.Cat, error) {
	var (
		c         domain.Cat
		breed     pgtype.Text
		birthDate pgtype.Timestamptz
		weight    pgtype.Float8
		activity  string
		photoURL  pgtype.Text
		notes     pgtype.Text
	)
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &breed, &birthDate, &weight, &c.Neutered,
		&activity, &photoURL, &notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "cat", id)
	}

	c.Breed = postgres.TextToPtr(breed)
	c.BirthDate = postgres.TimestamptzToPtr(birthDate)
	c.WeightKg = postgres.Float8ToPtr(weight)
	c.ActivityLevel = domain.ActivityLevel(activity)
	c.PhotoURL = postgres.TextToPtr(photoURL)
	c.Notes = postgres.TextToPtr(notes)
	return &c, nil
}
