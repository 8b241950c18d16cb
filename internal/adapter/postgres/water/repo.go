// Package water implements the WaterRecord repository using PostgreSQL.
package water

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/whiskerlog/catcare-backend/internal/adapter/postgres"
	"github.com/whiskerlog/catcare-backend/internal/domain"
)

// Repo provides water record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new water record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const waterColumns = `id, user_id, cat_id, record_date, amount_ml, created_at, updated_at`

const getByIDSQL = `
SELECT ` + waterColumns + ` FROM water_records WHERE id = $1 AND user_id = $2`

const listByCatDateSQL = `
SELECT ` + waterColumns + `
FROM water_records
WHERE user_id = $1 AND cat_id = $2 AND record_date = $3
ORDER BY created_at`

const createSQL = `
INSERT INTO water_records (id, user_id, cat_id, record_date, amount_ml, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())
RETURNING ` + waterColumns

const updateSQL = `
UPDATE water_records
SET amount_ml = $3, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + waterColumns

const deleteSQL = `DELETE FROM water_records WHERE id = $1 AND user_id = $2`

// GetByID returns a water record owned by the given user.
func (r *Repo) GetByID(ctx context.Context, userID, recordID uuid.UUID) (*domain.WaterRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	return scanRecord(q.QueryRow(ctx, getByIDSQL, recordID, userID), recordID)
}

// ListByCatDate returns all water records for one (cat, date).
func (r *Repo) ListByCatDate(ctx context.Context, userID, catID uuid.UUID, date time.Time) ([]*domain.WaterRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByCatDateSQL, userID, catID, date)
	if err != nil {
		return nil, postgres.MapError(err, "water_record", catID)
	}
	defer rows.Close()

	return collectRecords(rows, catID)
}

// ListRange returns water records for a cat within the filter's date bounds.
func (r *Repo) ListRange(ctx context.Context, userID, catID uuid.UUID, filter domain.DiaryFilter) ([]*domain.WaterRecord, error) {
	b := postgres.Builder.
		Select("id", "user_id", "cat_id", "record_date", "amount_ml", "created_at", "updated_at").
		From("water_records").
		Where(squirrel.Eq{"user_id": userID, "cat_id": catID}).
		OrderBy("record_date DESC", "created_at DESC")

	if filter.DateFrom != nil {
		b = b.Where(squirrel.GtOrEq{"record_date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		b = b.Where(squirrel.LtOrEq{"record_date": *filter.DateTo})
	}
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		b = b.Offset(uint64(filter.Offset))
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "water_record", catID)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "water_record", catID)
	}
	defer rows.Close()

	return collectRecords(rows, catID)
}

// Create inserts a new water record.
func (r *Repo) Create(ctx context.Context, rec *domain.WaterRecord) (*domain.WaterRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		rec.ID, rec.UserID, rec.CatID, rec.RecordDate, postgres.PtrToFloat8(rec.AmountML))
	return scanRecord(row, rec.ID)
}

// Update replaces the amount of a water record.
func (r *Repo) Update(ctx context.Context, userID uuid.UUID, rec *domain.WaterRecord) (*domain.WaterRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updateSQL, rec.ID, userID, postgres.PtrToFloat8(rec.AmountML))
	return scanRecord(row, rec.ID)
}

// Delete removes a water record owned by the given user.
func (r *Repo) Delete(ctx context.Context, userID, recordID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, recordID, userID)
	if err != nil {
		return postgres.MapError(err, "water_record", recordID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "water_record", recordID)
	}
	return nil
}

func collectRecords(rows pgx.Rows, id uuid.UUID) ([]*domain.WaterRecord, error) {
	var records []*domain.WaterRecord
	for rows.Next() {
		rec, err := scanRecord(rows, id)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "water_record", id)
	}
	return records, nil
}

func scanRecord(row interface{ Scan(...any) error }, id uuid.UUID) (*domain.WaterRecord, error) {
	var (
		rec    domain.WaterRecord
		amount pgtype.Float8
	)
	err := row.Scan(&rec.ID, &rec.UserID, &rec.CatID, &rec.RecordDate, &amount,
		&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "water_record", id)
	}
	rec.AmountML = postgres.Float8ToPtr(amount)
	return &rec, nil
}
