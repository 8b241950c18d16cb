// Package care implements the CareRecord repository (supplements and
// medications) using PostgreSQL.
package care

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

// Repo provides care record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new care record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const careColumns = `id, user_id, cat_id, record_date, name, record_type, dosage, taken, created_at, updated_at`

const getByIDSQL = `
SELECT ` + careColumns + ` FROM care_records WHERE id = $1 AND user_id = $2`

const listByCatDateSQL = `
SELECT ` + careColumns + `
FROM care_records
WHERE user_id = $1 AND cat_id = $2 AND record_date = $3
ORDER BY created_at`

const createSQL = `
INSERT INTO care_records (id, user_id, cat_id, record_date, name, record_type, dosage, taken, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
RETURNING ` + careColumns

const updateSQL = `
UPDATE care_records
SET name = $3, record_type = $4, dosage = $5, taken = $6, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + careColumns

const deleteSQL = `DELETE FROM care_records WHERE id = $1 AND user_id = $2`

// GetByID returns a care record owned by the given user.
func (r *Repo) GetByID(ctx context.Context, userID, recordID uuid.UUID) (*domain.CareRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	return scanRecord(q.QueryRow(ctx, getByIDSQL, recordID, userID), recordID)
}

// ListByCatDate returns all care records for one (cat, date).
func (r *Repo) ListByCatDate(ctx context.Context, userID, catID uuid.UUID, date time.Time) ([]*domain.CareRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByCatDateSQL, userID, catID, date)
	if err != nil {
		return nil, postgres.MapError(err, "care_record", catID)
	}
	defer rows.Close()

	return collectRecords(rows, catID)
}

// ListRange returns care records for a cat within the filter's date bounds,
// optionally restricted to one record type.
func (r *Repo) ListRange(ctx context.Context, userID, catID uuid.UUID, filter domain.DiaryFilter) ([]*domain.CareRecord, error) {
	b := postgres.Builder.
		Select("id", "user_id", "cat_id", "record_date", "name", "record_type",
			"dosage", "taken", "created_at", "updated_at").
		From("care_records").
		Where(squirrel.Eq{"user_id": userID, "cat_id": catID}).
		OrderBy("record_date DESC", "created_at DESC")

	if filter.RecordType != nil {
		b = b.Where(squirrel.Eq{"record_type": string(*filter.RecordType)})
	}
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
		return nil, postgres.MapError(err, "care_record", catID)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "care_record", catID)
	}
	defer rows.Close()

	return collectRecords(rows, catID)
}

// Create inserts a new care record.
func (r *Repo) Create(ctx context.Context, rec *domain.CareRecord) (*domain.CareRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		rec.ID, rec.UserID, rec.CatID, rec.RecordDate,
		rec.Name, string(rec.RecordType), postgres.PtrToText(rec.Dosage), rec.Taken)
	return scanRecord(row, rec.ID)
}

// Update replaces the mutable fields of a care record.
func (r *Repo) Update(ctx context.Context, userID uuid.UUID, rec *domain.CareRecord) (*domain.CareRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updateSQL,
		rec.ID, userID, rec.Name, string(rec.RecordType),
		postgres.PtrToText(rec.Dosage), rec.Taken)
	return scanRecord(row, rec.ID)
}

// Delete removes a care record owned by the given user.
func (r *Repo) Delete(ctx context.Context, userID, recordID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, recordID, userID)
	if err != nil {
		return postgres.MapError(err, "care_record", recordID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "care_record", recordID)
	}
	return nil
}

func collectRecords(rows pgx.Rows, id uuid.UUID) ([]*domain.CareRecord, error) {
	var records []*domain.CareRecord
	for rows.Next() {
		rec, err := scanRecord(rows, id)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "care_record", id)
	}
	return records, nil
}

func scanRecord(row interface{ Scan(...any) error }, id uuid.UUID) (*domain.CareRecord, error) {
	var (
		rec        domain.CareRecord
		recordType string
		dosage     pgtype.Text
	)
	err := row.Scan(&rec.ID, &rec.UserID, &rec.CatID, &rec.RecordDate,
		&rec.Name, &recordType, &dosage, &rec.Taken, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "care_record", id)
	}
	rec.RecordType = domain.CareRecordType(recordType)
	rec.Dosage = postgres.TextToPtr(dosage)
	return &rec, nil
}
