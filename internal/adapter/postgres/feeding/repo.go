// Package feeding implements the FeedingRecord repository using PostgreSQL.
// Day queries join the food catalog so aggregation sees each record's
// per-100g composition; range listings are built with squirrel.
package feeding

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

// Repo provides feeding record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new feeding record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const feedingColumns = `
fr.id, fr.user_id, fr.cat_id, fr.record_date, fr.food_product_id,
fr.planned_g, fr.actual_g, fr.appetite_score, fr.note, fr.created_at, fr.updated_at`

const compositionColumns = `
fp.kcal_per_100g, fp.protein_pct, fp.fat_pct, fp.carb_pct, fp.fiber_pct`

const getByIDSQL = `
SELECT ` + feedingColumns + `
FROM feeding_records fr
WHERE fr.id = $1 AND fr.user_id = $2`

const listByCatDateSQL = `
SELECT ` + feedingColumns + `, fp.id, ` + compositionColumns + `
FROM feeding_records fr
LEFT JOIN food_products fp ON fr.food_product_id = fp.id
WHERE fr.user_id = $1 AND fr.cat_id = $2 AND fr.record_date = $3
ORDER BY fr.created_at`

const countByCatDateSQL = `
SELECT count(*) FROM feeding_records
WHERE user_id = $1 AND cat_id = $2 AND record_date = $3`

const createSQL = `
INSERT INTO feeding_records (id, user_id, cat_id, record_date, food_product_id,
                             planned_g, actual_g, appetite_score, note, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
RETURNING id, user_id, cat_id, record_date, food_product_id,
          planned_g, actual_g, appetite_score, note, created_at, updated_at`

const updateSQL = `
UPDATE feeding_records
SET food_product_id = $3, planned_g = $4, actual_g = $5, appetite_score = $6,
    note = $7, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING id, user_id, cat_id, record_date, food_product_id,
          planned_g, actual_g, appetite_score, note, created_at, updated_at`

const deleteSQL = `DELETE FROM feeding_records WHERE id = $1 AND user_id = $2`

// GetByID returns a feeding record owned by the given user, without
// joined composition.
func (r *Repo) GetByID(ctx context.Context, userID, recordID uuid.UUID) (*domain.FeedingRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	return scanRecord(q.QueryRow(ctx, getByIDSQL, recordID, userID), recordID)
}

// ListByCatDate returns all feeding records for one (cat, date), each with
// its food composition joined on (nil when no product is linked).
func (r *Repo) ListByCatDate(ctx context.Context, userID, catID uuid.UUID, date time.Time) ([]*domain.FeedingRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByCatDateSQL, userID, catID, date)
	if err != nil {
		return nil, postgres.MapError(err, "feeding_record", catID)
	}
	defer rows.Close()

	var records []*domain.FeedingRecord
	for rows.Next() {
		rec, err := scanRecordWithComposition(rows)
		if err != nil {
			return nil, postgres.MapError(err, "feeding_record", catID)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "feeding_record", catID)
	}
	return records, nil
}

// CountByCatDate returns the number of feeding records for one (cat, date).
func (r *Repo) CountByCatDate(ctx context.Context, userID, catID uuid.UUID, date time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, countByCatDateSQL, userID, catID, date).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "feeding_record", catID)
	}
	return n, nil
}

// ListRange returns feeding records for a cat within the filter's date
// bounds, newest day first.
func (r *Repo) ListRange(ctx context.Context, userID, catID uuid.UUID, filter domain.DiaryFilter) ([]*domain.FeedingRecord, error) {
	b := postgres.Builder.
		Select("fr.id", "fr.user_id", "fr.cat_id", "fr.record_date", "fr.food_product_id",
			"fr.planned_g", "fr.actual_g", "fr.appetite_score", "fr.note",
			"fr.created_at", "fr.updated_at").
		From("feeding_records fr").
		Where(squirrel.Eq{"fr.user_id": userID, "fr.cat_id": catID}).
		OrderBy("fr.record_date DESC", "fr.created_at DESC")

	if filter.DateFrom != nil {
		b = b.Where(squirrel.GtOrEq{"fr.record_date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		b = b.Where(squirrel.LtOrEq{"fr.record_date": *filter.DateTo})
	}
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		b = b.Offset(uint64(filter.Offset))
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "feeding_record", catID)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "feeding_record", catID)
	}
	defer rows.Close()

	var records []*domain.FeedingRecord
	for rows.Next() {
		rec, err := scanRecord(rows, catID)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "feeding_record", catID)
	}
	return records, nil
}

// Create inserts a new feeding record.
func (r *Repo) Create(ctx context.Context, rec *domain.FeedingRecord) (*domain.FeedingRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		rec.ID, rec.UserID, rec.CatID, rec.RecordDate, rec.FoodProductID,
		rec.PlannedG, postgres.PtrToFloat8(rec.ActualAmountG),
		postgres.PtrToInt4(rec.AppetiteScore), postgres.PtrToText(rec.Note))
	return scanRecord(row, rec.ID)
}

// Update replaces the mutable fields of a feeding record. The record date
// and cat are immutable; delete and re-create to move a meal.
func (r *Repo) Update(ctx context.Context, userID uuid.UUID, rec *domain.FeedingRecord) (*domain.FeedingRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updateSQL,
		rec.ID, userID, rec.FoodProductID, rec.PlannedG,
		postgres.PtrToFloat8(rec.ActualAmountG),
		postgres.PtrToInt4(rec.AppetiteScore), postgres.PtrToText(rec.Note))
	return scanRecord(row, rec.ID)
}

// Delete removes a feeding record owned by the given user.
func (r *Repo) Delete(ctx context.Context, userID, recordID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, recordID, userID)
	if err != nil {
		return postgres.MapError(err, "feeding_record", recordID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "feeding_record", recordID)
	}
	return nil
}

func scanRecord(row interface{ Scan(...any) error }, id uuid.UUID) (*domain.FeedingRecord, error) {
	var (
		rec       domain.FeedingRecord
		productID pgtype.UUID
		actual    pgtype.Float8
		appetite  pgtype.Int4
		note      pgtype.Text
	)
	err := row.Scan(&rec.ID, &rec.UserID, &rec.CatID, &rec.RecordDate, &productID,
		&rec.PlannedG, &actual, &appetite, &note, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "feeding_record", id)
	}

	if productID.Valid {
		pid := uuid.UUID(productID.Bytes)
		rec.FoodProductID = &pid
	}
	rec.ActualAmountG = postgres.Float8ToPtr(actual)
	rec.AppetiteScore = postgres.Int4ToPtr(appetite)
	rec.Note = postgres.TextToPtr(note)
	return &rec, nil
}

func scanRecordWithComposition(row pgx.Rows) (*domain.FeedingRecord, error) {
	var (
		rec       domain.FeedingRecord
		productID pgtype.UUID
		actual    pgtype.Float8
		appetite  pgtype.Int4
		note      pgtype.Text

		joinedID                        pgtype.UUID
		kcal, protein, fat, carb, fiber pgtype.Float8
	)
	err := row.Scan(&rec.ID, &rec.UserID, &rec.CatID, &rec.RecordDate, &productID,
		&rec.PlannedG, &actual, &appetite, &note, &rec.CreatedAt, &rec.UpdatedAt,
		&joinedID, &kcal, &protein, &fat, &carb, &fiber)
	if err != nil {
		return nil, err
	}

	if productID.Valid {
		pid := uuid.UUID(productID.Bytes)
		rec.FoodProductID = &pid
	}
	rec.ActualAmountG = postgres.Float8ToPtr(actual)
	rec.AppetiteScore = postgres.Int4ToPtr(appetite)
	rec.Note = postgres.TextToPtr(note)

	// A dangling food_product_id (product deleted) joins to no row and
	// leaves the composition nil, same as an unlinked record.
	if joinedID.Valid {
		rec.Composition = &domain.FoodComposition{
			KcalPer100g: postgres.Float8ToPtr(kcal),
			ProteinPct:  postgres.Float8ToPtr(protein),
			FatPct:      postgres.Float8ToPtr(fat),
			CarbPct:     postgres.Float8ToPtr(carb),
			FiberPct:    postgres.Float8ToPtr(fiber),
		}
	}
	return &rec, nil
}
