// Package summary implements the DailySummary repository using PostgreSQL.
// Summaries are keyed by (cat_id, summary_date); writes are full-replace
// upserts so recomputation stays idempotent.
package summary

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/whiskerlog/catcare-backend/internal/adapter/postgres"
	"github.com/whiskerlog/catcare-backend/internal/domain"
)

// Repo provides daily summary persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new daily summary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const summaryColumns = `
cat_id, user_id, summary_date, total_calories, total_protein_g, total_fat_g,
total_carb_g, total_fiber_g, feeding_count, avg_appetite_score,
water_intake_ml, supplement_count, medication_count, calculated_at`

const upsertSQL = `
INSERT INTO daily_summaries (cat_id, user_id, summary_date, total_calories,
                             total_protein_g, total_fat_g, total_carb_g, total_fiber_g,
                             feeding_count, avg_appetite_score, water_intake_ml,
                             supplement_count, medication_count, calculated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now())
ON CONFLICT (cat_id, summary_date) DO UPDATE SET
    total_calories     = EXCLUDED.total_calories,
    total_protein_g    = EXCLUDED.total_protein_g,
    total_fat_g        = EXCLUDED.total_fat_g,
    total_carb_g       = EXCLUDED.total_carb_g,
    total_fiber_g      = EXCLUDED.total_fiber_g,
    feeding_count      = EXCLUDED.feeding_count,
    avg_appetite_score = EXCLUDED.avg_appetite_score,
    water_intake_ml    = EXCLUDED.water_intake_ml,
    supplement_count   = EXCLUDED.supplement_count,
    medication_count   = EXCLUDED.medication_count,
    calculated_at      = EXCLUDED.calculated_at
RETURNING ` + summaryColumns

const getByCatDateSQL = `
SELECT ` + summaryColumns + `
FROM daily_summaries
WHERE user_id = $1 AND cat_id = $2 AND summary_date = $3`

const listRangeSQL = `
SELECT ` + summaryColumns + `
FROM daily_summaries
WHERE user_id = $1 AND cat_id = $2 AND summary_date BETWEEN $3 AND $4
ORDER BY summary_date`

const deleteByCatDateSQL = `
DELETE FROM daily_summaries WHERE user_id = $1 AND cat_id = $2 AND summary_date = $3`

// Upsert stores a summary, fully replacing any existing row for the same
// (cat, date).
func (r *Repo) Upsert(ctx context.Context, s *domain.DailySummary) (*domain.DailySummary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, upsertSQL,
		s.CatID, s.UserID, s.SummaryDate,
		s.TotalCalories, s.TotalProteinG, s.TotalFatG, s.TotalCarbG, s.TotalFiberG,
		s.FeedingCount, postgres.PtrToFloat8(s.AvgAppetiteScore),
		s.WaterIntakeML, s.SupplementCount, s.MedicationCount)
	return scanSummary(row, s.CatID)
}

// GetByCatDate returns the stored summary for one (cat, date).
func (r *Repo) GetByCatDate(ctx context.Context, userID, catID uuid.UUID, date time.Time) (*domain.DailySummary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	return scanSummary(q.QueryRow(ctx, getByCatDateSQL, userID, catID, date), catID)
}

// ListRange returns stored summaries for a cat between two dates inclusive,
// ordered by date. Days without a stored summary produce no row; trend
// composition zero-fills them.
func (r *Repo) ListRange(ctx context.Context, userID, catID uuid.UUID, from, to time.Time) ([]*domain.DailySummary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listRangeSQL, userID, catID, from, to)
	if err != nil {
		return nil, postgres.MapError(err, "daily_summary", catID)
	}
	defer rows.Close()

	var summaries []*domain.DailySummary
	for rows.Next() {
		s, err := scanSummary(rows, catID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "daily_summary", catID)
	}
	return summaries, nil
}

// DeleteByCatDate removes the stored summary for one (cat, date). Used when
// the last diary record of a day is deleted. Deleting an absent summary is
// not an error.
func (r *Repo) DeleteByCatDate(ctx context.Context, userID, catID uuid.UUID, date time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteByCatDateSQL, userID, catID, date); err != nil {
		return postgres.MapError(err, "daily_summary", catID)
	}
	return nil
}

func scanSummary(row interface{ Scan(...any) error }, id uuid.UUID) (*domain.DailySummary, error) {
	var (
		s        domain.DailySummary
		appetite pgtype.Float8
	)
	err := row.Scan(&s.CatID, &s.UserID, &s.SummaryDate,
		&s.TotalCalories, &s.TotalProteinG, &s.TotalFatG, &s.TotalCarbG, &s.TotalFiberG,
		&s.FeedingCount, &appetite, &s.WaterIntakeML,
		&s.SupplementCount, &s.MedicationCount, &s.CalculatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "daily_summary", id)
	}
	s.AvgAppetiteScore = postgres.Float8ToPtr(appetite)
	return &s, nil
}
