// Package food implements the FoodProduct repository using PostgreSQL.
// Fixed-shape queries use raw SQL; the searchable listing is built
// dynamically with squirrel.
package food

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/whiskerlog/catcare-backend/internal/adapter/postgres"
	"github.com/whiskerlog/catcare-backend/internal/domain"
)

// Filter defines parameters for searching a user's food catalog.
type Filter struct {
	// Search performs ILIKE '%...%' on name_normalized.
	Search *string
	// FoodType restricts results to one product form.
	FoodType *domain.FoodType
	// Limit caps the result size; 0 means the repo default.
	Limit  int
	Offset int
}

const (
	defaultLimit = 50
	maxLimit     = 200
)

func (f *Filter) normalize() {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// Repo provides food product persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new food product repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const foodColumns = `
id, user_id, brand_name, name, food_type, target_age,
moisture_pct, protein_pct, fat_pct, fiber_pct, ash_pct,
carb_pct, calcium_pct, phosphorus_pct, sodium_pct, kcal_per_100g,
dry_matter_pct, dm_protein_pct, dm_fat_pct, dm_fiber_pct, dm_ash_pct,
protein_kcal_pct, fat_kcal_pct, carb_kcal_pct, ca_p_ratio,
created_at, updated_at`

const getByIDSQL = `SELECT ` + foodColumns + ` FROM food_products WHERE id = $1 AND user_id = $2`

const countByUserSQL = `SELECT count(*) FROM food_products WHERE user_id = $1`

const createSQL = `
INSERT INTO food_products (
	id, user_id, brand_name, name, name_normalized, food_type, target_age,
	moisture_pct, protein_pct, fat_pct, fiber_pct, ash_pct,
	carb_pct, calcium_pct, phosphorus_pct, sodium_pct, kcal_per_100g,
	dry_matter_pct, dm_protein_pct, dm_fat_pct, dm_fiber_pct, dm_ash_pct,
	protein_kcal_pct, fat_kcal_pct, carb_kcal_pct, ca_p_ratio,
	created_at, updated_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7,
	$8, $9, $10, $11, $12,
	$13, $14, $15, $16, $17,
	$18, $19, $20, $21, $22,
	$23, $24, $25, $26,
	now(), now()
)
RETURNING ` + foodColumns

const updateSQL = `
UPDATE food_products SET
	brand_name = $3, name = $4, name_normalized = $5, food_type = $6, target_age = $7,
	moisture_pct = $8, protein_pct = $9, fat_pct = $10, fiber_pct = $11, ash_pct = $12,
	carb_pct = $13, calcium_pct = $14, phosphorus_pct = $15, sodium_pct = $16, kcal_per_100g = $17,
	dry_matter_pct = $18, dm_protein_pct = $19, dm_fat_pct = $20, dm_fiber_pct = $21, dm_ash_pct = $22,
	protein_kcal_pct = $23, fat_kcal_pct = $24, carb_kcal_pct = $25, ca_p_ratio = $26,
	updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + foodColumns

const deleteSQL = `DELETE FROM food_products WHERE id = $1 AND user_id = $2`

// GetByID returns a food product owned by the given user.
func (r *Repo) GetByID(ctx context.Context, userID, productID uuid.UUID) (*domain.FoodProduct, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	return scanFood(q.QueryRow(ctx, getByIDSQL, productID, userID), productID)
}

// CountByUser returns the number of food products a user owns.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, countByUserSQL, userID).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "food_product", userID)
	}
	return n, nil
}

// List returns food products of a user matching the filter, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter Filter) ([]*domain.FoodProduct, error) {
	filter.normalize()

	b := postgres.Builder.
		Select("id", "user_id", "brand_name", "name", "food_type", "target_age",
			"moisture_pct", "protein_pct", "fat_pct", "fiber_pct", "ash_pct",
			"carb_pct", "calcium_pct", "phosphorus_pct", "sodium_pct", "kcal_per_100g",
			"dry_matter_pct", "dm_protein_pct", "dm_fat_pct", "dm_fiber_pct", "dm_ash_pct",
			"protein_kcal_pct", "fat_kcal_pct", "carb_kcal_pct", "ca_p_ratio",
			"created_at", "updated_at").
		From("food_products").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	if filter.Search != nil && *filter.Search != "" {
		b = b.Where(squirrel.ILike{"name_normalized": "%" + domain.NormalizeName(*filter.Search) + "%"})
	}
	if filter.FoodType != nil {
		b = b.Where(squirrel.Eq{"food_type": string(*filter.FoodType)})
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "food_product", userID)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "food_product", userID)
	}
	defer rows.Close()

	var products []*domain.FoodProduct
	for rows.Next() {
		p, err := scanFood(rows, userID)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "food_product", userID)
	}
	return products, nil
}

// Create inserts a new food product and returns the persisted row.
func (r *Repo) Create(ctx context.Context, p *domain.FoodProduct) (*domain.FoodProduct, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	row := q.QueryRow(ctx, createSQL, createArgs(p)...)
	return scanFood(row, p.ID)
}

// Update replaces all mutable fields of a food product owned by the user.
func (r *Repo) Update(ctx context.Context, userID uuid.UUID, p *domain.FoodProduct) (*domain.FoodProduct, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	args := append([]any{p.ID, userID}, createArgs(p)[2:]...)
	row := q.QueryRow(ctx, updateSQL, args...)
	return scanFood(row, p.ID)
}

// Delete removes a food product owned by the user. Feeding records that
// reference it keep their row with food_product_id set to NULL.
func (r *Repo) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, productID, userID)
	if err != nil {
		return postgres.MapError(err, "food_product", productID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "food_product", productID)
	}
	return nil
}

func createArgs(p *domain.FoodProduct) []any {
	var targetAge pgtype.Text
	if p.TargetAge != nil {
		targetAge = pgtype.Text{String: string(*p.TargetAge), Valid: true}
	}
	a, dm := p.Analysis, p.DryMatter
	return []any{
		p.ID, p.UserID, p.BrandName, p.Name,
		domain.NormalizeName(p.BrandName + " " + p.Name), string(p.FoodType), targetAge,
		a.MoisturePct, a.ProteinPct, a.FatPct, a.FiberPct, a.AshPct,
		postgres.PtrToFloat8(a.CarbPct), postgres.PtrToFloat8(a.CalciumPct),
		postgres.PtrToFloat8(a.PhosphorusPct), postgres.PtrToFloat8(a.SodiumPct),
		postgres.PtrToFloat8(a.KcalPer100g),
		dm.DryMatterPct, dm.DMProteinPct, dm.DMFatPct, dm.DMFiberPct, dm.DMAshPct,
		postgres.PtrToFloat8(dm.ProteinKcalPct), postgres.PtrToFloat8(dm.FatKcalPct),
		postgres.PtrToFloat8(dm.CarbKcalPct), postgres.PtrToFloat8(dm.CalciumPhosphor),
	}
}

func scanFood(row interface{ Scan(...any) error }, id uuid.UUID) (*domain.FoodProduct, error) {
	var (
		p         domain.FoodProduct
		foodType  string
		targetAge pgtype.Text

		carb, calcium, phosphorus, sodium, kcal          pgtype.Float8
		proteinKcal, fatKcal, carbKcal, caPRatio         pgtype.Float8
	)
	err := row.Scan(
		&p.ID, &p.UserID, &p.BrandName, &p.Name, &foodType, &targetAge,
		&p.Analysis.MoisturePct, &p.Analysis.ProteinPct, &p.Analysis.FatPct,
		&p.Analysis.FiberPct, &p.Analysis.AshPct,
		&carb, &calcium, &phosphorus, &sodium, &kcal,
		&p.DryMatter.DryMatterPct, &p.DryMatter.DMProteinPct, &p.DryMatter.DMFatPct,
		&p.DryMatter.DMFiberPct, &p.DryMatter.DMAshPct,
		&proteinKcal, &fatKcal, &carbKcal, &caPRatio,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "food_product", id)
	}

	p.FoodType = domain.FoodType(foodType)
	if targetAge.Valid {
		ta := domain.TargetAge(targetAge.String)
		p.TargetAge = &ta
	}
	p.Analysis.CarbPct = postgres.Float8ToPtr(carb)
	p.Analysis.CalciumPct = postgres.Float8ToPtr(calcium)
	p.Analysis.PhosphorusPct = postgres.Float8ToPtr(phosphorus)
	p.Analysis.SodiumPct = postgres.Float8ToPtr(sodium)
	p.Analysis.KcalPer100g = postgres.Float8ToPtr(kcal)
	p.DryMatter.ProteinKcalPct = postgres.Float8ToPtr(proteinKcal)
	p.DryMatter.FatKcalPct = postgres.Float8ToPtr(fatKcal)
	p.DryMatter.CarbKcalPct = postgres.Float8ToPtr(carbKcal)
	p.DryMatter.CalciumPhosphor = postgres.Float8ToPtr(caPRatio)
	return &p, nil
}
