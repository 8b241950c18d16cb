package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/whiskerlog/catcare-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user and user_settings with default values.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Username:  "testuser-" + suffix,
		Name:      "Test User " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Username, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	settings := domain.DefaultUserSettings(user.ID)
	settings.UpdatedAt = now

	_, err = pool.Exec(ctx,
		`INSERT INTO user_settings (user_id, timezone, updated_at)
		 VALUES ($1, $2, $3)`,
		settings.UserID, settings.Timezone, settings.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user_settings: %v", err)
	}

	return user
}

// SeedCat creates a cat profile for the given user. Returns a filled domain.Cat.
func SeedCat(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Cat {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	cat := domain.Cat{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          "Cat " + suffix,
		Neutered:      true,
		ActivityLevel: domain.ActivityLevelNormal,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO cats (id, user_id, name, neutered, activity_level, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		cat.ID, cat.UserID, cat.Name, cat.Neutered, string(cat.ActivityLevel), cat.CreatedAt, cat.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCat insert: %v", err)
	}

	return cat
}

// SeedFoodProduct creates a food product with a simple wet-food analysis
// (75% moisture, 10% protein, 5% fat, 1% fiber, 2% ash, 90 kcal/100g).
func SeedFoodProduct(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.FoodProduct {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	kcal := 90.0
	product := domain.FoodProduct{
		ID:        uuid.New(),
		UserID:    userID,
		BrandName: "Brand " + suffix,
		Name:      "Food " + suffix,
		FoodType:  domain.FoodTypeWet,
		Analysis: domain.GuaranteedAnalysis{
			MoisturePct: 75,
			ProteinPct:  10,
			FatPct:      5,
			FiberPct:    1,
			AshPct:      2,
			KcalPer100g: &kcal,
		},
		DryMatter: domain.DryMatterAnalysis{
			DryMatterPct: 25,
			DMProteinPct: 40,
			DMFatPct:     20,
			DMFiberPct:   4,
			DMAshPct:     8,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO food_products (
			id, user_id, brand_name, name, name_normalized, food_type,
			moisture_pct, protein_pct, fat_pct, fiber_pct, ash_pct, kcal_per_100g,
			dry_matter_pct, dm_protein_pct, dm_fat_pct, dm_fiber_pct, dm_ash_pct,
			created_at, updated_at
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		product.ID, product.UserID, product.BrandName, product.Name,
		domain.NormalizeName(product.BrandName+" "+product.Name), string(product.FoodType),
		product.Analysis.MoisturePct, product.Analysis.ProteinPct, product.Analysis.FatPct,
		product.Analysis.FiberPct, product.Analysis.AshPct, product.Analysis.KcalPer100g,
		product.DryMatter.DryMatterPct, product.DryMatter.DMProteinPct, product.DryMatter.DMFatPct,
		product.DryMatter.DMFiberPct, product.DryMatter.DMAshPct,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFoodProduct insert: %v", err)
	}

	return product
}

// SeedFeeding creates a feeding record for the given cat/date referencing
// the given food product (may be uuid.Nil for an unlinked record).
func SeedFeeding(t *testing.T, pool *pgxpool.Pool, userID, catID uuid.UUID, date time.Time, productID *uuid.UUID, plannedG float64) domain.FeedingRecord {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	rec := domain.FeedingRecord{
		ID:            uuid.New(),
		UserID:        userID,
		CatID:         catID,
		RecordDate:    date,
		FoodProductID: productID,
		PlannedG:      plannedG,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO feeding_records (id, user_id, cat_id, record_date, food_product_id, planned_g, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.UserID, rec.CatID, rec.RecordDate, rec.FoodProductID, rec.PlannedG, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFeeding insert: %v", err)
	}

	return rec
}
