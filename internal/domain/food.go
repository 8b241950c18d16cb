package domain

import (
	"time"

	"github.com/google/uuid"
)

// GuaranteedAnalysis holds the as-fed percentages printed on a pet food
// label. Protein, fat, fiber, ash and moisture are required on labels;
// the rest are optional extras some manufacturers publish.
type GuaranteedAnalysis struct {
	MoisturePct   float64
	ProteinPct    float64
	FatPct        float64
	FiberPct      float64
	AshPct        float64
	CarbPct       *float64
	CalciumPct    *float64
	PhosphorusPct *float64
	SodiumPct     *float64
	KcalPer100g   *float64
}

// DryMatterAnalysis holds the label percentages rescaled to a dry-matter
// basis, plus the derived ratios. Optional fields are nil when the inputs
// needed to derive them were absent.
type DryMatterAnalysis struct {
	DryMatterPct    float64
	DMProteinPct    float64
	DMFatPct        float64
	DMFiberPct      float64
	DMAshPct        float64
	ProteinKcalPct  *float64
	FatKcalPct      *float64
	CarbKcalPct     *float64
	CalciumPhosphor *float64
}

// FoodProduct is a pet food in a user's personal catalog, stored together
// with its dry-matter analysis so lists render without recalculating.
type FoodProduct struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	BrandName string
	Name      string
	FoodType  FoodType
	TargetAge *TargetAge
	Analysis  GuaranteedAnalysis
	DryMatter DryMatterAnalysis
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FoodComposition is the slim per-100g view of a product joined onto a
// feeding record for daily aggregation. All fields are optional: a feeding
// may reference no product, or a product with no calorie data.
type FoodComposition struct {
	KcalPer100g *float64
	ProteinPct  *float64
	FatPct      *float64
	CarbPct     *float64
	FiberPct    *float64
}
