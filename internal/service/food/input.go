package food

import (
	"fmt"
	"math"
	"strings"

	"github.com/whiskerlog/catcare-backend/internal/domain"
)

// ProductInput holds the label data for creating or updating a catalog
// product. The five analysis percentages are required label fields; the
// rest are optional extras.
type ProductInput struct {
	BrandName string
	Name      string
	FoodType  domain.FoodType
	TargetAge *domain.TargetAge

	MoisturePct *float64
	ProteinPct  *float64
	FatPct      *float64
	FiberPct    *float64
	AshPct      *float64

	CarbPct       *float64
	CalciumPct    *float64
	PhosphorusPct *float64
	SodiumPct     *float64
	KcalPer100g   *float64
}

// Validate checks all fields and collects all errors.
func (i *ProductInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.BrandName) == "" {
		errs = append(errs, domain.FieldError{Field: "brand_name", Message: "required"})
	} else if len(i.BrandName) > 100 {
		errs = append(errs, domain.FieldError{Field: "brand_name", Message: "too long"})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if !i.FoodType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "food_type", Message: "must be DRY, WET, POUCH, RAW, TREAT or OTHER"})
	}
	if i.TargetAge != nil && !i.TargetAge.IsValid() {
		errs = append(errs, domain.FieldError{Field: "target_age", Message: "must be KITTEN, ADULT, SENIOR or ALL"})
	}

	percentFields := []struct {
		name  string
		value *float64
	}{
		{"protein_percent", i.ProteinPct},
		{"fat_percent", i.FatPct},
		{"fiber_percent", i.FiberPct},
		{"ash_percent", i.AshPct},
		{"moisture_percent", i.MoisturePct},
	}

	sum := 0.0
	sumOK := true
	for _, f := range percentFields {
		if f.value == nil || math.IsNaN(*f.value) || *f.value < 0 || *f.value > 100 {
			errs = append(errs, domain.FieldError{Field: f.name, Message: "must be a number between 0 and 100"})
			sumOK = false
			continue
		}
		sum += *f.value
	}

	if sumOK && sum > 100 {
		errs = append(errs, domain.FieldError{
			Field:   "analysis",
			Message: fmt.Sprintf("percentages sum to %.2f, must not exceed 100", sum),
		})
	}

	if i.KcalPer100g != nil && (math.IsNaN(*i.KcalPer100g) || *i.KcalPer100g <= 0) {
		errs = append(errs, domain.FieldError{Field: "kcal_per_100g", Message: "must be a number greater than 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// analysis packs the validated input into the domain label struct.
func (i *ProductInput) analysis() domain.GuaranteedAnalysis {
	return domain.GuaranteedAnalysis{
		MoisturePct:   *i.MoisturePct,
		ProteinPct:    *i.ProteinPct,
		FatPct:        *i.FatPct,
		FiberPct:      *i.FiberPct,
		AshPct:        *i.AshPct,
		CarbPct:       i.CarbPct,
		CalciumPct:    i.CalciumPct,
		PhosphorusPct: i.PhosphorusPct,
		SodiumPct:     i.SodiumPct,
		KcalPer100g:   i.KcalPer100g,
	}
}

// ListInput holds filters for listing the catalog.
type ListInput struct {
	Search   *string
	FoodType *domain.FoodType
	Limit    int
	Offset   int
}

// Validate validates the list input.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.FoodType != nil && !i.FoodType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "food_type", Message: "unknown food type"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
