package nutrition

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/whiskerlog/catcare-backend/internal/domain"
)

// CalculationInput holds the as-fed label values for one food product.
// The five analysis percentages and the weight are required; pointer
// fields are optional label data.
type CalculationInput struct {
	BrandName   string
	ProductName string
	FoodWeightG *float64

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

// Validate checks all fields and collects all errors. Carbohydrate and
// mineral percentages are deliberately left unchecked; they are optional
// label data and absent values must not block a calculation.
func (i *CalculationInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.BrandName) == "" {
		errs = append(errs, domain.FieldError{Field: "brand_name", Message: "required"})
	}
	if strings.TrimSpace(i.ProductName) == "" {
		errs = append(errs, domain.FieldError{Field: "product_name", Message: "required"})
	}
	if i.FoodWeightG == nil || math.IsNaN(*i.FoodWeightG) || *i.FoodWeightG <= 0 {
		errs = append(errs, domain.FieldError{Field: "food_weight", Message: "must be a number greater than 0"})
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

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DailySummaryInput holds the parameters for recomputing one day's summary.
type DailySummaryInput struct {
	CatID uuid.UUID
	Date  time.Time
}

// Validate checks all fields and collects all errors.
func (i *DailySummaryInput) Validate() error {
	var errs []domain.FieldError

	if i.CatID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "cat_id", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// TrendInput holds the parameters for composing a trend report. Either a
// named period or an explicit date range must be supplied, not both.
type TrendInput struct {
	CatID    uuid.UUID
	Period   string
	DateFrom *time.Time
	DateTo   *time.Time
}

// Validate checks all fields and collects all errors.
func (i *TrendInput) Validate() error {
	var errs []domain.FieldError

	if i.CatID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "cat_id", Message: "required"})
	}

	hasPeriod := i.Period != ""
	hasRange := i.DateFrom != nil || i.DateTo != nil

	switch {
	case hasPeriod && hasRange:
		errs = append(errs, domain.FieldError{Field: "period", Message: "cannot be combined with an explicit date range"})
	case hasPeriod:
		if i.Period != PeriodWeek && i.Period != PeriodMonth {
			errs = append(errs, domain.FieldError{Field: "period", Message: "must be week or month"})
		}
	case hasRange:
		if i.DateFrom == nil {
			errs = append(errs, domain.FieldError{Field: "date_from", Message: "required with date_to"})
		}
		if i.DateTo == nil {
			errs = append(errs, domain.FieldError{Field: "date_to", Message: "required with date_from"})
		}
	default:
		errs = append(errs, domain.FieldError{Field: "period", Message: "period or date range required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
