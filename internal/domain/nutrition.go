package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the canonical calendar-date format used for diary dates,
// summary keys and trend bucketing.
const DateLayout = "2006-01-02"

// DailySummary is the aggregated nutrition picture for one (cat, date)
// pair. It is recomputed idempotently from the day's raw records and
// upserted; a stored row is always a full replacement, never a merge.
type DailySummary struct {
	CatID             uuid.UUID
	UserID            uuid.UUID
	SummaryDate       time.Time
	TotalCalories     float64
	TotalProteinG     float64
	TotalFatG         float64
	TotalCarbG        float64
	TotalFiberG       float64
	FeedingCount      int
	AvgAppetiteScore  *float64
	WaterIntakeML     float64
	SupplementCount   int
	MedicationCount   int
	CalculatedAt      time.Time
}

// TrendPoint is one calendar day in a requested trend range. Days without
// a stored summary are zero-filled with a nil appetite score.
type TrendPoint struct {
	Date             time.Time
	TotalCalories    float64
	TotalProteinG    float64
	TotalFatG        float64
	TotalCarbG       float64
	TotalFiberG      float64
	FeedingCount     int
	AvgAppetiteScore *float64
	WaterIntakeML    float64
	SupplementCount  int
	MedicationCount  int
}

// HasData reports whether the day counts as a "valid day" for period
// averages: at least one feeding record was aggregated for it.
func (p TrendPoint) HasData() bool { return p.FeedingCount > 0 }

// TrendAverages holds per-valid-day averages over a trend period.
// All fields are 0 (not NaN) when the period has no valid days;
// AvgAppetiteScore is nil when no valid day carried an appetite score.
type TrendAverages struct {
	Calories         float64
	ProteinG         float64
	FatG             float64
	CarbG            float64
	FiberG           float64
	FeedingCount     float64
	WaterIntakeML    float64
	AvgAppetiteScore *float64
}

// TrendReport is the full output of trend composition over a date range.
type TrendReport struct {
	Daily                []TrendPoint
	Averages             TrendAverages
	TotalDays            int
	DaysWithData         int
	DaysWithAppetiteData int
	SupplementTotal      int
	MedicationTotal      int
}
