package domain

import (
	"time"

	"github.com/google/uuid"
)

// FeedingRecord is one planned or completed meal for a cat on a given day.
// ActualAmountG is nil until the meal is confirmed; daily aggregation then
// falls back to the planned amount.
type FeedingRecord struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CatID         uuid.UUID
	RecordDate    time.Time
	FoodProductID *uuid.UUID
	PlannedG      float64
	ActualAmountG *float64
	AppetiteScore *int
	Note          *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Composition is joined from the referenced food product when the
	// record is loaded for aggregation. Nil when no product is linked.
	Composition *FoodComposition
}

// ConsumedG returns the gram amount that counts toward daily totals:
// the actual amount when recorded, otherwise the planned amount.
func (f *FeedingRecord) ConsumedG() float64 {
	if f.ActualAmountG != nil {
		return *f.ActualAmountG
	}
	return f.PlannedG
}

// WaterRecord is one water-intake entry for a cat on a given day.
type WaterRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CatID      uuid.UUID
	RecordDate time.Time
	AmountML   *float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CareRecord is one supplement or medication entry for a cat on a given day.
type CareRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CatID      uuid.UUID
	RecordDate time.Time
	Name       string
	RecordType CareRecordType
	Dosage     *string
	Taken      bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DiaryFilter contains filtering/pagination parameters for diary listings.
type DiaryFilter struct {
	DateFrom   *time.Time
	DateTo     *time.Time
	RecordType *CareRecordType
	Limit      int
	Offset     int
}
