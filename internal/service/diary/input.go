package diary

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/whiskerlog/catcare-backend/internal/domain"
)

// FeedingInput holds parameters for creating or updating a feeding record.
// CatID and Date are fixed on create and ignored on update.
type FeedingInput struct {
	CatID         uuid.UUID
	Date          time.Time
	FoodProductID *uuid.UUID
	PlannedG      float64
	ActualAmountG *float64
	AppetiteScore *int
	Note          *string
}

// Validate validates the feeding input.
func (i *FeedingInput) Validate() error {
	var errs []domain.FieldError

	if i.CatID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "cat_id", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if math.IsNaN(i.PlannedG) || i.PlannedG <= 0 {
		errs = append(errs, domain.FieldError{Field: "planned_g", Message: "must be a number greater than 0"})
	}
	if i.ActualAmountG != nil && (math.IsNaN(*i.ActualAmountG) || *i.ActualAmountG < 0) {
		errs = append(errs, domain.FieldError{Field: "actual_amount_g", Message: "must not be negative"})
	}
	if i.AppetiteScore != nil && (*i.AppetiteScore < 1 || *i.AppetiteScore > 5) {
		errs = append(errs, domain.FieldError{Field: "appetite_score", Message: "must be between 1 and 5"})
	}
	if i.Note != nil && len(*i.Note) > 1000 {
		errs = append(errs, domain.FieldError{Field: "note", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// WaterInput holds parameters for creating or updating a water record.
type WaterInput struct {
	CatID    uuid.UUID
	Date     time.Time
	AmountML *float64
}

// Validate validates the water input.
func (i *WaterInput) Validate() error {
	var errs []domain.FieldError

	if i.CatID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "cat_id", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if i.AmountML != nil && (math.IsNaN(*i.AmountML) || *i.AmountML <= 0) {
		errs = append(errs, domain.FieldError{Field: "amount_ml", Message: "must be a number greater than 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CareInput holds parameters for creating or updating a supplement or
// medication record.
type CareInput struct {
	CatID      uuid.UUID
	Date       time.Time
	Name       string
	RecordType domain.CareRecordType
	Dosage     *string
	Taken      bool
}

// Validate validates the care input.
func (i *CareInput) Validate() error {
	var errs []domain.FieldError

	if i.CatID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "cat_id", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if !i.RecordType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "record_type", Message: "must be SUPPLEMENT or MEDICATION"})
	}
	if i.Dosage != nil && len(*i.Dosage) > 200 {
		errs = append(errs, domain.FieldError{Field: "dosage", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds filters for listing diary records of one cat.
type ListInput struct {
	CatID      uuid.UUID
	DateFrom   *time.Time
	DateTo     *time.Time
	RecordType *domain.CareRecordType
	Limit      int
	Offset     int
}

// Validate validates the list input.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.CatID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "cat_id", Message: "required"})
	}
	if i.DateFrom != nil && i.DateTo != nil && i.DateTo.Before(*i.DateFrom) {
		errs = append(errs, domain.FieldError{Field: "date_to", Message: "must not be before date_from"})
	}
	if i.RecordType != nil && !i.RecordType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "record_type", Message: "must be SUPPLEMENT or MEDICATION"})
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

func (i *ListInput) filter() domain.DiaryFilter {
	f := domain.DiaryFilter{
		DateFrom:   i.DateFrom,
		DateTo:     i.DateTo,
		RecordType: i.RecordType,
		Limit:      i.Limit,
		Offset:     i.Offset,
	}
	if f.DateFrom != nil {
		d := dateOnly(*f.DateFrom)
		f.DateFrom = &d
	}
	if f.DateTo != nil {
		d := dateOnly(*f.DateTo)
		f.DateTo = &d
	}
	return f
}
