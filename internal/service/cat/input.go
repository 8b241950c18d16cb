package cat

import (
	"math"
	"time"

	"github.com/whiskerlog/catcare-backend/internal/domain"
)

// CatInput holds parameters for creating or updating a cat profile.
type CatInput struct {
	Name          string
	Breed         *string
	BirthDate     *time.Time
	WeightKg      *float64
	Neutered      bool
	ActivityLevel domain.ActivityLevel
	PhotoURL      *string
	Notes         *string
}

// Validate validates the cat input. An empty activity level is allowed
// and defaults to NORMAL on create.
func (i CatInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.Breed != nil && len(*i.Breed) > 100 {
		errs = append(errs, domain.FieldError{Field: "breed", Message: "too long"})
	}

	if i.BirthDate != nil && i.BirthDate.After(time.Now()) {
		errs = append(errs, domain.FieldError{Field: "birth_date", Message: "cannot be in the future"})
	}

	if i.WeightKg != nil {
		if v := *i.WeightKg; math.IsNaN(v) || v <= 0 {
			errs = append(errs, domain.FieldError{Field: "weight_kg", Message: "must be positive"})
		} else if v > 50 {
			errs = append(errs, domain.FieldError{Field: "weight_kg", Message: "must be at most 50"})
		}
	}

	if i.ActivityLevel != "" && !i.ActivityLevel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "activity_level", Message: "must be LOW, NORMAL or HIGH"})
	}

	if i.PhotoURL != nil && len(*i.PhotoURL) > 512 {
		errs = append(errs, domain.FieldError{Field: "photo_url", Message: "too long"})
	}
	if i.Notes != nil && len(*i.Notes) > 2000 {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
