package user

import (
	"math"
	"time"

	"github.com/whiskerlog/catcare-backend/internal/domain"
)

// UpdateProfileInput holds parameters for profile update operation.
type UpdateProfileInput struct {
	Name      string
	AvatarURL *string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.AvatarURL != nil && len(*i.AvatarURL) > 512 {
		errs = append(errs, domain.FieldError{Field: "avatar_url", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSettingsInput holds parameters for settings update operation.
// All fields are optional (nil = don't change).
type UpdateSettingsInput struct {
	Timezone           *string
	DailyCalorieTarget *float64
	DailyWaterTargetML *float64
}

// Validate validates the update settings input.
func (i UpdateSettingsInput) Validate() error {
	var errs []domain.FieldError

	if i.Timezone != nil {
		if *i.Timezone == "" {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "cannot be empty"})
		} else if len(*i.Timezone) > 64 {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "too long"})
		} else if _, err := time.LoadLocation(*i.Timezone); err != nil {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "invalid IANA timezone"})
		}
	}

	if i.DailyCalorieTarget != nil {
		if v := *i.DailyCalorieTarget; math.IsNaN(v) || v <= 0 {
			errs = append(errs, domain.FieldError{Field: "daily_calorie_target", Message: "must be positive"})
		} else if v > 10000 {
			errs = append(errs, domain.FieldError{Field: "daily_calorie_target", Message: "must be at most 10000"})
		}
	}

	if i.DailyWaterTargetML != nil {
		if v := *i.DailyWaterTargetML; math.IsNaN(v) || v <= 0 {
			errs = append(errs, domain.FieldError{Field: "daily_water_target_ml", Message: "must be positive"})
		} else if v > 5000 {
			errs = append(errs, domain.FieldError{Field: "daily_water_target_ml", Message: "must be at most 5000"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
