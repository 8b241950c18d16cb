package domain

import (
	"time"

	"github.com/google/uuid"
)

// Cat represents a cat profile owned by a user. All diary records and
// nutrition summaries hang off a cat; deleting a cat cascades to them.
type Cat struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Breed         *string
	BirthDate     *time.Time
	WeightKg      *float64
	Neutered      bool
	ActivityLevel ActivityLevel
	PhotoURL      *string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AgeMonths returns the cat's age in whole months at the given time,
// or nil when the birth date is unknown.
func (c *Cat) AgeMonths(now time.Time) *int {
	if c.BirthDate == nil {
		return nil
	}
	months := (now.Year()-c.BirthDate.Year())*12 + int(now.Month()) - int(c.BirthDate.Month())
	if now.Day() < c.BirthDate.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}
	return &months
}
