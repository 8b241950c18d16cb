package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.Diary.validate(); err != nil {
		return fmt.Errorf("diary: %w", err)
	}

	return nil
}

func (d *DiaryConfig) validate() error {
	if d.MaxCatsPerUser <= 0 {
		return fmt.Errorf("max_cats_per_user must be > 0 (got %d)", d.MaxCatsPerUser)
	}
	if d.MaxTrendRangeDays <= 0 {
		return fmt.Errorf("max_trend_range_days must be > 0 (got %d)", d.MaxTrendRangeDays)
	}
	if d.DefaultListLimit <= 0 || d.DefaultListLimit > d.MaxListLimit {
		return fmt.Errorf("default_list_limit must be in (0, max_list_limit] (got %d)", d.DefaultListLimit)
	}
	return nil
}
