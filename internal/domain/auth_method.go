package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuthMethodType represents the type of authentication credential.
type AuthMethodType string

const (
	AuthMethodPassword AuthMethodType = "password"
)

func (m AuthMethodType) String() string { return string(m) }

// IsValid returns true if the method type is a known value.
func (m AuthMethodType) IsValid() bool {
	return m == AuthMethodPassword
}

// AuthMethod represents a single authentication credential for a user.
// Kept as a separate table so additional login methods can be attached
// to one account later without a user-table migration.
type AuthMethod struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Method       AuthMethodType
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
