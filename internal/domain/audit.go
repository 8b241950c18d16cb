package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is one append-only entry in the account change history.
// Changes holds a per-field {"old": ..., "new": ...} map for updates and
// may be empty for create/delete entries.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
