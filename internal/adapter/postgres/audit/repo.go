// Package audit implements the append-only audit log repository using
// PostgreSQL. Records are only ever inserted; history is kept as long as
// the owning user exists.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/whiskerlog/catcare-backend/internal/adapter/postgres"
	"github.com/whiskerlog/catcare-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO audit_log (id, user_id, entity_type, entity_id, action, changes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, user_id, entity_type, entity_id, action, changes, created_at`

// Create inserts a new audit record and returns the persisted copy.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	changesJSON, err := json.Marshal(record.Changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("marshal audit changes: %w", err)
	}

	row := q.QueryRow(ctx, createSQL,
		record.ID, record.UserID, record.EntityType.String(),
		postgres.PtrToUUID(record.EntityID), record.Action.String(),
		changesJSON, record.CreatedAt)

	var (
		stored     domain.AuditRecord
		entityType string
		entityID   pgtype.UUID
		action     string
		changes    []byte
	)
	err = row.Scan(&stored.ID, &stored.UserID, &entityType, &entityID,
		&action, &changes, &stored.CreatedAt)
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}

	stored.EntityType = domain.EntityType(entityType)
	stored.EntityID = postgres.UUIDToPtr(entityID)
	stored.Action = domain.AuditAction(action)
	if err := json.Unmarshal(changes, &stored.Changes); err != nil {
		return domain.AuditRecord{}, fmt.Errorf("unmarshal audit changes: %w", err)
	}

	return stored, nil
}
