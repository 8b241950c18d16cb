package postgres

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Builder is the shared squirrel statement builder with PostgreSQL
// ($1, $2, ...) placeholders.
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// TextToPtr returns a *string (nil when NULL).
func TextToPtr(t pgtype.Text) *string {
	if t.Valid {
		return &t.String
	}
	return nil
}

// PtrToText converts a *string to pgtype.Text (nil → NULL).
func PtrToText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// Float8ToPtr returns a *float64 (nil when NULL).
func Float8ToPtr(f pgtype.Float8) *float64 {
	if f.Valid {
		return &f.Float64
	}
	return nil
}

// PtrToFloat8 converts a *float64 to pgtype.Float8 (nil → NULL).
func PtrToFloat8(f *float64) pgtype.Float8 {
	if f == nil {
		return pgtype.Float8{}
	}
	return pgtype.Float8{Float64: *f, Valid: true}
}

// Int4ToPtr returns an *int (nil when NULL).
func Int4ToPtr(i pgtype.Int4) *int {
	if i.Valid {
		v := int(i.Int32)
		return &v
	}
	return nil
}

// PtrToInt4 converts an *int to pgtype.Int4 (nil → NULL).
func PtrToInt4(i *int) pgtype.Int4 {
	if i == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: int32(*i), Valid: true}
}

// TimestamptzToPtr returns a *time.Time (nil when NULL).
func TimestamptzToPtr(t pgtype.Timestamptz) *time.Time {
	if t.Valid {
		return &t.Time
	}
	return nil
}

// PtrToTimestamptz converts a *time.Time to pgtype.Timestamptz (nil → NULL).
func PtrToTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

// UUIDToPtr returns a *uuid.UUID (nil when NULL).
func UUIDToPtr(u pgtype.UUID) *uuid.UUID {
	if u.Valid {
		v := uuid.UUID(u.Bytes)
		return &v
	}
	return nil
}

// PtrToUUID converts a *uuid.UUID to pgtype.UUID (nil → NULL).
func PtrToUUID(u *uuid.UUID) pgtype.UUID {
	if u == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *u, Valid: true}
}
