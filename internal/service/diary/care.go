package diary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/whiskerlog/catcare-backend/internal/domain"
	"github.com/whiskerlog/catcare-backend/pkg/ctxutil"
)

// CreateCare adds a supplement or medication record to a cat's diary and
// refreshes the day's summary.
func (s *Service) CreateCare(ctx context.Context, input CareInput) (*domain.CareRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.cats.GetByID(ctx, userID, input.CatID); err != nil {
		return nil, fmt.Errorf("diary.CreateCare: %w", err)
	}

	date := dateOnly(input.Date)

	existing, err := s.cares.ListByCatDate(ctx, userID, input.CatID, date)
	if err != nil {
		return nil, fmt.Errorf("diary.CreateCare count: %w", err)
	}
	if len(existing) >= s.cfg.MaxRecordsPerDay {
		return nil, fmt.Errorf("diary.CreateCare: limit of %d records per day reached: %w",
			s.cfg.MaxRecordsPerDay, domain.ErrConflict)
	}

	now := time.Now()
	rec := &domain.CareRecord{
		ID:         uuid.New(),
		UserID:     userID,
		CatID:      input.CatID,
		RecordDate: date,
		Name:       input.Name,
		RecordType: input.RecordType,
		Dosage:     input.Dosage,
		Taken:      input.Taken,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.cares.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("diary.CreateCare: %w", err)
	}

	s.refreshSummary(ctx, created.CatID, created.RecordDate)

	s.log.InfoContext(ctx, "care record created",
		slog.String("record_id", created.ID.String()),
		slog.String("cat_id", created.CatID.String()),
		slog.String("record_type", created.RecordType.String()))

	return created, nil
}

// ListCare returns a cat's supplement and medication records within the
// filter range, optionally restricted to one record type.
func (s *Service) ListCare(ctx context.Context, input ListInput) ([]*domain.CareRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.cats.GetByID(ctx, userID, input.CatID); err != nil {
		return nil, fmt.Errorf("diary.ListCare: %w", err)
	}

	records, err := s.cares.ListRange(ctx, userID, input.CatID, input.filter())
	if err != nil {
		return nil, fmt.Errorf("diary.ListCare: %w", err)
	}
	return records, nil
}

// UpdateCare replaces the mutable fields of a care record.
func (s *Service) UpdateCare(ctx context.Context, recordID uuid.UUID, input CareInput) (*domain.CareRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	existing, err := s.cares.GetByID(ctx, userID, recordID)
	if err != nil {
		return nil, fmt.Errorf("diary.UpdateCare: %w", err)
	}

	existing.Name = input.Name
	existing.RecordType = input.RecordType
	existing.Dosage = input.Dosage
	existing.Taken = input.Taken
	existing.UpdatedAt = time.Now()

	updated, err := s.cares.Update(ctx, userID, existing)
	if err != nil {
		return nil, fmt.Errorf("diary.UpdateCare: %w", err)
	}

	s.refreshSummary(ctx, updated.CatID, updated.RecordDate)

	return updated, nil
}

// DeleteCare removes a care record and refreshes the day's summary.
func (s *Service) DeleteCare(ctx context.Context, recordID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	existing, err := s.cares.GetByID(ctx, userID, recordID)
	if err != nil {
		return fmt.Errorf("diary.DeleteCare: %w", err)
	}

	if err := s.cares.Delete(ctx, userID, recordID); err != nil {
		return fmt.Errorf("diary.DeleteCare: %w", err)
	}

	s.refreshSummary(ctx, existing.CatID, existing.RecordDate)

	s.log.InfoContext(ctx, "care record deleted",
		slog.String("record_id", recordID.String()))

	return nil
}
