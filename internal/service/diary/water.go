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

// CreateWater adds a water-intake record to a cat's diary and refreshes
// the day's summary.
func (s *Service) CreateWater(ctx context.Context, input WaterInput) (*domain.WaterRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.cats.GetByID(ctx, userID, input.CatID); err != nil {
		return nil, fmt.Errorf("diary.CreateWater: %w", err)
	}

	date := dateOnly(input.Date)

	existing, err := s.waters.ListByCatDate(ctx, userID, input.CatID, date)
	if err != nil {
		return nil, fmt.Errorf("diary.CreateWater count: %w", err)
	}
	if len(existing) >= s.cfg.MaxRecordsPerDay {
		return nil, fmt.Errorf("diary.CreateWater: limit of %d records per day reached: %w",
			s.cfg.MaxRecordsPerDay, domain.ErrConflict)
	}

	now := time.Now()
	rec := &domain.WaterRecord{
		ID:         uuid.New(),
		UserID:     userID,
		CatID:      input.CatID,
		RecordDate: date,
		AmountML:   input.AmountML,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.waters.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("diary.CreateWater: %w", err)
	}

	s.refreshSummary(ctx, created.CatID, created.RecordDate)

	s.log.InfoContext(ctx, "water record created",
		slog.String("record_id", created.ID.String()),
		slog.String("cat_id", created.CatID.String()))

	return created, nil
}

// ListWater returns a cat's water records within the filter range.
func (s *Service) ListWater(ctx context.Context, input ListInput) ([]*domain.WaterRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.cats.GetByID(ctx, userID, input.CatID); err != nil {
		return nil, fmt.Errorf("diary.ListWater: %w", err)
	}

	records, err := s.waters.ListRange(ctx, userID, input.CatID, input.filter())
	if err != nil {
		return nil, fmt.Errorf("diary.ListWater: %w", err)
	}
	return records, nil
}

// UpdateWater replaces the amount of a water record.
func (s *Service) UpdateWater(ctx context.Context, recordID uuid.UUID, input WaterInput) (*domain.WaterRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	existing, err := s.waters.GetByID(ctx, userID, recordID)
	if err != nil {
		return nil, fmt.Errorf("diary.UpdateWater: %w", err)
	}

	existing.AmountML = input.AmountML
	existing.UpdatedAt = time.Now()

	updated, err := s.waters.Update(ctx, userID, existing)
	if err != nil {
		return nil, fmt.Errorf("diary.UpdateWater: %w", err)
	}

	s.refreshSummary(ctx, updated.CatID, updated.RecordDate)

	return updated, nil
}

// DeleteWater removes a water record and refreshes the day's summary.
func (s *Service) DeleteWater(ctx context.Context, recordID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	existing, err := s.waters.GetByID(ctx, userID, recordID)
	if err != nil {
		return fmt.Errorf("diary.DeleteWater: %w", err)
	}

	if err := s.waters.Delete(ctx, userID, recordID); err != nil {
		return fmt.Errorf("diary.DeleteWater: %w", err)
	}

	s.refreshSummary(ctx, existing.CatID, existing.RecordDate)

	s.log.InfoContext(ctx, "water record deleted",
		slog.String("record_id", recordID.String()))

	return nil
}
