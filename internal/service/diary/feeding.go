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

// CreateFeeding adds a feeding record to a cat's diary and refreshes the
// day's summary. Returns ErrConflict when the per-day record limit is
// reached.
func (s *Service) CreateFeeding(ctx context.Context, input FeedingInput) (*domain.FeedingRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Ownership check; a foreign cat reads as not found.
	if _, err := s.cats.GetByID(ctx, userID, input.CatID); err != nil {
		return nil, fmt.Errorf("diary.CreateFeeding: %w", err)
	}

	date := dateOnly(input.Date)

	count, err := s.feedings.CountByCatDate(ctx, userID, input.CatID, date)
	if err != nil {
		return nil, fmt.Errorf("diary.CreateFeeding count: %w", err)
	}
	if count >= s.cfg.MaxRecordsPerDay {
		return nil, fmt.Errorf("diary.CreateFeeding: limit of %d records per day reached: %w",
			s.cfg.MaxRecordsPerDay, domain.ErrConflict)
	}

	now := time.Now()
	rec := &domain.FeedingRecord{
		ID:            uuid.New(),
		UserID:        userID,
		CatID:         input.CatID,
		RecordDate:    date,
		FoodProductID: input.FoodProductID,
		PlannedG:      input.PlannedG,
		ActualAmountG: input.ActualAmountG,
		AppetiteScore: input.AppetiteScore,
		Note:          input.Note,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.feedings.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("diary.CreateFeeding: %w", err)
	}

	s.refreshSummary(ctx, created.CatID, created.RecordDate)

	s.log.InfoContext(ctx, "feeding record created",
		slog.String("record_id", created.ID.String()),
		slog.String("cat_id", created.CatID.String()))

	return created, nil
}

// ListFeedings returns a cat's feeding records within the filter range.
func (s *Service) ListFeedings(ctx context.Context, input ListInput) ([]*domain.FeedingRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.cats.GetByID(ctx, userID, input.CatID); err != nil {
		return nil, fmt.Errorf("diary.ListFeedings: %w", err)
	}

	records, err := s.feedings.ListRange(ctx, userID, input.CatID, input.filter())
	if err != nil {
		return nil, fmt.Errorf("diary.ListFeedings: %w", err)
	}
	return records, nil
}

// UpdateFeeding replaces the mutable fields of a feeding record. The cat
// and date are immutable; move a record by deleting and recreating it.
func (s *Service) UpdateFeeding(ctx context.Context, recordID uuid.UUID, input FeedingInput) (*domain.FeedingRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	existing, err := s.feedings.GetByID(ctx, userID, recordID)
	if err != nil {
		return nil, fmt.Errorf("diary.UpdateFeeding: %w", err)
	}

	existing.FoodProductID = input.FoodProductID
	existing.PlannedG = input.PlannedG
	existing.ActualAmountG = input.ActualAmountG
	existing.AppetiteScore = input.AppetiteScore
	existing.Note = input.Note
	existing.UpdatedAt = time.Now()

	updated, err := s.feedings.Update(ctx, userID, existing)
	if err != nil {
		return nil, fmt.Errorf("diary.UpdateFeeding: %w", err)
	}

	s.refreshSummary(ctx, updated.CatID, updated.RecordDate)

	return updated, nil
}

// DeleteFeeding removes a feeding record and refreshes the day's summary.
func (s *Service) DeleteFeeding(ctx context.Context, recordID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	existing, err := s.feedings.GetByID(ctx, userID, recordID)
	if err != nil {
		return fmt.Errorf("diary.DeleteFeeding: %w", err)
	}

	if err := s.feedings.Delete(ctx, userID, recordID); err != nil {
		return fmt.Errorf("diary.DeleteFeeding: %w", err)
	}

	s.refreshSummary(ctx, existing.CatID, existing.RecordDate)

	s.log.InfoContext(ctx, "feeding record deleted",
		slog.String("record_id", recordID.String()))

	return nil
}
