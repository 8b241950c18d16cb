package cat

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/whiskerlog/catcare-backend/internal/domain"
	"github.com/whiskerlog/catcare-backend/pkg/ctxutil"
)

// CreateCat creates a new cat profile for the authenticated user.
// Returns ErrConflict when the per-user cat limit is reached.
func (s *Service) CreateCat(ctx context.Context, input CatInput) (*domain.Cat, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	count, err := s.cats.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cat.CreateCat count: %w", err)
	}
	if count >= s.cfg.MaxCatsPerUser {
		return nil, fmt.Errorf("cat.CreateCat: limit of %d cats reached: %w",
			s.cfg.MaxCatsPerUser, domain.ErrConflict)
	}

	activity := input.ActivityLevel
	if activity == "" {
		activity = domain.ActivityLevelNormal
	}

	now := time.Now()
	cat := &domain.Cat{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          input.Name,
		Breed:         input.Breed,
		BirthDate:     input.BirthDate,
		WeightKg:      input.WeightKg,
		Neutered:      input.Neutered,
		ActivityLevel: activity,
		PhotoURL:      input.PhotoURL,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.cats.Create(ctx, cat)
	if err != nil {
		return nil, fmt.Errorf("cat.CreateCat: %w", err)
	}

	s.log.InfoContext(ctx, "cat created",
		slog.String("cat_id", created.ID.String()),
		slog.String("user_id", userID.String()))

	return created, nil
}

// GetCat returns a cat owned by the authenticated user.
// A cat belonging to another user reads as not found.
func (s *Service) GetCat(ctx context.Context, catID uuid.UUID) (*domain.Cat, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	cat, err := s.cats.GetByID(ctx, userID, catID)
	if err != nil {
		return nil, fmt.Errorf("cat.GetCat: %w", err)
	}
	return cat, nil
}

// ListCats returns all cats of the authenticated user ordered by creation.
func (s *Service) ListCats(ctx context.Context) ([]*domain.Cat, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	cats, err := s.cats.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cat.ListCats: %w", err)
	}
	return cats, nil
}

// UpdateCat replaces the mutable fields of a cat owned by the
// authenticated user.
func (s *Service) UpdateCat(ctx context.Context, catID uuid.UUID, input CatInput) (*domain.Cat, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	existing, err := s.cats.GetByID(ctx, userID, catID)
	if err != nil {
		return nil, fmt.Errorf("cat.UpdateCat: %w", err)
	}

	existing.Name = input.Name
	existing.Breed = input.Breed
	existing.BirthDate = input.BirthDate
	existing.WeightKg = input.WeightKg
	existing.Neutered = input.Neutered
	if input.ActivityLevel != "" {
		existing.ActivityLevel = input.ActivityLevel
	}
	existing.PhotoURL = input.PhotoURL
	existing.Notes = input.Notes
	existing.UpdatedAt = time.Now()

	updated, err := s.cats.Update(ctx, userID, existing)
	if err != nil {
		return nil, fmt.Errorf("cat.UpdateCat: %w", err)
	}

	s.log.InfoContext(ctx, "cat updated",
		slog.String("cat_id", catID.String()))

	return updated, nil
}

// DeleteCat removes a cat and, via FK cascade, all of its diary records
// and daily summaries.
func (s *Service) DeleteCat(ctx context.Context, catID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.cats.Delete(ctx, userID, catID); err != nil {
		return fmt.Errorf("cat.DeleteCat: %w", err)
	}

	s.log.InfoContext(ctx, "cat deleted",
		slog.String("cat_id", catID.String()),
		slog.String("user_id", userID.String()))

	return nil
}
