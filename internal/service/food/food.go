package food

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	foodrepo "github.com/whiskerlog/catcare-backend/internal/adapter/postgres/food"
	"github.com/whiskerlog/catcare-backend/internal/domain"
	"github.com/whiskerlog/catcare-backend/internal/service/nutrition"
	"github.com/whiskerlog/catcare-backend/pkg/ctxutil"
)

// CreateProduct adds a product to the authenticated user's catalog,
// deriving and storing its dry-matter analysis.
// Returns ErrConflict when the per-user catalog limit is reached.
func (s *Service) CreateProduct(ctx context.Context, input ProductInput) (*domain.FoodProduct, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if 100-*input.MoisturePct <= 0 {
		return nil, domain.NewValidationError("moisture_percent", "leaves no dry matter, must be below 100")
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	count, err := s.foods.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("food.CreateProduct count: %w", err)
	}
	if count >= s.cfg.MaxFoodsPerUser {
		return nil, fmt.Errorf("food.CreateProduct: limit of %d products reached: %w",
			s.cfg.MaxFoodsPerUser, domain.ErrConflict)
	}

	analysis := input.analysis()
	now := time.Now()
	product := &domain.FoodProduct{
		ID:        uuid.New(),
		UserID:    userID,
		BrandName: input.BrandName,
		Name:      input.Name,
		FoodType:  input.FoodType,
		TargetAge: input.TargetAge,
		Analysis:  analysis,
		DryMatter: nutrition.AnalyzeProduct(analysis),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.foods.Create(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("food.CreateProduct: %w", err)
	}

	s.log.InfoContext(ctx, "food product created",
		slog.String("product_id", created.ID.String()),
		slog.String("user_id", userID.String()))

	return created, nil
}

// GetProduct returns a catalog product owned by the authenticated user.
func (s *Service) GetProduct(ctx context.Context, productID uuid.UUID) (*domain.FoodProduct, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	product, err := s.foods.GetByID(ctx, userID, productID)
	if err != nil {
		return nil, fmt.Errorf("food.GetProduct: %w", err)
	}
	return product, nil
}

// ListProducts returns the user's catalog filtered by search text and
// food type.
func (s *Service) ListProducts(ctx context.Context, input ListInput) ([]*domain.FoodProduct, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	products, err := s.foods.List(ctx, userID, foodrepo.Filter{
		Search:   input.Search,
		FoodType: input.FoodType,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("food.ListProducts: %w", err)
	}
	return products, nil
}

// UpdateProduct replaces the label data of a catalog product and
// recomputes its dry-matter analysis.
func (s *Service) UpdateProduct(ctx context.Context, productID uuid.UUID, input ProductInput) (*domain.FoodProduct, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if 100-*input.MoisturePct <= 0 {
		return nil, domain.NewValidationError("moisture_percent", "leaves no dry matter, must be below 100")
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	existing, err := s.foods.GetByID(ctx, userID, productID)
	if err != nil {
		return nil, fmt.Errorf("food.UpdateProduct: %w", err)
	}

	analysis := input.analysis()
	existing.BrandName = input.BrandName
	existing.Name = input.Name
	existing.FoodType = input.FoodType
	existing.TargetAge = input.TargetAge
	existing.Analysis = analysis
	existing.DryMatter = nutrition.AnalyzeProduct(analysis)
	existing.UpdatedAt = time.Now()

	updated, err := s.foods.Update(ctx, userID, existing)
	if err != nil {
		return nil, fmt.Errorf("food.UpdateProduct: %w", err)
	}

	s.log.InfoContext(ctx, "food product updated",
		slog.String("product_id", productID.String()))

	return updated, nil
}

// DeleteProduct removes a product from the catalog. Feeding records that
// reference it keep their row with the reference cleared.
func (s *Service) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.foods.Delete(ctx, userID, productID); err != nil {
		return fmt.Errorf("food.DeleteProduct: %w", err)
	}

	s.log.InfoContext(ctx, "food product deleted",
		slog.String("product_id", productID.String()),
		slog.String("user_id", userID.String()))

	return nil
}
