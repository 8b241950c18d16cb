// Package food implements the per-user pet food catalog.
package food

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	foodrepo "github.com/whiskerlog/catcare-backend/internal/adapter/postgres/food"
	"github.com/whiskerlog/catcare-backend/internal/config"
	"github.com/whiskerlog/catcare-backend/internal/domain"
)

// foodRepo defines the food product repository interface needed by food service.
type foodRepo interface {
	GetByID(ctx context.Context, userID, productID uuid.UUID) (*domain.FoodProduct, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	List(ctx context.Context, userID uuid.UUID, filter foodrepo.Filter) ([]*domain.FoodProduct, error)
	Create(ctx context.Context, p *domain.FoodProduct) (*domain.FoodProduct, error)
	Update(ctx context.Context, userID uuid.UUID, p *domain.FoodProduct) (*domain.FoodProduct, error)
	Delete(ctx context.Context, userID, productID uuid.UUID) error
}

// Service implements food catalog operations. Dry-matter values are
// derived once on write and stored alongside the label data.
type Service struct {
	log   *slog.Logger
	foods foodRepo
	cfg   config.DiaryConfig
}

// NewService creates a new food service instance.
func NewService(logger *slog.Logger, foods foodRepo, cfg config.DiaryConfig) *Service {
	return &Service{
		log:   logger.With("service", "food"),
		foods: foods,
		cfg:   cfg,
	}
}
