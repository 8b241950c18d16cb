// Package cat implements CRUD on cat profiles owned by a user.
package cat

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/whiskerlog/catcare-backend/internal/config"
	"github.com/whiskerlog/catcare-backend/internal/domain"
)

// catRepo defines the cat repository interface needed by cat service.
type catRepo interface {
	GetByID(ctx context.Context, userID, catID uuid.UUID) (*domain.Cat, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Cat, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	Create(ctx context.Context, c *domain.Cat) (*domain.Cat, error)
	Update(ctx context.Context, userID uuid.UUID, c *domain.Cat) (*domain.Cat, error)
	Delete(ctx context.Context, userID, catID uuid.UUID) error
}

// Service implements cat profile operations.
type Service struct {
	log  *slog.Logger
	cats catRepo
	cfg  config.DiaryConfig
}

// NewService creates a new cat service instance.
func NewService(logger *slog.Logger, cats catRepo, cfg config.DiaryConfig) *Service {
	return &Service{
		log:  logger.With("service", "cat"),
		cats: cats,
		cfg:  cfg,
	}
}
