// Package nutrition hosts the calculation engine: dry-matter conversion,
// daily aggregation and trend composition, plus the service methods that
// feed them from the diary repositories.
package nutrition

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/whiskerlog/catcare-backend/internal/domain"
)

type catRepo interface {
	GetByID(ctx context.Context, userID, catID uuid.UUID) (*domain.Cat, error)
}

type feedingRepo interface {
	ListByCatDate(ctx context.Context, userID, catID uuid.UUID, date time.Time) ([]*domain.FeedingRecord, error)
}

type waterRepo interface {
	ListByCatDate(ctx context.Context, userID, catID uuid.UUID, date time.Time) ([]*domain.WaterRecord, error)
}

type careRepo interface {
	ListByCatDate(ctx context.Context, userID, catID uuid.UUID, date time.Time) ([]*domain.CareRecord, error)
}

type summaryRepo interface {
	Upsert(ctx context.Context, s *domain.DailySummary) (*domain.DailySummary, error)
	ListRange(ctx context.Context, userID, catID uuid.UUID, from, to time.Time) ([]*domain.DailySummary, error)
	DeleteByCatDate(ctx context.Context, userID, catID uuid.UUID, date time.Time) error
}

type settingsRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the nutrition business logic.
type Service struct {
	cats      catRepo
	feedings  feedingRepo
	waters    waterRepo
	cares     careRepo
	summaries summaryRepo
	settings  settingsRepo
	tx        txManager
	log       *slog.Logger

	maxTrendRangeDays int
}

// NewService creates a new nutrition service.
func NewService(
	log *slog.Logger,
	cats catRepo,
	feedings feedingRepo,
	waters waterRepo,
	cares careRepo,
	summaries summaryRepo,
	settings settingsRepo,
	tx txManager,
	maxTrendRangeDays int,
) *Service {
	return &Service{
		cats:              cats,
		feedings:          feedings,
		waters:            waters,
		cares:             cares,
		summaries:         summaries,
		settings:          settings,
		tx:                tx,
		log:               log.With("service", "nutrition"),
		maxTrendRangeDays: maxTrendRangeDays,
	}
}
