// Package diary implements the feeding, water and care record diary.
// Every mutation refreshes the affected day's nutrition summary.
package diary

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/whiskerlog/catcare-backend/internal/config"
	"github.com/whiskerlog/catcare-backend/internal/domain"
	"github.com/whiskerlog/catcare-backend/internal/service/nutrition"
)

// catRepo defines the cat repository interface needed by diary service.
type catRepo interface {
	GetByID(ctx context.Context, userID, catID uuid.UUID) (*domain.Cat, error)
}

// feedingRepo defines the feeding record repository interface needed by diary service.
type feedingRepo interface {
	GetByID(ctx context.Context, userID, recordID uuid.UUID) (*domain.FeedingRecord, error)
	CountByCatDate(ctx context.Context, userID, catID uuid.UUID, date time.Time) (int, error)
	ListRange(ctx context.Context, userID, catID uuid.UUID, filter domain.DiaryFilter) ([]*domain.FeedingRecord, error)
	Create(ctx context.Context, rec *domain.FeedingRecord) (*domain.FeedingRecord, error)
	Update(ctx context.Context, userID uuid.UUID, rec *domain.FeedingRecord) (*domain.FeedingRecord, error)
	Delete(ctx context.Context, userID, recordID uuid.UUID) error
}

// waterRepo defines the water record repository interface needed by diary service.
type waterRepo interface {
	GetByID(ctx context.Context, userID, recordID uuid.UUID) (*domain.WaterRecord, error)
	ListByCatDate(ctx context.Context, userID, catID uuid.UUID, date time.Time) ([]*domain.WaterRecord, error)
	ListRange(ctx context.Context, userID, catID uuid.UUID, filter domain.DiaryFilter) ([]*domain.WaterRecord, error)
	Create(ctx context.Context, rec *domain.WaterRecord) (*domain.WaterRecord, error)
	Update(ctx context.Context, userID uuid.UUID, rec *domain.WaterRecord) (*domain.WaterRecord, error)
	Delete(ctx context.Context, userID, recordID uuid.UUID) error
}

// careRepo defines the care record repository interface needed by diary service.
type careRepo interface {
	GetByID(ctx context.Context, userID, recordID uuid.UUID) (*domain.CareRecord, error)
	ListByCatDate(ctx context.Context, userID, catID uuid.UUID, date time.Time) ([]*domain.CareRecord, error)
	ListRange(ctx context.Context, userID, catID uuid.UUID, filter domain.DiaryFilter) ([]*domain.CareRecord, error)
	Create(ctx context.Context, rec *domain.CareRecord) (*domain.CareRecord, error)
	Update(ctx context.Context, userID uuid.UUID, rec *domain.CareRecord) (*domain.CareRecord, error)
	Delete(ctx context.Context, userID, recordID uuid.UUID) error
}

// summaryService refreshes the daily nutrition summary after mutations.
type summaryService interface {
	RecomputeDailySummary(ctx context.Context, input nutrition.DailySummaryInput) (*domain.DailySummary, error)
}

// Service implements diary operations.
type Service struct {
	log       *slog.Logger
	cats      catRepo
	feedings  feedingRepo
	waters    waterRepo
	cares     careRepo
	summaries summaryService
	cfg       config.DiaryConfig
}

// NewService creates a new diary service instance.
func NewService(
	logger *slog.Logger,
	cats catRepo,
	feedings feedingRepo,
	waters waterRepo,
	cares careRepo,
	summaries summaryService,
	cfg config.DiaryConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "diary"),
		cats:      cats,
		feedings:  feedings,
		waters:    waters,
		cares:     cares,
		summaries: summaries,
		cfg:       cfg,
	}
}

// refreshSummary recomputes the daily summary for a (cat, date) after a
// diary mutation. The record write has already committed, so a refresh
// failure is logged and swallowed; the next summary read recomputes anyway.
func (s *Service) refreshSummary(ctx context.Context, catID uuid.UUID, date time.Time) {
	_, err := s.summaries.RecomputeDailySummary(ctx, nutrition.DailySummaryInput{
		CatID: catID,
		Date:  date,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "daily summary refresh failed",
			slog.String("cat_id", catID.String()),
			slog.String("date", date.Format(domain.DateLayout)),
			slog.Any("error", err))
	}
}

// dateOnly truncates a timestamp to its calendar date at midnight UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
