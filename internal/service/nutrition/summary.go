package nutrition

import (
	"context"
	"fmt"
	"time"

	"github.com/whiskerlog/catcare-backend/internal/domain"
	"github.com/whiskerlog/catcare-backend/pkg/ctxutil"
)

// RecomputeDailySummary rebuilds the summary for one (cat, date) from the
// day's raw records and upserts it, returning the stored row. When the day
// has no records at all the stored row is deleted and a zero summary is
// returned without being persisted.
//
// All three record lists are fetched inside one transaction; if any fetch
// fails nothing is written, so a stored summary always reflects a complete
// snapshot of the day.
func (s *Service) RecomputeDailySummary(ctx context.Context, input DailySummaryInput) (*domain.DailySummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	date := dateOnly(input.Date)

	// Ownership check; a foreign cat reads as not found.
	if _, err := s.cats.GetByID(ctx, userID, input.CatID); err != nil {
		return nil, fmt.Errorf("load cat: %w", err)
	}

	var stored *domain.DailySummary

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		feedings, err := s.feedings.ListByCatDate(txCtx, userID, input.CatID, date)
		if err != nil {
			return fmt.Errorf("list feedings: %w", err)
		}
		waters, err := s.waters.ListByCatDate(txCtx, userID, input.CatID, date)
		if err != nil {
			return fmt.Errorf("list water records: %w", err)
		}
		cares, err := s.cares.ListByCatDate(txCtx, userID, input.CatID, date)
		if err != nil {
			return fmt.Errorf("list care records: %w", err)
		}

		summary := BuildDailySummary(userID, input.CatID, date, feedings, waters, cares)

		// A day with no records keeps no stored row; trend assembly
		// fills absent days with zeroes.
		if len(feedings)+len(waters)+len(cares) == 0 {
			if err := s.summaries.DeleteByCatDate(txCtx, userID, input.CatID, date); err != nil {
				return fmt.Errorf("delete summary: %w", err)
			}
			stored = &summary
			return nil
		}

		stored, err = s.summaries.Upsert(txCtx, &summary)
		if err != nil {
			return fmt.Errorf("upsert summary: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("nutrition.RecomputeDailySummary: %w", err)
	}

	s.log.InfoContext(ctx, "daily summary recomputed",
		"cat_id", input.CatID,
		"date", date.Format(domain.DateLayout),
		"feeding_count", stored.FeedingCount)
	return stored, nil
}

// ParseDate parses a calendar date in the diary's YYYY-MM-DD format.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, domain.NewValidationError("date", "must be formatted YYYY-MM-DD")
	}
	return t, nil
}
