package nutrition

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/whiskerlog/catcare-backend/internal/domain"
	"github.com/whiskerlog/catcare-backend/pkg/ctxutil"
)

// GetTrends composes the trend report for a cat over a named period or an
// explicit date range. Named periods are trailing windows ending on the
// current day in the user's configured timezone.
func (s *Service) GetTrends(ctx context.Context, input TrendInput) (*domain.TrendReport, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.cats.GetByID(ctx, userID, input.CatID); err != nil {
		return nil, fmt.Errorf("load cat: %w", err)
	}

	from, to, err := s.resolveRange(ctx, userID, input)
	if err != nil {
		return nil, err
	}

	summaries, err := s.summaries.ListRange(ctx, userID, input.CatID, from, to)
	if err != nil {
		return nil, fmt.Errorf("nutrition.GetTrends list summaries: %w", err)
	}

	report := ComposeTrend(summaries, from, to)
	return &report, nil
}

func (s *Service) resolveRange(ctx context.Context, userID uuid.UUID, input TrendInput) (time.Time, time.Time, error) {
	if input.Period != "" {
		settings, err := s.settings.GetByUserID(ctx, userID)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("load settings: %w", err)
		}

		tz := ParseTimezone(settings.Timezone)
		to := Today(time.Now(), tz)
		from := to.AddDate(0, 0, -(PeriodDays[input.Period] - 1))
		return from, to, nil
	}

	from := dateOnly(*input.DateFrom)
	to := dateOnly(*input.DateTo)

	if to.After(from) {
		days := int(to.Sub(from).Hours()/24) + 1
		if days > s.maxTrendRangeDays {
			return time.Time{}, time.Time{}, domain.NewValidationError(
				"date_to", fmt.Sprintf("range exceeds %d days", s.maxTrendRangeDays))
		}
	}
	return from, to, nil
}
