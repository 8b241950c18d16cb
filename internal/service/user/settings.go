package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/whiskerlog/catcare-backend/internal/domain"
	"github.com/whiskerlog/catcare-backend/pkg/ctxutil"
)

// GetSettings returns the authenticated user's settings.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetSettings(ctx context.Context) (*domain.UserSettings, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	settings, err := s.settings.GetSettings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetSettings: %w", err)
	}

	return settings, nil
}

// UpdateSettings updates the authenticated user's settings with partial updates.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*domain.UserSettings, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Extract userID from context
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var updatedSettings *domain.UserSettings

	// Step 3: Read-modify-write in a transaction so concurrent updates
	// cannot drop each other's fields. The audit record commits or rolls
	// back together with the settings row.
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.settings.GetSettings(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get current settings: %w", err)
		}

		newSettings := applySettingsChanges(*current, input)

		updated, err := s.settings.UpdateSettings(txCtx, userID, newSettings)
		if err != nil {
			return fmt.Errorf("update settings: %w", err)
		}
		updatedSettings = updated

		record := domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     userID,
			EntityType: domain.EntityTypeUser,
			EntityID:   &userID,
			Action:     domain.AuditActionUpdate,
			Changes:    buildSettingsChanges(*current, *updated),
			CreatedAt:  time.Now().UTC(),
		}
		if _, err := s.audit.Create(txCtx, record); err != nil {
			return fmt.Errorf("audit settings update: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("user.UpdateSettings: %w", err)
	}

	// Step 4: Log the update
	s.log.InfoContext(ctx, "settings updated",
		slog.String("user_id", userID.String()))

	return updatedSettings, nil
}

// buildSettingsChanges produces the per-field {"old", "new"} map recorded
// in the audit log. Unchanged fields are omitted.
func buildSettingsChanges(old, new domain.UserSettings) map[string]any {
	changes := make(map[string]any)

	if old.Timezone != new.Timezone {
		changes["timezone"] = map[string]any{"old": old.Timezone, "new": new.Timezone}
	}
	if !floatPtrEqual(old.DailyCalorieTarget, new.DailyCalorieTarget) {
		changes["daily_calorie_target"] = map[string]any{
			"old": old.DailyCalorieTarget, "new": new.DailyCalorieTarget,
		}
	}
	if !floatPtrEqual(old.DailyWaterTargetML, new.DailyWaterTargetML) {
		changes["daily_water_target_ml"] = map[string]any{
			"old": old.DailyWaterTargetML, "new": new.DailyWaterTargetML,
		}
	}

	return changes
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// applySettingsChanges merges the input changes into current settings.
func applySettingsChanges(current domain.UserSettings, input UpdateSettingsInput) domain.UserSettings {
	result := current

	if input.Timezone != nil {
		result.Timezone = *input.Timezone
	}
	if input.DailyCalorieTarget != nil {
		result.DailyCalorieTarget = input.DailyCalorieTarget
	}
	if input.DailyWaterTargetML != nil {
		result.DailyWaterTargetML = input.DailyWaterTargetML
	}

	return result
}
