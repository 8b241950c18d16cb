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

// GetProfile loads the authenticated user's profile, or
// ErrUnauthorized when the context carries no user.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return user, nil
}

// UpdateProfile changes the display name and avatar of the
// authenticated user. Email and username are fixed at registration.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Resolve the caller
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var user *domain.User

	// Step 3: Apply the update; the audit record commits or rolls back
	// together with the profile row.
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.users.GetByID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get current profile: %w", err)
		}

		updated, err := s.users.Update(txCtx, userID, &input.Name, input.AvatarURL)
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		user = updated

		record := domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     userID,
			EntityType: domain.EntityTypeUser,
			EntityID:   &userID,
			Action:     domain.AuditActionUpdate,
			Changes:    buildProfileChanges(*current, *updated),
			CreatedAt:  time.Now().UTC(),
		}
		if _, err := s.audit.Create(txCtx, record); err != nil {
			return fmt.Errorf("audit profile update: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()))

	return user, nil
}

// buildProfileChanges produces the per-field {"old", "new"} map recorded
// in the audit log. Unchanged fields are omitted.
func buildProfileChanges(old, new domain.User) map[string]any {
	changes := make(map[string]any)

	if old.Name != new.Name {
		changes["name"] = map[string]any{"old": old.Name, "new": new.Name}
	}
	if !strPtrEqual(old.AvatarURL, new.AvatarURL) {
		changes["avatar_url"] = map[string]any{"old": old.AvatarURL, "new": new.AvatarURL}
	}

	return changes
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
