// Package user implements profile and settings operations for the
// authenticated account.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/whiskerlog/catcare-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, name *string, avatarURL *string) (*domain.User, error)
}

type settingsRepo interface {
	GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	UpdateSettings(ctx context.Context, userID uuid.UUID, s domain.UserSettings) (*domain.UserSettings, error)
}

type auditRepo interface {
	Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service handles the /users/me surface: profile reads and writes plus
// per-user settings. Every profile and settings write leaves an audit
// record in the same transaction.
type Service struct {
	log      *slog.Logger
	users    userRepo
	settings settingsRepo
	audit    auditRepo
	tx       txManager
}

// NewService wires the user service with its repositories.
func NewService(
	logger *slog.Logger,
	users userRepo,
	settings settingsRepo,
	audit auditRepo,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		settings: settings,
		audit:    audit,
		tx:       tx,
	}
}
