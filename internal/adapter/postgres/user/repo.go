// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/whiskerlog/catcare-backend/internal/adapter/postgres"
	"github.com/whiskerlog/catcare-backend/internal/domain"
)

// Repo provides user and user-settings persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, username, name, avatar_url, created_at, updated_at`

const getUserByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getUserByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

const getUserByUsernameSQL = `SELECT ` + userColumns + ` FROM users WHERE username = $1`

const createUserSQL = `
INSERT INTO users (id, email, username, name, avatar_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + userColumns

const updateUserSQL = `
UPDATE users
SET name = COALESCE($2, name), avatar_url = COALESCE($3, avatar_url), updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	return r.scanUser(q.QueryRow(ctx, getUserByIDSQL, id), "user", id)
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	return r.scanUser(q.QueryRow(ctx, getUserByEmailSQL, email), "user", uuid.Nil)
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	return r.scanUser(q.QueryRow(ctx, getUserByUsernameSQL, username), "user", uuid.Nil)
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	row := q.QueryRow(ctx, createUserSQL,
		u.ID, u.Email, u.Username, u.Name, postgres.PtrToText(u.AvatarURL), u.CreatedAt, u.UpdatedAt)
	return r.scanUser(row, "user", u.ID)
}

// Update modifies name and avatar_url for the given user.
// Nil arguments leave the stored value unchanged.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name *string, avatarURL *string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	row := q.QueryRow(ctx, updateUserSQL, id, postgres.PtrToText(name), postgres.PtrToText(avatarURL))
	return r.scanUser(row, "user", id)
}

func (r *Repo) scanUser(row interface{ Scan(...any) error }, entity string, id uuid.UUID) (*domain.User, error) {
	var (
		u         domain.User
		avatarURL pgtype.Text
	)
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.Name, &avatarURL, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	u.AvatarURL = postgres.TextToPtr(avatarURL)
	return &u, nil
}

// ---------------------------------------------------------------------------
// UserSettings operations
// ---------------------------------------------------------------------------

const getSettingsSQL = `
SELECT user_id, timezone, daily_calorie_target, daily_water_target_ml, updated_at
FROM user_settings WHERE user_id = $1`

const createSettingsSQL = `
INSERT INTO user_settings (user_id, timezone, daily_calorie_target, daily_water_target_ml, updated_at)
VALUES ($1, $2, $3, $4, now())`

const updateSettingsSQL = `
UPDATE user_settings
SET timezone = $2, daily_calorie_target = $3, daily_water_target_ml = $4, updated_at = now()
WHERE user_id = $1
RETURNING user_id, timezone, daily_calorie_target, daily_water_target_ml, updated_at`

// GetSettings returns the settings for the given user.
func (r *Repo) GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		s        domain.UserSettings
		calories pgtype.Float8
		water    pgtype.Float8
	)
	err := q.QueryRow(ctx, getSettingsSQL, userID).
		Scan(&s.UserID, &s.Timezone, &calories, &water, &s.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user_settings", userID)
	}

	s.DailyCalorieTarget = postgres.Float8ToPtr(calories)
	s.DailyWaterTargetML = postgres.Float8ToPtr(water)
	return &s, nil
}

// CreateSettings inserts new user settings.
func (r *Repo) CreateSettings(ctx context.Context, s *domain.UserSettings) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, createSettingsSQL,
		s.UserID, s.Timezone,
		postgres.PtrToFloat8(s.DailyCalorieTarget), postgres.PtrToFloat8(s.DailyWaterTargetML))
	if err != nil {
		return postgres.MapError(err, "user_settings", s.UserID)
	}

	return nil
}

// UpdateSettings updates the settings for the given user.
func (r *Repo) UpdateSettings(ctx context.Context, userID uuid.UUID, s domain.UserSettings) (*domain.UserSettings, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		result   domain.UserSettings
		calories pgtype.Float8
		water    pgtype.Float8
	)
	err := q.QueryRow(ctx, updateSettingsSQL,
		userID, s.Timezone,
		postgres.PtrToFloat8(s.DailyCalorieTarget), postgres.PtrToFloat8(s.DailyWaterTargetML)).
		Scan(&result.UserID, &result.Timezone, &calories, &water, &result.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user_settings", userID)
	}

	result.DailyCalorieTarget = postgres.Float8ToPtr(calories)
	result.DailyWaterTargetML = postgres.Float8ToPtr(water)
	return &result, nil
}

// GetByUserID is an alias for GetSettings, satisfying the nutrition service's
// settingsRepo interface.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	return r.GetSettings(ctx, userID)
}
