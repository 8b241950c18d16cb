package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/whiskerlog/catcare-backend/internal/domain"
	"github.com/whiskerlog/catcare-backend/internal/service/user"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	GetSettings(ctx context.Context) (*domain.UserSettings, error)
	UpdateSettings(ctx context.Context, input user.UpdateSettingsInput) (*domain.UserSettings, error)
}

// UserHandler serves user profile and settings REST endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type updateProfileRequest struct {
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
}

type updateSettingsRequest struct {
	Timezone           *string  `json:"timezone"`
	DailyCalorieTarget *float64 `json:"dailyCalorieTarget"`
	DailyWaterTargetML *float64 `json:"dailyWaterTargetMl"`
}

type settingsResponse struct {
	Timezone           string   `json:"timezone"`
	DailyCalorieTarget *float64 `json:"dailyCalorieTarget,omitempty"`
	DailyWaterTargetML *float64 `json:"dailyWaterTargetMl,omitempty"`
}

// GetProfile handles GET /api/users/me.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// UpdateProfile handles PATCH /api/users/me.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// GetSettings handles GET /api/users/me/settings.
func (h *UserHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.GetSettings(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingsResponse(s))
}

// UpdateSettings handles PUT /api/users/me/settings.
func (h *UserHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s, err := h.svc.UpdateSettings(r.Context(), user.UpdateSettingsInput{
		Timezone:           req.Timezone,
		DailyCalorieTarget: req.DailyCalorieTarget,
		DailyWaterTargetML: req.DailyWaterTargetML,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingsResponse(s))
}

func toSettingsResponse(s *domain.UserSettings) settingsResponse {
	return settingsResponse{
		Timezone:           s.Timezone,
		DailyCalorieTarget: s.DailyCalorieTarget,
		DailyWaterTargetML: s.DailyWaterTargetML,
	}
}
