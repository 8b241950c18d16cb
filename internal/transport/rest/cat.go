package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/whiskerlog/catcare-backend/internal/domain"
	"github.com/whiskerlog/catcare-backend/internal/service/cat"
)

// catService defines the minimal interface needed by CatHandler.
type catService interface {
	CreateCat(ctx context.Context, input cat.CatInput) (*domain.Cat, error)
	GetCat(ctx context.Context, catID uuid.UUID) (*domain.Cat, error)
	ListCats(ctx context.Context) ([]*domain.Cat, error)
	UpdateCat(ctx context.Context, catID uuid.UUID, input cat.CatInput) (*domain.Cat, error)
	DeleteCat(ctx context.Context, catID uuid.UUID) error
}

// CatHandler serves cat profile REST endpoints.
type CatHandler struct {
	svc catService
	log *slog.Logger
}

// NewCatHandler creates a CatHandler.
func NewCatHandler(svc catService, logger *slog.Logger) *CatHandler {
	return &CatHandler{svc: svc, log: logger.With("handler", "cat")}
}

type catRequest struct {
	Name          string   `json:"name"`
	Breed         *string  `json:"breed"`
	BirthDate     *string  `json:"birthDate"`
	WeightKg      *float64 `json:"weightKg"`
	Neutered      bool     `json:"neutered"`
	ActivityLevel string   `json:"activityLevel"`
	PhotoURL      *string  `json:"photoUrl"`
	Notes         *string  `json:"notes"`
}

type catResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Breed         *string  `json:"breed,omitempty"`
	BirthDate     *string  `json:"birthDate,omitempty"`
	AgeMonths     *int     `json:"ageMonths,omitempty"`
	WeightKg      *float64 `json:"weightKg,omitempty"`
	Neutered      bool     `json:"neutered"`
	ActivityLevel string   `json:"activityLevel"`
	PhotoURL      *string  `json:"photoUrl,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

func (req catRequest) toInput() (cat.CatInput, error) {
	input := cat.CatInput{
		Name:          req.Name,
		Breed:         req.Breed,
		WeightKg:      req.WeightKg,
		Neutered:      req.Neutered,
		ActivityLevel: domain.ActivityLevel(req.ActivityLevel),
		PhotoURL:      req.PhotoURL,
		Notes:         req.Notes,
	}
	if req.BirthDate != nil {
		d, err := time.Parse(domain.DateLayout, *req.BirthDate)
		if err != nil {
			return cat.CatInput{}, domain.NewValidationError("birth_date", "must be YYYY-MM-DD")
		}
		input.BirthDate = &d
	}
	return input, nil
}

// CreateCat handles POST /api/cats.
func (h *CatHandler) CreateCat(w http.ResponseWriter, r *http.Request) {
	var req catRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	c, err := h.svc.CreateCat(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCatResponse(c))
}

// GetCat handles GET /api/cats/{id}.
func (h *CatHandler) GetCat(w http.ResponseWriter, r *http.Request) {
	catID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cat id")
		return
	}

	c, err := h.svc.GetCat(r.Context(), catID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCatResponse(c))
}

// ListCats handles GET /api/cats.
func (h *CatHandler) ListCats(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.ListCats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items := make([]catResponse, 0, len(cats))
	for _, c := range cats {
		items = append(items, toCatResponse(c))
	}

	writeJSON(w, http.StatusOK, map[string]any{"cats": items})
}

// UpdateCat handles PUT /api/cats/{id}.
func (h *CatHandler) UpdateCat(w http.ResponseWriter, r *http.Request) {
	catID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cat id")
		return
	}

	var req catRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	c, err := h.svc.UpdateCat(r.Context(), catID, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCatResponse(c))
}

// DeleteCat handles DELETE /api/cats/{id}.
func (h *CatHandler) DeleteCat(w http.ResponseWriter, r *http.Request) {
	catID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cat id")
		return
	}

	if err := h.svc.DeleteCat(r.Context(), catID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toCatResponse(c *domain.Cat) catResponse {
	resp := catResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		Breed:         c.Breed,
		WeightKg:      c.WeightKg,
		Neutered:      c.Neutered,
		ActivityLevel: string(c.ActivityLevel),
		PhotoURL:      c.PhotoURL,
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     c.UpdatedAt.Format(time.RFC3339),
	}
	if c.BirthDate != nil {
		d := c.BirthDate.Format(domain.DateLayout)
		resp.BirthDate = &d
	}
	resp.AgeMonths = c.AgeMonths(time.Now().UTC())
	return resp
}
