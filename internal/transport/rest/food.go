package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/whiskerlog/catcare-backend/internal/domain"
	"github.com/whiskerlog/catcare-backend/internal/service/food"
)

// foodService defines the minimal interface needed by FoodHandler.
type foodService interface {
	CreateProduct(ctx context.Context, input food.ProductInput) (*domain.FoodProduct, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*domain.FoodProduct, error)
	ListProducts(ctx context.Context, input food.ListInput) ([]*domain.FoodProduct, error)
	UpdateProduct(ctx context.Context, productID uuid.UUID, input food.ProductInput) (*domain.FoodProduct, error)
	DeleteProduct(ctx context.Context, productID uuid.UUID) error
}

// FoodHandler serves the food catalog REST endpoints.
type FoodHandler struct {
	svc foodService
	log *slog.Logger
}

// NewFoodHandler creates a FoodHandler.
func NewFoodHandler(svc foodService, logger *slog.Logger) *FoodHandler {
	return &FoodHandler{svc: svc, log: logger.With("handler", "food")}
}

type productRequest struct {
	BrandName string  `json:"brandName"`
	Name      string  `json:"name"`
	FoodType  string  `json:"foodType"`
	TargetAge *string `json:"targetAge"`

	MoisturePct *float64 `json:"moisturePercent"`
	ProteinPct  *float64 `json:"proteinPercent"`
	FatPct      *float64 `json:"fatPercent"`
	FiberPct    *float64 `json:"fiberPercent"`
	AshPct      *float64 `json:"ashPercent"`

	CarbPct       *float64 `json:"carbPercent"`
	CalciumPct    *float64 `json:"calciumPercent"`
	PhosphorusPct *float64 `json:"phosphorusPercent"`
	SodiumPct     *float64 `json:"sodiumPercent"`
	KcalPer100g   *float64 `json:"kcalPer100g"`
}

type productResponse struct {
	ID        string  `json:"id"`
	BrandName string  `json:"brandName"`
	Name      string  `json:"name"`
	FoodType  string  `json:"foodType"`
	TargetAge *string `json:"targetAge,omitempty"`

	Analysis  analysisResponse  `json:"analysis"`
	DryMatter dryMatterResponse `json:"dryMatter"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type analysisResponse struct {
	MoisturePct   float64  `json:"moisturePercent"`
	ProteinPct    float64  `json:"proteinPercent"`
	FatPct        float64  `json:"fatPercent"`
	FiberPct      float64  `json:"fiberPercent"`
	AshPct        float64  `json:"ashPercent"`
	CarbPct       *float64 `json:"carbPercent,omitempty"`
	CalciumPct    *float64 `json:"calciumPercent,omitempty"`
	PhosphorusPct *float64 `json:"phosphorusPercent,omitempty"`
	SodiumPct     *float64 `json:"sodiumPercent,omitempty"`
	KcalPer100g   *float64 `json:"kcalPer100g,omitempty"`
}

type dryMatterResponse struct {
	DryMatterPct    float64  `json:"dryMatterPercent"`
	DMProteinPct    float64  `json:"proteinPercent"`
	DMFatPct        float64  `json:"fatPercent"`
	DMFiberPct      float64  `json:"fiberPercent"`
	DMAshPct        float64  `json:"ashPercent"`
	ProteinKcalPct  *float64 `json:"proteinKcalPercent,omitempty"`
	FatKcalPct      *float64 `json:"fatKcalPercent,omitempty"`
	CarbKcalPct     *float64 `json:"carbKcalPercent,omitempty"`
	CalciumPhosphor *float64 `json:"calciumPhosphorusRatio,omitempty"`
}

func (req productRequest) toInput() food.ProductInput {
	input := food.ProductInput{
		BrandName: req.BrandName,
		Name:      req.Name,
		FoodType:  domain.FoodType(req.FoodType),

		MoisturePct: req.MoisturePct,
		ProteinPct:  req.ProteinPct,
		FatPct:      req.FatPct,
		FiberPct:    req.FiberPct,
		AshPct:      req.AshPct,

		CarbPct:       req.CarbPct,
		CalciumPct:    req.CalciumPct,
		PhosphorusPct: req.PhosphorusPct,
		SodiumPct:     req.SodiumPct,
		KcalPer100g:   req.KcalPer100g,
	}
	if req.TargetAge != nil {
		age := domain.TargetAge(*req.TargetAge)
		input.TargetAge = &age
	}
	return input
}

// CreateProduct handles POST /api/foods.
func (h *FoodHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.CreateProduct(r.Context(), req.toInput())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProductResponse(p))
}

// GetProduct handles GET /api/foods/{id}.
func (h *FoodHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid food id")
		return
	}

	p, err := h.svc.GetProduct(r.Context(), productID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(p))
}

// ListProducts handles GET /api/foods.
func (h *FoodHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	input := food.ListInput{}

	q := r.URL.Query()
	if s := q.Get("search"); s != "" {
		input.Search = &s
	}
	if ft := q.Get("food_type"); ft != "" {
		t := domain.FoodType(ft)
		input.FoodType = &t
	}
	var err error
	if input.Limit, err = parseIntParam(q.Get("limit")); err != nil {
		writeError(w, http.StatusBadRequest, "limit must be an integer")
		return
	}
	if input.Offset, err = parseIntParam(q.Get("offset")); err != nil {
		writeError(w, http.StatusBadRequest, "offset must be an integer")
		return
	}

	products, err := h.svc.ListProducts(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items := make([]productResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p))
	}

	writeJSON(w, http.StatusOK, map[string]any{"foods": items})
}

// UpdateProduct handles PUT /api/foods/{id}.
func (h *FoodHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid food id")
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.UpdateProduct(r.Context(), productID, req.toInput())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(p))
}

// DeleteProduct handles DELETE /api/foods/{id}.
func (h *FoodHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid food id")
		return
	}

	if err := h.svc.DeleteProduct(r.Context(), productID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseIntParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func toProductResponse(p *domain.FoodProduct) productResponse {
	resp := productResponse{
		ID:        p.ID.String(),
		BrandName: p.BrandName,
		Name:      p.Name,
		FoodType:  string(p.FoodType),
		Analysis: analysisResponse{
			MoisturePct:   p.Analysis.MoisturePct,
			ProteinPct:    p.Analysis.ProteinPct,
			FatPct:        p.Analysis.FatPct,
			FiberPct:      p.Analysis.FiberPct,
			AshPct:        p.Analysis.AshPct,
			CarbPct:       p.Analysis.CarbPct,
			CalciumPct:    p.Analysis.CalciumPct,
			PhosphorusPct: p.Analysis.PhosphorusPct,
			SodiumPct:     p.Analysis.SodiumPct,
			KcalPer100g:   p.Analysis.KcalPer100g,
		},
		DryMatter: toDryMatterResponse(p.DryMatter),
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
	if p.TargetAge != nil {
		age := string(*p.TargetAge)
		resp.TargetAge = &age
	}
	return resp
}

func toDryMatterResponse(dm domain.DryMatterAnalysis) dryMatterResponse {
	return dryMatterResponse{
		DryMatterPct:    dm.DryMatterPct,
		DMProteinPct:    dm.DMProteinPct,
		DMFatPct:        dm.DMFatPct,
		DMFiberPct:      dm.DMFiberPct,
		DMAshPct:        dm.DMAshPct,
		ProteinKcalPct:  dm.ProteinKcalPct,
		FatKcalPct:      dm.FatKcalPct,
		CarbKcalPct:     dm.CarbKcalPct,
		CalciumPhosphor: dm.CalciumPhosphor,
	}
}
