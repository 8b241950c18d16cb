package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/whiskerlog/catcare-backend/internal/domain"
	"github.com/whiskerlog/catcare-backend/internal/service/nutrition"
)

// nutritionService defines the minimal interface needed by NutritionHandler.
type nutritionService interface {
	RunCalculation(ctx context.Context, input nutrition.CalculationInput) (nutrition.CalculationResult, error)
	RecomputeDailySummary(ctx context.Context, input nutrition.DailySummaryInput) (*domain.DailySummary, error)
	GetTrends(ctx context.Context, input nutrition.TrendInput) (*domain.TrendReport, error)
}

// NutritionHandler serves the calculator, daily summary and trend endpoints.
type NutritionHandler struct {
	svc nutritionService
	log *slog.Logger
}

// NewNutritionHandler creates a NutritionHandler.
func NewNutritionHandler(svc nutritionService, logger *slog.Logger) *NutritionHandler {
	return &NutritionHandler{svc: svc, log: logger.With("handler", "nutrition")}
}

type calculateRequest struct {
	BrandName   string   `json:"brandName"`
	ProductName string   `json:"productName"`
	FoodWeightG *float64 `json:"foodWeightG"`

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

type calculateResponse struct {
	DryMatterPct float64 `json:"dryMatterPercent"`
	DMProteinPct float64 `json:"dmProteinPercent"`
	DMFatPct     float64 `json:"dmFatPercent"`
	DMFiberPct   float64 `json:"dmFiberPercent"`
	DMAshPct     float64 `json:"dmAshPercent"`

	TotalCalories  *float64 `json:"totalCalories,omitempty"`
	CalorieDensity *float64 `json:"calorieDensity,omitempty"`

	ProteinKcalPct *float64 `json:"proteinKcalPercent,omitempty"`
	FatKcalPct     *float64 `json:"fatKcalPercent,omitempty"`
	CarbKcalPct    *float64 `json:"carbKcalPercent,omitempty"`

	CalciumPhosphorusRatio *float64 `json:"calciumPhosphorusRatio,omitempty"`
}

type summaryResponse struct {
	CatID            string   `json:"catId"`
	Date             string   `json:"date"`
	TotalCalories    float64  `json:"totalCalories"`
	TotalProteinG    float64  `json:"totalProteinG"`
	TotalFatG        float64  `json:"totalFatG"`
	TotalCarbG       float64  `json:"totalCarbG"`
	TotalFiberG      float64  `json:"totalFiberG"`
	FeedingCount     int      `json:"feedingCount"`
	AvgAppetiteScore *float64 `json:"avgAppetiteScore,omitempty"`
	WaterIntakeML    float64  `json:"waterIntakeMl"`
	SupplementCount  int      `json:"supplementCount"`
	MedicationCount  int      `json:"medicationCount"`
}

type trendPointResponse struct {
	Date             string   `json:"date"`
	TotalCalories    float64  `json:"totalCalories"`
	TotalProteinG    float64  `json:"totalProteinG"`
	TotalFatG        float64  `json:"totalFatG"`
	TotalCarbG       float64  `json:"totalCarbG"`
	TotalFiberG      float64  `json:"totalFiberG"`
	FeedingCount     int      `json:"feedingCount"`
	AvgAppetiteScore *float64 `json:"avgAppetiteScore,omitempty"`
	WaterIntakeML    float64  `json:"waterIntakeMl"`
	SupplementCount  int      `json:"supplementCount"`
	MedicationCount  int      `json:"medicationCount"`
}

type trendAveragesResponse struct {
	Calories         float64  `json:"calories"`
	ProteinG         float64  `json:"proteinG"`
	FatG             float64  `json:"fatG"`
	CarbG            float64  `json:"carbG"`
	FiberG           float64  `json:"fiberG"`
	FeedingCount     float64  `json:"feedingCount"`
	WaterIntakeML    float64  `json:"waterIntakeMl"`
	AvgAppetiteScore *float64 `json:"avgAppetiteScore,omitempty"`
}

type trendReportResponse struct {
	Daily                []trendPointResponse  `json:"daily"`
	Averages             trendAveragesResponse `json:"averages"`
	TotalDays            int                   `json:"totalDays"`
	DaysWithData         int                   `json:"daysWithData"`
	DaysWithAppetiteData int                   `json:"daysWithAppetiteData"`
	SupplementTotal      int                   `json:"supplementTotal"`
	MedicationTotal      int                   `json:"medicationTotal"`
}

// Calculate handles POST /api/nutrition/calculate.
func (h *NutritionHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.RunCalculation(r.Context(), nutrition.CalculationInput{
		BrandName:   req.BrandName,
		ProductName: req.ProductName,
		FoodWeightG: req.FoodWeightG,

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
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, calculateResponse{
		DryMatterPct:           result.DryMatterPct,
		DMProteinPct:           result.DMProteinPct,
		DMFatPct:               result.DMFatPct,
		DMFiberPct:             result.DMFiberPct,
		DMAshPct:               result.DMAshPct,
		TotalCalories:          result.TotalCalories,
		CalorieDensity:         result.CalorieDensity,
		ProteinKcalPct:         result.ProteinKcalPct,
		FatKcalPct:             result.FatKcalPct,
		CarbKcalPct:            result.CarbKcalPct,
		CalciumPhosphorusRatio: result.CalciumPhosphorusRatio,
	})
}

// DailySummary handles GET /api/cats/{id}/nutrition-summary. The summary
// for the requested date is recomputed, stored and returned.
func (h *NutritionHandler) DailySummary(w http.ResponseWriter, r *http.Request) {
	catID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cat id")
		return
	}

	date, err := parseDateParam(r, "date")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	summary, err := h.svc.RecomputeDailySummary(r.Context(), nutrition.DailySummaryInput{
		CatID: catID,
		Date:  date,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSummaryResponse(summary))
}

// Trends handles GET /api/cats/{id}/nutrition-trends.
func (h *NutritionHandler) Trends(w http.ResponseWriter, r *http.Request) {
	catID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cat id")
		return
	}

	dateFrom, err := parseOptionalDateParam(r, "date_from")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	dateTo, err := parseOptionalDateParam(r, "date_to")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	report, err := h.svc.GetTrends(r.Context(), nutrition.TrendInput{
		CatID:    catID,
		Period:   r.URL.Query().Get("period"),
		DateFrom: dateFrom,
		DateTo:   dateTo,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTrendReportResponse(report))
}

func toSummaryResponse(s *domain.DailySummary) summaryResponse {
	return summaryResponse{
		CatID:            s.CatID.String(),
		Date:             s.SummaryDate.Format(domain.DateLayout),
		TotalCalories:    s.TotalCalories,
		TotalProteinG:    s.TotalProteinG,
		TotalFatG:        s.TotalFatG,
		TotalCarbG:       s.TotalCarbG,
		TotalFiberG:      s.TotalFiberG,
		FeedingCount:     s.FeedingCount,
		AvgAppetiteScore: s.AvgAppetiteScore,
		WaterIntakeML:    s.WaterIntakeML,
		SupplementCount:  s.SupplementCount,
		MedicationCount:  s.MedicationCount,
	}
}

func toTrendReportResponse(r *domain.TrendReport) trendReportResponse {
	daily := make([]trendPointResponse, 0, len(r.Daily))
	for _, p := range r.Daily {
		daily = append(daily, trendPointResponse{
			Date:             p.Date.Format(domain.DateLayout),
			TotalCalories:    p.TotalCalories,
			TotalProteinG:    p.TotalProteinG,
			TotalFatG:        p.TotalFatG,
			TotalCarbG:       p.TotalCarbG,
			TotalFiberG:      p.TotalFiberG,
			FeedingCount:     p.FeedingCount,
			AvgAppetiteScore: p.AvgAppetiteScore,
			WaterIntakeML:    p.WaterIntakeML,
			SupplementCount:  p.SupplementCount,
			MedicationCount:  p.MedicationCount,
		})
	}

	return trendReportResponse{
		Daily: daily,
		Averages: trendAveragesResponse{
			Calories:         r.Averages.Calories,
			ProteinG:         r.Averages.ProteinG,
			FatG:             r.Averages.FatG,
			CarbG:            r.Averages.CarbG,
			FiberG:           r.Averages.FiberG,
			FeedingCount:     r.Averages.FeedingCount,
			WaterIntakeML:    r.Averages.WaterIntakeML,
			AvgAppetiteScore: r.Averages.AvgAppetiteScore,
		},
		TotalDays:            r.TotalDays,
		DaysWithData:         r.DaysWithData,
		DaysWithAppetiteData: r.DaysWithAppetiteData,
		SupplementTotal:      r.SupplementTotal,
		MedicationTotal:      r.MedicationTotal,
	}
}
