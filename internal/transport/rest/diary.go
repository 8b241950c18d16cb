package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/whiskerlog/catcare-backend/internal/domain"
	"github.com/whiskerlog/catcare-backend/internal/service/diary"
)

// diaryService defines the minimal interface needed by DiaryHandler.
type diaryService interface {
	CreateFeeding(ctx context.Context, input diary.FeedingInput) (*domain.FeedingRecord, error)
	ListFeedings(ctx context.Context, input diary.ListInput) ([]*domain.FeedingRecord, error)
	UpdateFeeding(ctx context.Context, recordID uuid.UUID, input diary.FeedingInput) (*domain.FeedingRecord, error)
	DeleteFeeding(ctx context.Context, recordID uuid.UUID) error

	CreateWater(ctx context.Context, input diary.WaterInput) (*domain.WaterRecord, error)
	ListWater(ctx context.Context, input diary.ListInput) ([]*domain.WaterRecord, error)
	UpdateWater(ctx context.Context, recordID uuid.UUID, input diary.WaterInput) (*domain.WaterRecord, error)
	DeleteWater(ctx context.Context, recordID uuid.UUID) error

	CreateCare(ctx context.Context, input diary.CareInput) (*domain.CareRecord, error)
	ListCare(ctx context.Context, input diary.ListInput) ([]*domain.CareRecord, error)
	UpdateCare(ctx context.Context, recordID uuid.UUID, input diary.CareInput) (*domain.CareRecord, error)
	DeleteCare(ctx context.Context, recordID uuid.UUID) error
}

// DiaryHandler serves the feeding, water and supplement diary endpoints.
type DiaryHandler struct {
	svc diaryService
	log *slog.Logger
}

// NewDiaryHandler creates a DiaryHandler.
func NewDiaryHandler(svc diaryService, logger *slog.Logger) *DiaryHandler {
	return &DiaryHandler{svc: svc, log: logger.With("handler", "diary")}
}

type feedingRequest struct {
	Date          string   `json:"date"`
	FoodProductID *string  `json:"foodProductId"`
	PlannedG      float64  `json:"plannedG"`
	ActualAmountG *float64 `json:"actualAmountG"`
	AppetiteScore *int     `json:"appetiteScore"`
	Note          *string  `json:"note"`
}

type waterRequest struct {
	Date     string   `json:"date"`
	AmountML *float64 `json:"amountMl"`
}

type careRequest struct {
	Date       string  `json:"date"`
	Name       string  `json:"name"`
	RecordType string  `json:"recordType"`
	Dosage     *string `json:"dosage"`
	Taken      bool    `json:"taken"`
}

type feedingResponse struct {
	ID            string   `json:"id"`
	CatID         string   `json:"catId"`
	Date          string   `json:"date"`
	FoodProductID *string  `json:"foodProductId,omitempty"`
	PlannedG      float64  `json:"plannedG"`
	ActualAmountG *float64 `json:"actualAmountG,omitempty"`
	AppetiteScore *int     `json:"appetiteScore,omitempty"`
	Note          *string  `json:"note,omitempty"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

type waterResponse struct {
	ID        string   `json:"id"`
	CatID     string   `json:"catId"`
	Date      string   `json:"date"`
	AmountML  *float64 `json:"amountMl,omitempty"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

type careResponse struct {
	ID         string  `json:"id"`
	CatID      string  `json:"catId"`
	Date       string  `json:"date"`
	Name       string  `json:"name"`
	RecordType string  `json:"recordType"`
	Dosage     *string `json:"dosage,omitempty"`
	Taken      bool    `json:"taken"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

func (req feedingRequest) toInput(catID uuid.UUID) (diary.FeedingInput, error) {
	input := diary.FeedingInput{
		CatID:         catID,
		PlannedG:      req.PlannedG,
		ActualAmountG: req.ActualAmountG,
		AppetiteScore: req.AppetiteScore,
		Note:          req.Note,
	}

	date, err := parseDateField(req.Date)
	if err != nil {
		return diary.FeedingInput{}, err
	}
	input.Date = date

	if req.FoodProductID != nil {
		id, err := uuid.Parse(*req.FoodProductID)
		if err != nil {
			return diary.FeedingInput{}, domain.NewValidationError("food_product_id", "must be a valid id")
		}
		input.FoodProductID = &id
	}
	return input, nil
}

func (req waterRequest) toInput(catID uuid.UUID) (diary.WaterInput, error) {
	date, err := parseDateField(req.Date)
	if err != nil {
		return diary.WaterInput{}, err
	}
	return diary.WaterInput{CatID: catID, Date: date, AmountML: req.AmountML}, nil
}

func (req careRequest) toInput(catID uuid.UUID) (diary.CareInput, error) {
	date, err := parseDateField(req.Date)
	if err != nil {
		return diary.CareInput{}, err
	}
	return diary.CareInput{
		CatID:      catID,
		Date:       date,
		Name:       req.Name,
		RecordType: domain.CareRecordType(req.RecordType),
		Dosage:     req.Dosage,
		Taken:      req.Taken,
	}, nil
}

func parseDateField(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, domain.NewValidationError("date", "required")
	}
	d, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return time.Time{}, domain.NewValidationError("date", "must be YYYY-MM-DD")
	}
	return d, nil
}

// listInput builds a diary ListInput from the query string of a listing
// request. The care record type filter is only read for care listings.
func listInput(r *http.Request, catID uuid.UUID, withType bool) (diary.ListInput, error) {
	input := diary.ListInput{CatID: catID}

	dateFrom, err := parseOptionalDateParam(r, "date_from")
	if err != nil {
		return diary.ListInput{}, err
	}
	dateTo, err := parseOptionalDateParam(r, "date_to")
	if err != nil {
		return diary.ListInput{}, err
	}
	input.DateFrom = dateFrom
	input.DateTo = dateTo

	q := r.URL.Query()
	if withType {
		if rt := q.Get("record_type"); rt != "" {
			t := domain.CareRecordType(rt)
			input.RecordType = &t
		}
	}
	if input.Limit, err = parseIntParam(q.Get("limit")); err != nil {
		return diary.ListInput{}, domain.NewValidationError("limit", "must be an integer")
	}
	if input.Offset, err = parseIntParam(q.Get("offset")); err != nil {
		return diary.ListInput{}, domain.NewValidationError("offset", "must be an integer")
	}
	return input, nil
}

// --- feedings ---

// CreateFeeding handles POST /api/cats/{id}/feedings.
func (h *DiaryHandler) CreateFeeding(w http.ResponseWriter, r *http.Request) {
	catID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cat id")
		return
	}

	var req feedingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input, err := req.toInput(catID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rec, err := h.svc.CreateFeeding(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFeedingResponse(rec))
}

// ListFeedings handles GET /api/cats/{id}/feedings.
func (h *DiaryHandler) ListFeedings(w http.ResponseWriter, r *http.Request) {
	catID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cat id")
		return
	}

	input, err := listInput(r, catID, false)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	records, err := h.svc.ListFeedings(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items := make([]feedingResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, toFeedingResponse(rec))
	}

	writeJSON(w, http.StatusOK, map[string]any{"feedings": items})
}

// UpdateFeeding handles PUT /api/cats/{id}/feedings/{recordId}.
func (h *DiaryHandler) UpdateFeeding(w http.ResponseWriter, r *http.Request) {
	catID, recordID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	var req feedingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input, err := req.toInput(catID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rec, err := h.svc.UpdateFeeding(r.Context(), recordID, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFeedingResponse(rec))
}

// DeleteFeeding handles DELETE /api/cats/{id}/feedings/{recordId}.
func (h *DiaryHandler) DeleteFeeding(w http.ResponseWriter, r *http.Request) {
	_, recordID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteFeeding(r.Context(), recordID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- water ---

// CreateWater handles POST /api/cats/{id}/water.
func (h *DiaryHandler) CreateWater(w http.ResponseWriter, r *http.Request) {
	catID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cat id")
		return
	}

	var req waterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input, err := req.toInput(catID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rec, err := h.svc.CreateWater(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWaterResponse(rec))
}

// ListWater handles GET /api/cats/{id}/water.
func (h *DiaryHandler) ListWater(w http.ResponseWriter, r *http.Request) {
	catID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cat id")
		return
	}

	input, err := listInput(r, catID, false)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	records, err := h.svc.ListWater(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items := make([]waterResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, toWaterResponse(rec))
	}

	writeJSON(w, http.StatusOK, map[string]any{"water": items})
}

// UpdateWater handles PUT /api/cats/{id}/water/{recordId}.
func (h *DiaryHandler) UpdateWater(w http.ResponseWriter, r *http.Request) {
	catID, recordID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	var req waterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input, err := req.toInput(catID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rec, err := h.svc.UpdateWater(r.Context(), recordID, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWaterResponse(rec))
}

// DeleteWater handles DELETE /api/cats/{id}/water/{recordId}.
func (h *DiaryHandler) DeleteWater(w http.ResponseWriter, r *http.Request) {
	_, recordID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteWater(r.Context(), recordID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- supplements and medications ---

// CreateCare handles POST /api/cats/{id}/supplements.
func (h *DiaryHandler) CreateCare(w http.ResponseWriter, r *http.Request) {
	catID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cat id")
		return
	}

	var req careRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input, err := req.toInput(catID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rec, err := h.svc.CreateCare(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCareResponse(rec))
}

// ListCare handles GET /api/cats/{id}/supplements.
func (h *DiaryHandler) ListCare(w http.ResponseWriter, r *http.Request) {
	catID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cat id")
		return
	}

	input, err := listInput(r, catID, true)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	records, err := h.svc.ListCare(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items := make([]careResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, toCareResponse(rec))
	}

	writeJSON(w, http.StatusOK, map[string]any{"supplements": items})
}

// UpdateCare handles PUT /api/cats/{id}/supplements/{recordId}.
func (h *DiaryHandler) UpdateCare(w http.ResponseWriter, r *http.Request) {
	catID, recordID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	var req careRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input, err := req.toInput(catID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rec, err := h.svc.UpdateCare(r.Context(), recordID, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCareResponse(rec))
}

// DeleteCare handles DELETE /api/cats/{id}/supplements/{recordId}.
func (h *DiaryHandler) DeleteCare(w http.ResponseWriter, r *http.Request) {
	_, recordID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteCare(r.Context(), recordID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *DiaryHandler) pathIDs(w http.ResponseWriter, r *http.Request) (catID, recordID uuid.UUID, ok bool) {
	catID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cat id")
		return uuid.Nil, uuid.Nil, false
	}
	recordID, err = uuid.Parse(r.PathValue("recordId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record id")
		return uuid.Nil, uuid.Nil, false
	}
	return catID, recordID, true
}

func toFeedingResponse(rec *domain.FeedingRecord) feedingResponse {
	resp := feedingResponse{
		ID:            rec.ID.String(),
		CatID:         rec.CatID.String(),
		Date:          rec.RecordDate.Format(domain.DateLayout),
		PlannedG:      rec.PlannedG,
		ActualAmountG: rec.ActualAmountG,
		AppetiteScore: rec.AppetiteScore,
		Note:          rec.Note,
		CreatedAt:     rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     rec.UpdatedAt.Format(time.RFC3339),
	}
	if rec.FoodProductID != nil {
		id := rec.FoodProductID.String()
		resp.FoodProductID = &id
	}
	return resp
}

func toWaterResponse(rec *domain.WaterRecord) waterResponse {
	return waterResponse{
		ID:        rec.ID.String(),
		CatID:     rec.CatID.String(),
		Date:      rec.RecordDate.Format(domain.DateLayout),
		AmountML:  rec.AmountML,
		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt: rec.UpdatedAt.Format(time.RFC3339),
	}
}

func toCareResponse(rec *domain.CareRecord) careResponse {
	return careResponse{
		ID:         rec.ID.String(),
		CatID:      rec.CatID.String(),
		Date:       rec.RecordDate.Format(domain.DateLayout),
		Name:       rec.Name,
		RecordType: string(rec.RecordType),
		Dosage:     rec.Dosage,
		Taken:      rec.Taken,
		CreatedAt:  rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  rec.UpdatedAt.Format(time.RFC3339),
	}
}
