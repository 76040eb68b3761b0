package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	dashboarddomain "finance-tracker-go/internal/domain/dashboard"
	incomedomain "finance-tracker-go/internal/domain/income"
	"finance-tracker-go/internal/transport/httpserver/middleware"
)

type createIncomeRequest struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	SourceID    *string `json:"source_id"`
	Description string  `json:"description"`
}

type incomeResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Amount      float64   `json:"amount"`
	SourceID    *string   `json:"source_id"`
	SourceName  string    `json:"source_name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type incomeListResponse struct {
	Items []incomeResponse `json:"items"`
}

func toIncomeResponse(item incomedomain.IncomeWithSource) incomeResponse {
	name := dashboarddomain.OtherSourceLabel
	if item.SourceName != nil && *item.SourceName != "" {
		name = *item.SourceName
	}
	return incomeResponse{
		ID:          item.ID,
		Date:        item.Date.Format("2006-01-02"),
		Amount:      item.Amount,
		SourceID:    item.SourceID,
		SourceName:  name,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
	}
}

func (h *Handlers) ListIncome(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	query := r.URL.Query()
	from, err := parseDateParam(query.Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid from date")
		return
	}
	to, err := parseDateParam(query.Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid to date")
		return
	}
	limit, err := parseIntParam(query.Get("limit"), 50)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid limit")
		return
	}
	offset, err := parseIntParam(query.Get("offset"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid offset")
		return
	}

	items, err := h.Income.ListIncome(r.Context(), user.ID, incomedomain.ListFilter{
		From:   from,
		To:     to,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.log.InternalError("income.list: list failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]incomeResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toIncomeResponse(item))
	}

	writeJSON(w, http.StatusOK, incomeListResponse{Items: response})
}

func (h *Handlers) CreateIncome(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	var req createIncomeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	date, err := parseDateRequired(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid date")
		return
	}
	if req.Amount < 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "amount must not be negative")
		return
	}

	created, err := h.Income.CreateIncome(r.Context(), incomedomain.CreateIncomeInput{
		UserID:      user.ID,
		Date:        date,
		Amount:      req.Amount,
		SourceID:    req.SourceID,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, incomedomain.ErrSourceNotFound) {
			h.log.BusinessError("income.create: source not found", err, "user_id", user.ID)
			writeError(w, http.StatusNotFound, "income_source_not_found", "income source not found")
			return
		}
		h.log.InternalError("income.create: create failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toIncomeResponse(*created))
}

type createSourceRequest struct {
	Name string `json:"name"`
}

type sourceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func toSourceResponse(source incomedomain.Source) sourceResponse {
	return sourceResponse{
		ID:        source.ID,
		Name:      source.Name,
		CreatedAt: source.CreatedAt,
	}
}

func (h *Handlers) ListIncomeSources(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	sources, err := h.Income.ListSources(r.Context(), user.ID)
	if err != nil {
		h.log.InternalError("income_sources.list: list failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]sourceResponse, 0, len(sources))
	for _, source := range sources {
		response = append(response, toSourceResponse(source))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateIncomeSource(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	var req createSourceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}

	created, err := h.Income.CreateSource(r.Context(), incomedomain.CreateSourceInput{
		UserID: user.ID,
		Name:   req.Name,
	})
	if err != nil {
		if errors.Is(err, incomedomain.ErrSourceNameTaken) {
			h.log.BusinessError("income_sources.create: name taken", err, "user_id", user.ID)
			writeError(w, http.StatusConflict, "income_source_name_taken", "income source name already exists")
			return
		}
		h.log.InternalError("income_sources.create: create failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toSourceResponse(*created))
}
