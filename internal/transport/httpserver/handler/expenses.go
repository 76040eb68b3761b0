package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	dashboarddomain "finance-tracker-go/internal/domain/dashboard"
	expensesdomain "finance-tracker-go/internal/domain/expenses"
	"finance-tracker-go/internal/transport/httpserver/middleware"
)

type createExpenseRequest struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	CategoryID  *string `json:"category_id"`
	Description string  `json:"description"`
}

type expenseResponse struct {
	ID           string    `json:"id"`
	Date         string    `json:"date"`
	Amount       float64   `json:"amount"`
	CategoryID   *string   `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

type expenseListResponse struct {
	Items []expenseResponse `json:"items"`
}

func toExpenseResponse(item expensesdomain.ExpenseWithCategory) expenseResponse {
	name := dashboarddomain.UncategorizedLabel
	if item.CategoryName != nil && *item.CategoryName != "" {
		name = *item.CategoryName
	}
	return expenseResponse{
		ID:           item.ID,
		Date:         item.Date.Format("2006-01-02"),
		Amount:       item.Amount,
		CategoryID:   item.CategoryID,
		CategoryName: name,
		Description:  item.Description,
		CreatedAt:    item.CreatedAt,
	}
}

func (h *Handlers) ListExpenses(w http.ResponseWriter, r *http.Request) {
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

	items, err := h.Expenses.ListExpenses(r.Context(), user.ID, expensesdomain.ListFilter{
		From:   from,
		To:     to,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.log.InternalError("expenses.list: list failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]expenseResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toExpenseResponse(item))
	}

	writeJSON(w, http.StatusOK, expenseListResponse{Items: response})
}

func (h *Handlers) CreateExpense(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	var req createExpenseRequest
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

	created, err := h.Expenses.CreateExpense(r.Context(), expensesdomain.CreateExpenseInput{
		UserID:      user.ID,
		Date:        date,
		Amount:      req.Amount,
		CategoryID:  req.CategoryID,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, expensesdomain.ErrCategoryNotFound) {
			h.log.BusinessError("expenses.create: category not found", err, "user_id", user.ID)
			writeError(w, http.StatusNotFound, "category_not_found", "category not found")
			return
		}
		h.log.InternalError("expenses.create: create failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toExpenseResponse(*created))
}

type createCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type categoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func toCategoryResponse(category expensesdomain.Category) categoryResponse {
	return categoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
	}
}

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	categories, err := h.Expenses.ListCategories(r.Context(), user.ID)
	if err != nil {
		h.log.InternalError("categories.list: list failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, toCategoryResponse(category))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}

	created, err := h.Expenses.CreateCategory(r.Context(), expensesdomain.CreateCategoryInput{
		UserID:      user.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, expensesdomain.ErrCategoryNameTaken) {
			h.log.BusinessError("categories.create: name taken", err, "user_id", user.ID)
			writeError(w, http.StatusConflict, "category_name_taken", "category name already exists")
			return
		}
		h.log.InternalError("categories.create: create failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryResponse(*created))
}
