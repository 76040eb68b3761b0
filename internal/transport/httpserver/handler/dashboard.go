package handler

import (
	"context"
	"errors"
	"net/http"

	dashboarddomain "finance-tracker-go/internal/domain/dashboard"
	"finance-tracker-go/internal/transport/httpserver/middleware"
)

type dashboardResponse struct {
	Month          string                                  `json:"month"`
	StartDate      string                                  `json:"start_date"`
	EndDate        string                                  `json:"end_date"`
	TotalExpense   float64                                 `json:"total_expense"`
	TotalIncome    float64                                 `json:"total_income"`
	NetBalance     float64                                 `json:"net_balance"`
	TopCategory    string                                  `json:"top_category"`
	CategoryTotals []dashboarddomain.CategoryTotal         `json:"category_totals"`
	DailySeries    []dashboarddomain.DailyPoint            `json:"daily_series"`
	CategoryDonuts map[string][]dashboarddomain.DonutSlice `json:"category_donuts"`
	Comparison     comparisonResponse                      `json:"comparison"`
	Suggestion     dashboarddomain.Suggestion              `json:"suggestion"`
	Warnings       []string                                `json:"warnings,omitempty"`
}

type comparisonResponse struct {
	Label   string  `json:"label"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

func (h *Handlers) GetDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	year, month, err := parseMonthParam(r.URL.Query().Get("month"), h.now)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid month, expected YYYY-MM")
		return
	}

	view, err := h.Dashboard.Load(r.Context(), user.ID, year, month)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		h.log.InternalError("dashboard.get: load failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		Month:          view.Month,
		StartDate:      view.Range.Start,
		EndDate:        view.Range.End,
		TotalExpense:   view.Result.TotalExpense,
		TotalIncome:    view.Result.TotalIncome,
		NetBalance:     view.Result.NetBalance,
		TopCategory:    view.Result.TopCategory,
		CategoryTotals: view.Result.CategoryTotals,
		DailySeries:    view.Result.DailySeries,
		CategoryDonuts: view.Result.CategoryDonuts,
		Comparison: comparisonResponse{
			Label:   view.Range.Label(),
			Income:  view.Result.TotalIncome,
			Expense: view.Result.TotalExpense,
		},
		Suggestion: view.Suggestion,
		Warnings:   view.Warnings,
	})
}
