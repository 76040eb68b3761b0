//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"finance-tracker-go/internal/config"
	"finance-tracker-go/internal/db"
	dashboarddomain "finance-tracker-go/internal/domain/dashboard"
	expensesdomain "finance-tracker-go/internal/domain/expenses"
	incomedomain "finance-tracker-go/internal/domain/income"
	userdomain "finance-tracker-go/internal/domain/user"
	expensesrepo "finance-tracker-go/internal/repository/postgres/expenses"
	incomerepo "finance-tracker-go/internal/repository/postgres/income"
	userrepo "finance-tracker-go/internal/repository/postgres/user"
	"finance-tracker-go/internal/transport/httpserver"
	"finance-tracker-go/internal/transport/httpserver/handler"
	"finance-tracker-go/pkg/logger"
	"gorm.io/gorm"
)

type testEnv struct {
	server     *httptest.Server
	authServer *httptest.Server
	db         *gorm.DB
}

func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	dsn := os.Getenv("E2E_DB_DSN")
	if dsn == "" {
		t.Skip("E2E_DB_DSN not set; skipping e2e tests")
	}

	authServer := newAuthServer(t)
	log := logger.NewFromEnv()

	cfg := config.Config{
		DB: config.DBConfig{DSN: dsn},
		Supabase: config.SupabaseConfig{
			URL:            authServer.URL,
			PublishableKey: "test-key",
			AuthTimeout:    2 * time.Second,
		},
	}

	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}

	if err := db.Migrate(dbConn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := cleanDB(dbConn); err != nil {
		t.Fatalf("clean db: %v", err)
	}

	expensesService := expensesdomain.NewService(expensesrepo.NewPostgres(dbConn))
	incomeService := incomedomain.NewService(incomerepo.NewPostgres(dbConn))
	userService := userdomain.NewService(userrepo.NewPostgres(dbConn))
	dashboardService := dashboarddomain.NewService(
		expensesService,
		incomeService,
		dashboarddomain.NewAdvisorWithPicker(func(n int) int { return 0 }),
		log,
	)
	handlers := handler.New(dashboardService, expensesService, incomeService, log)

	router := httpserver.NewRouter(cfg, handlers, userService, log)
	server := httptest.NewServer(router)

	return &testEnv{server: server, authServer: authServer, db: dbConn}
}

func (e *testEnv) Close() {
	e.server.Close()
	e.authServer.Close()
	sqlDB, err := e.db.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
}

func newAuthServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apikey") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		if token == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		payload := map[string]interface{}{
			"id":    token,
			"email": token + "@example.com",
			"user_metadata": map[string]interface{}{
				"display_name": "User " + token,
			},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}))
}

func cleanDB(dbConn *gorm.DB) error {
	return dbConn.WithContext(context.Background()).Exec(
		"TRUNCATE TABLE income, income_sources, expenses, categories, user_profiles RESTART IDENTITY CASCADE",
	).Error
}

func requestJSON(t *testing.T, client *http.Client, method, url, token string, payload interface{}) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}

	return resp, respBody
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type authMeResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

type categoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type sourceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type expenseResponse struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	Amount       float64 `json:"amount"`
	CategoryID   *string `json:"category_id"`
	CategoryName string  `json:"category_name"`
}

type expenseListResponse struct {
	Items []expenseResponse `json:"items"`
}

func TestE2EHealthAndAuth(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := &http.Client{Timeout: 5 * time.Second}

	resp, body := requestJSON(t, client, http.MethodGet, env.server.URL+"/api/health", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/auth/me", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", resp.StatusCode, string(body))
	}
	var errResp errorEnvelope
	if err := json.Unmarshal(body, &errResp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if errResp.Error.Code != "invalid_token" {
		t.Fatalf("expected invalid_token, got %q", errResp.Error.Code)
	}

	userID := "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/auth/me", userID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var me authMeResponse
	if err := json.Unmarshal(body, &me); err != nil {
		t.Fatalf("decode me: %v", err)
	}
	if me.ID != userID {
		t.Fatalf("expected id %s, got %q", userID, me.ID)
	}
	if me.DisplayName != "User "+userID {
		t.Fatalf("expected display name, got %q", me.DisplayName)
	}
}

func TestE2EExpenseFlow(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := &http.Client{Timeout: 5 * time.Second}
	user1 := "11111111-1111-1111-1111-111111111111"

	missing := "99999999-9999-9999-9999-999999999999"
	resp, body := requestJSON(t, client, http.MethodPost, env.server.URL+"/api/expenses", user1, map[string]interface{}{
		"date":        "2026-02-05",
		"amount":      12.5,
		"category_id": missing,
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/categories", user1, map[string]string{
		"name": "Food",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var category categoryResponse
	if err := json.Unmarshal(body, &category); err != nil {
		t.Fatalf("decode category: %v", err)
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/categories", user1, map[string]string{
		"name": "food",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate name, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/expenses", user1, map[string]interface{}{
		"date":        "2026-02-05",
		"amount":      12.5,
		"category_id": category.ID,
		"description": "lunch",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var expense expenseResponse
	if err := json.Unmarshal(body, &expense); err != nil {
		t.Fatalf("decode expense: %v", err)
	}
	if expense.CategoryName != "Food" {
		t.Fatalf("expected category name Food, got %q", expense.CategoryName)
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/expenses?from=2026-02-01&to=2026-02-28", user1, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var list expenseListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Items) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(list.Items))
	}
}

func TestE2EDashboard(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := &http.Client{Timeout: 5 * time.Second}
	user1 := "22222222-2222-2222-2222-222222222222"

	resp, body := requestJSON(t, client, http.MethodPost, env.server.URL+"/api/categories", user1, map[string]string{
		"name": "Food",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var category categoryResponse
	if err := json.Unmarshal(body, &category); err != nil {
		t.Fatalf("decode category: %v", err)
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/income-sources", user1, map[string]string{
		"name": "Salary",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var source sourceResponse
	if err := json.Unmarshal(body, &source); err != nil {
		t.Fatalf("decode source: %v", err)
	}

	for _, payload := range []map[string]interface{}{
		{"date": "2026-02-03", "amount": 300.0, "category_id": category.ID},
		{"date": "2026-02-10", "amount": 100.0},
	} {
		resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/expenses", user1, payload)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", resp.StatusCode, string(body))
		}
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/income", user1, map[string]interface{}{
		"date":      "2026-02-01",
		"amount":    1000.0,
		"source_id": source.ID,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/dashboard?month=2026-02", user1, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}

	var dash struct {
		Month          string  `json:"month"`
		StartDate      string  `json:"start_date"`
		EndDate        string  `json:"end_date"`
		TotalExpense   float64 `json:"total_expense"`
		TotalIncome    float64 `json:"total_income"`
		NetBalance     float64 `json:"net_balance"`
		TopCategory    string  `json:"top_category"`
		CategoryTotals []struct {
			Name       string  `json:"name"`
			Amount     float64 `json:"amount"`
			Percentage int     `json:"percentage"`
		} `json:"category_totals"`
		DailySeries []struct {
			Day    int     `json:"day"`
			Amount float64 `json:"amount"`
		} `json:"daily_series"`
		Suggestion struct {
			Text       string `json:"text"`
			Percentage *int   `json:"percentage"`
			Tip        string `json:"tip"`
		} `json:"suggestion"`
	}
	if err := json.Unmarshal(body, &dash); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}

	if dash.Month != "2026-02" || dash.StartDate != "2026-02-01" || dash.EndDate != "2026-02-28" {
		t.Fatalf("unexpected month window: %s %s..%s", dash.Month, dash.StartDate, dash.EndDate)
	}
	if dash.TotalExpense != 400 || dash.TotalIncome != 1000 || dash.NetBalance != 600 {
		t.Fatalf("unexpected totals: %+v", dash)
	}
	if dash.TopCategory != "Food" {
		t.Fatalf("expected top category Food, got %q", dash.TopCategory)
	}
	if len(dash.DailySeries) != 28 {
		t.Fatalf("expected 28 daily points, got %d", len(dash.DailySeries))
	}
	if len(dash.CategoryTotals) != 2 {
		t.Fatalf("expected 2 category totals, got %d", len(dash.CategoryTotals))
	}
	if dash.CategoryTotals[0].Name != "Food" || dash.CategoryTotals[0].Percentage != 75 {
		t.Fatalf("unexpected first category: %+v", dash.CategoryTotals[0])
	}
	if dash.CategoryTotals[1].Name != "Uncategorized" || dash.CategoryTotals[1].Percentage != 25 {
		t.Fatalf("unexpected second category: %+v", dash.CategoryTotals[1])
	}
	if dash.Suggestion.Text == "" || dash.Suggestion.Tip == "" {
		t.Fatalf("expected suggestion, got %+v", dash.Suggestion)
	}
	if dash.Suggestion.Percentage == nil || *dash.Suggestion.Percentage != 75 {
		t.Fatalf("expected suggestion percentage 75, got %v", dash.Suggestion.Percentage)
	}
}
