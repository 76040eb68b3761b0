package httpserver

import (
	"net/http"
	"time"

	"finance-tracker-go/internal/config"
	"finance-tracker-go/internal/transport/httpserver/handler"
	authmw "finance-tracker-go/internal/transport/httpserver/middleware"
	"finance-tracker-go/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, profiles authmw.ProfileSaver, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(cfg.CORSAllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		auth := authmw.NewSupabaseAuth(cfg.Supabase, profiles, log)
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/auth/me", handlers.AuthMe)

			r.Get("/dashboard", handlers.GetDashboard)

			r.Get("/expenses", handlers.ListExpenses)
			r.Post("/expenses", handlers.CreateExpense)
			r.Get("/categories", handlers.ListCategories)
			r.Post("/categories", handlers.CreateCategory)

			r.Get("/income", handlers.ListIncome)
			r.Post("/income", handlers.CreateIncome)
			r.Get("/income-sources", handlers.ListIncomeSources)
			r.Post("/income-sources", handlers.CreateIncomeSource)
		})
	})

	return r
}
