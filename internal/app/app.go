package app

import (
	"net/http"

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

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: applying migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	expensesService := expensesdomain.NewService(expensesrepo.NewPostgres(dbConn))
	incomeService := incomedomain.NewService(incomerepo.NewPostgres(dbConn))
	userService := userdomain.NewService(userrepo.NewPostgres(dbConn))
	dashboardService := dashboarddomain.NewService(
		expensesService,
		incomeService,
		dashboarddomain.NewAdvisor(),
		log,
	)

	handlers := handler.New(dashboardService, expensesService, incomeService, log)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers, userService, log)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
