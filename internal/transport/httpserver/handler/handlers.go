package handler

import (
	"time"

	dashboarddomain "finance-tracker-go/internal/domain/dashboard"
	expensesdomain "finance-tracker-go/internal/domain/expenses"
	incomedomain "finance-tracker-go/internal/domain/income"
	"finance-tracker-go/pkg/logger"
)

type Handlers struct {
	Dashboard *dashboarddomain.Service
	Expenses  *expensesdomain.Service
	Income    *incomedomain.Service

	log logger.Logger
	now func() time.Time
}

func New(dashboard *dashboarddomain.Service, expenses *expensesdomain.Service, income *incomedomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Dashboard: dashboard,
		Expenses:  expenses,
		Income:    income,
		log:       log,
		now:       time.Now,
	}
}
