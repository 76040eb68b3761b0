package dashboard

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"finance-tracker-go/pkg/logger"
)

// RecordSource lists the flattened records of one money type (expenses or
// income) for a user within an inclusive YYYY-MM-DD range.
type RecordSource interface {
	ListRecords(ctx context.Context, userID, from, to string) ([]Record, error)
}

// View is everything the dashboard endpoint returns for one month.
type View struct {
	Month      string
	Range      DateRange
	Result     Result
	Suggestion Suggestion
	Warnings   []string
}

type Service struct {
	expenses RecordSource
	income   RecordSource
	advisor  *Advisor
	log      logger.Logger
}

func NewService(expenses, income RecordSource, advisor *Advisor, log logger.Logger) *Service {
	return &Service{expenses: expenses, income: income, advisor: advisor, log: log}
}

// Load builds the dashboard for one user and month. Expenses and income are
// fetched concurrently; a failing fetch degrades to an empty list plus a
// warning so the other money type still renders.
func (s *Service) Load(ctx context.Context, userID string, year, month int) (View, error) {
	r := ResolveMonth(year, month)

	var (
		mu       sync.Mutex
		warnings []string
		expenses []Record
		income   []Record
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.expenses.ListRecords(gctx, userID, r.Start, r.End)
		if err != nil {
			s.log.Warn("expense fetch failed, rendering without expenses", "user_id", userID, "err", err)
			mu.Lock()
			warnings = append(warnings, "failed to load expense data")
			mu.Unlock()
			return nil
		}
		expenses = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.income.ListRecords(gctx, userID, r.Start, r.End)
		if err != nil {
			s.log.Warn("income fetch failed, rendering without income", "user_id", userID, "err", err)
			mu.Lock()
			warnings = append(warnings, "failed to load income data")
			mu.Unlock()
			return nil
		}
		income = rows
		return nil
	})
	_ = g.Wait()

	// A superseded request is abandoned by the caller; stop before
	// computing aggregates nobody will read.
	if err := ctx.Err(); err != nil {
		return View{}, err
	}

	result := Aggregate(expenses, income, r)

	var topAmount float64
	if len(result.CategoryTotals) > 0 {
		topAmount = result.CategoryTotals[0].Amount
	}
	suggestion := s.advisor.Suggest(result.TopCategory, topAmount, result.TotalExpense, result.TotalIncome)

	return View{
		Month:      fmt.Sprintf("%04d-%02d", year, month),
		Range:      r,
		Result:     result,
		Suggestion: suggestion,
		Warnings:   warnings,
	}, nil
}
