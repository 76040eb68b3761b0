package dashboard

import (
	"math"
	"sort"
	"strings"
	"time"
)

// Aggregate reduces the fetched expense and income rows for one month into
// the full dashboard result. It never fails: malformed records are skipped
// and empty input yields a zeroed result with sentinel labels.
func Aggregate(expenses, income []Record, r DateRange) Result {
	res := Result{
		TopCategory:    NoTopCategory,
		CategoryTotals: []CategoryTotal{},
		CategoryDonuts: map[string][]DonutSlice{},
	}

	days := r.Days()
	daily := make([]float64, days)

	type group struct {
		name   string
		amount float64
	}
	var groups []*group
	byName := map[string]*group{}

	for _, rec := range expenses {
		day, ok := dayOfMonth(rec.Date, r.Year, r.Month)
		if !ok {
			continue
		}
		amount := sanitizeAmount(rec.Amount)
		res.TotalExpense += amount
		daily[day-1] += amount

		name := rec.Category
		if name == "" {
			name = UncategorizedLabel
		}
		g := byName[name]
		if g == nil {
			g = &group{name: name}
			byName[name] = g
			groups = append(groups, g)
		}
		g.amount += amount
	}

	for _, rec := range income {
		if _, ok := dayOfMonth(rec.Date, r.Year, r.Month); !ok {
			continue
		}
		res.TotalIncome += sanitizeAmount(rec.Amount)
	}
	res.NetBalance = res.TotalIncome - res.TotalExpense

	// Descending by amount; ties keep first-encounter order.
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].amount > groups[j].amount
	})

	for _, g := range groups {
		res.CategoryTotals = append(res.CategoryTotals, CategoryTotal{
			Name:       g.name,
			Amount:     g.amount,
			Percentage: percentOf(g.amount, res.TotalExpense),
		})
		rest := res.TotalExpense - g.amount
		res.CategoryDonuts[g.name] = []DonutSlice{
			{Name: g.name, Value: g.amount, Percentage: percentOf(g.amount, res.TotalExpense)},
			{Name: otherExpensesLabel, Value: rest, Percentage: percentOf(rest, res.TotalExpense)},
		}
	}

	if len(groups) > 0 && res.TotalExpense > 0 {
		res.TopCategory = groups[0].name
	}

	res.DailySeries = make([]DailyPoint, days)
	for i, amount := range daily {
		res.DailySeries[i] = DailyPoint{Day: i + 1, Amount: amount}
	}

	return res
}

// percentOf rounds part/total to a whole percentage. Entries are rounded
// independently, so a set of percentages may sum to 99 or 101.
func percentOf(part, total float64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(part / total * 100))
}

func sanitizeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// dayOfMonth parses a YYYY-MM-DD date and returns its day number when the
// date is valid and falls inside the target month.
func dayOfMonth(date string, year, month int) (int, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(date))
	if err != nil {
		return 0, false
	}
	if t.Year() != year || int(t.Month()) != month {
		return 0, false
	}
	return t.Day(), true
}
