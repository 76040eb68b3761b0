package dashboard

// Sentinel labels used when records carry no category information.
const (
	UncategorizedLabel = "Uncategorized"
	OtherSourceLabel   = "Other"
	NoTopCategory      = "N/A"

	otherExpensesLabel = "Other Expenses"
)

// Record is a flattened expense or income row as fetched from storage.
// Date is a YYYY-MM-DD string; the engine re-validates it before counting
// the record toward any aggregate.
type Record struct {
	Amount   float64
	Date     string
	Category string
}

// DateRange is an inclusive calendar-month window.
type DateRange struct {
	Start string
	End   string
	Year  int
	Month int
}

type CategoryTotal struct {
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Percentage int     `json:"percentage"`
}

type DailyPoint struct {
	Day    int     `json:"day"`
	Amount float64 `json:"amount"`
}

type DonutSlice struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage int     `json:"percentage"`
}

// Result holds every aggregate the dashboard renders for one month.
type Result struct {
	TotalExpense   float64
	TotalIncome    float64
	NetBalance     float64
	TopCategory    string
	CategoryTotals []CategoryTotal
	DailySeries    []DailyPoint
	CategoryDonuts map[string][]DonutSlice
}
