package dashboard

import (
	"fmt"
	"time"
)

// ResolveMonth returns the inclusive first/last calendar day of the given
// month. Dates are serialized from calendar components, so the result is
// the same in every timezone. Month must already be in 1..12.
func ResolveMonth(year, month int) DateRange {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	// Day zero of the next month normalizes to the last day of this one.
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)

	return DateRange{
		Start: formatDate(first),
		End:   formatDate(last),
		Year:  year,
		Month: month,
	}
}

// Days returns the number of calendar days in the range's month.
func (r DateRange) Days() int {
	return time.Date(r.Year, time.Month(r.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Label renders the range as a human month label, e.g. "August 2025".
func (r DateRange) Label() string {
	return time.Date(r.Year, time.Month(r.Month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

func formatDate(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}
