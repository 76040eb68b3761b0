package dashboard

import (
	"fmt"
	"math/rand"
	"strings"
)

// Suggestion is the one-line spending insight shown on the dashboard.
// Percentage is nil when there is no top category to measure.
type Suggestion struct {
	Text       string `json:"text"`
	Percentage *int   `json:"percentage,omitempty"`
	Tip        string `json:"tip"`
}

var fillerTips = []string{
	"Small savings add up to big wins!",
	"A budget is telling your money where to go.",
	"Track every rupee — it gives you control.",
	"Cutting 1 coffee a day = saving ₹1000+ a month!",
	"Consistency beats intensity in savings.",
}

var categoryRules = []struct {
	keywords []string
	text     string
}{
	{[]string{"food"}, "Food is your biggest expense — try cooking at home a few more times!"},
	{[]string{"grocer"}, "Groceries are important, but buying in bulk could save money."},
	{[]string{"bills", "electricity"}, "Bills top your spending — consider energy-efficient options."},
	{[]string{"shopping"}, "Shopping leads — set a monthly cap to stay on track."},
	{[]string{"travel", "transport"}, "Travel is big — booking early can reduce costs."},
	{[]string{"entertainment"}, "Entertainment leads — try a home movie night to save."},
	{[]string{"health"}, "Health is top — a worthwhile long-term investment."},
}

// Advisor turns a month's aggregates into a Suggestion. The tip picker is
// injectable so tests can pin the random choice.
type Advisor struct {
	pick func(n int) int
}

func NewAdvisor() *Advisor {
	return &Advisor{pick: rand.Intn}
}

func NewAdvisorWithPicker(pick func(n int) int) *Advisor {
	return &Advisor{pick: pick}
}

// Suggest applies the rule table: no expenses first, then overspend, then
// the top-category keyword rules in order (first match wins), then a
// generic fallback naming the category.
func (a *Advisor) Suggest(topCategory string, topAmount, totalExpense, totalIncome float64) Suggestion {
	tip := fillerTips[a.pick(len(fillerTips))]

	if totalExpense <= 0 || topCategory == "" || topCategory == NoTopCategory {
		return Suggestion{Text: "Start adding expenses to get personalized insights!", Tip: tip}
	}

	var pct *int
	if topAmount > 0 {
		v := percentOf(topAmount, totalExpense)
		pct = &v
	}

	if totalIncome-totalExpense < 0 {
		return Suggestion{
			Text:       "Your expenses are higher than your income — time to review spending.",
			Percentage: pct,
			Tip:        tip,
		}
	}

	lower := strings.ToLower(topCategory)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return Suggestion{Text: rule.text, Percentage: pct, Tip: tip}
			}
		}
	}

	return Suggestion{
		Text:       fmt.Sprintf("Most of your money goes to %s. Review this area for savings!", topCategory),
		Percentage: pct,
		Tip:        tip,
	}
}
