package dashboard

import (
	"strings"
	"testing"
)

func fixedAdvisor(tipIndex int) *Advisor {
	return NewAdvisorWithPicker(func(n int) int { return tipIndex })
}

func TestSuggestNoExpenses(t *testing.T) {
	s := fixedAdvisor(0).Suggest(NoTopCategory, 0, 0, 1000)

	if s.Text != "Start adding expenses to get personalized insights!" {
		t.Fatalf("unexpected text: %s", s.Text)
	}
	if s.Percentage != nil {
		t.Fatalf("expected no percentage, got %d", *s.Percentage)
	}
	if s.Tip != fillerTips[0] {
		t.Fatalf("unexpected tip: %s", s.Tip)
	}
}

func TestSuggestOverspendBeatsKeywordRules(t *testing.T) {
	s := fixedAdvisor(1).Suggest("Food", 600, 1200, 1000)

	if !strings.Contains(s.Text, "higher than your income") {
		t.Fatalf("expected overspend suggestion, got %s", s.Text)
	}
	if s.Percentage == nil || *s.Percentage != 50 {
		t.Fatalf("expected percentage 50, got %v", s.Percentage)
	}
}

func TestSuggestKeywordRules(t *testing.T) {
	cases := []struct {
		category string
		want     string
	}{
		{"Food", "cooking at home"},
		{"Street Food", "cooking at home"},
		{"Groceries", "buying in bulk"},
		{"Electricity Bills", "energy-efficient"},
		{"Shopping", "monthly cap"},
		{"Transport", "booking early"},
		{"Travel", "booking early"},
		{"Entertainment", "home movie night"},
		{"Healthcare", "long-term investment"},
	}

	for _, tc := range cases {
		t.Run(tc.category, func(t *testing.T) {
			s := fixedAdvisor(0).Suggest(tc.category, 300, 500, 2000)
			if !strings.Contains(s.Text, tc.want) {
				t.Fatalf("category %s: expected text containing %q, got %q", tc.category, tc.want, s.Text)
			}
			if s.Percentage == nil || *s.Percentage != 60 {
				t.Fatalf("expected percentage 60, got %v", s.Percentage)
			}
		})
	}
}

func TestSuggestFirstKeywordMatchWins(t *testing.T) {
	// "food" is checked before "shopping", so a category containing both
	// gets the food suggestion.
	s := fixedAdvisor(0).Suggest("Food Shopping", 300, 500, 2000)

	if !strings.Contains(s.Text, "cooking at home") {
		t.Fatalf("expected food rule to win, got %s", s.Text)
	}
}

func TestSuggestFallbackNamesCategory(t *testing.T) {
	s := fixedAdvisor(4).Suggest("Pet Care", 120, 400, 2000)

	if s.Text != "Most of your money goes to Pet Care. Review this area for savings!" {
		t.Fatalf("unexpected fallback text: %s", s.Text)
	}
	if s.Percentage == nil || *s.Percentage != 30 {
		t.Fatalf("expected percentage 30, got %v", s.Percentage)
	}
	if s.Tip != fillerTips[4] {
		t.Fatalf("unexpected tip: %s", s.Tip)
	}
}

func TestSuggestTipPickedFromFixedSet(t *testing.T) {
	seen := map[string]bool{}
	for i := range fillerTips {
		s := fixedAdvisor(i).Suggest("Food", 100, 200, 1000)
		seen[s.Tip] = true
	}
	if len(seen) != len(fillerTips) {
		t.Fatalf("expected %d distinct tips, got %d", len(fillerTips), len(seen))
	}
}
