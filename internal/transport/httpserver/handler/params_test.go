package handler

import (
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC)
}

func TestParseMonthParamDefaultsToCurrentMonth(t *testing.T) {
	year, month, err := parseMonthParam("", fixedNow)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if year != 2025 || month != 8 {
		t.Fatalf("expected 2025-08, got %d-%d", year, month)
	}
}

func TestParseMonthParamParsesValue(t *testing.T) {
	year, month, err := parseMonthParam("2024-02", fixedNow)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if year != 2024 || month != 2 {
		t.Fatalf("expected 2024-02, got %d-%d", year, month)
	}
}

func TestParseMonthParamRejectsGarbage(t *testing.T) {
	for _, value := range []string{"2024-13", "February", "2024/02", "24-02"} {
		if _, _, err := parseMonthParam(value, fixedNow); err == nil {
			t.Fatalf("expected error for %q", value)
		}
	}
}

func TestParseDateParam(t *testing.T) {
	parsed, err := parseDateParam(" 2025-08-01 ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if parsed == nil || !parsed.Equal(time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", parsed)
	}

	parsed, err = parseDateParam("")
	if err != nil || parsed != nil {
		t.Fatalf("expected nil for empty value, got %v %v", parsed, err)
	}

	if _, err := parseDateParam("01-08-2025"); err == nil {
		t.Fatalf("expected error for wrong format")
	}
}

func TestParseIntParam(t *testing.T) {
	value, err := parseIntParam("", 50)
	if err != nil || value != 50 {
		t.Fatalf("expected fallback 50, got %d %v", value, err)
	}

	value, err = parseIntParam("25", 50)
	if err != nil || value != 25 {
		t.Fatalf("expected 25, got %d %v", value, err)
	}

	if _, err := parseIntParam("-1", 50); err == nil {
		t.Fatalf("expected error for negative value")
	}
	if _, err := parseIntParam("abc", 50); err == nil {
		t.Fatalf("expected error for non-numeric value")
	}
}
