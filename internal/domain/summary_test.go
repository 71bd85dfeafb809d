package domain

import (
	"testing"
	"time"
)

func TestCategorySummary_Total(t *testing.T) {
	tests := []struct {
		name    string
		summary CategorySummary
		expect  int64
	}{
		{"empty", CategorySummary{}, 0},
		{"nil", nil, 0},
		{"includes other", CategorySummary{"Work": 100, "Other": 50}, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.summary.Total(); got != tt.expect {
				t.Errorf("expected %d, got %d", tt.expect, got)
			}
		})
	}
}

func TestCategorySummary_Displayed(t *testing.T) {
	summary := CategorySummary{
		"Work":    3600,
		"Other":   9999,
		"Gaming":  3600,
		"Music":   120,
		"Writing": 500,
	}

	rows := summary.Displayed()

	for _, row := range rows {
		if row.Name == OtherCategory {
			t.Fatalf("Displayed must not contain %q", OtherCategory)
		}
	}

	expect := []CategoryUsage{
		{"Gaming", 3600}, // ties broken by name
		{"Work", 3600},
		{"Writing", 500},
		{"Music", 120},
	}
	if len(rows) != len(expect) {
		t.Fatalf("expected %d rows, got %d", len(expect), len(rows))
	}
	for i, want := range expect {
		if rows[i] != want {
			t.Errorf("row %d: expected %+v, got %+v", i, want, rows[i])
		}
	}
}

func TestCategorySummary_Clone(t *testing.T) {
	original := CategorySummary{"Work": 100}
	clone := original.Clone()

	clone["Work"] = 999
	clone["Gaming"] = 1

	if original["Work"] != 100 {
		t.Errorf("clone mutation leaked into original: %v", original)
	}
	if _, ok := original["Gaming"]; ok {
		t.Error("clone key insertion leaked into original")
	}
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2026, time.March, 7, 23, 59, 59, 0, time.Local)
	if got := DateOf(ts); got != "2026-03-07" {
		t.Errorf("expected 2026-03-07, got %s", got)
	}
}
