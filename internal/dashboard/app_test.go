package dashboard

import (
	"strings"
	"testing"

	"deskflow/internal/domain"
	"deskflow/internal/watcher"
)

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{45, "45s"},
		{90, "1m30s"},
		{3600, "1h00m"},
		{5430, "1h30m"},
	}

	for _, tt := range tests {
		if got := formatSeconds(tt.seconds); got != tt.want {
			t.Errorf("formatSeconds(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestViewOmitsOtherCategory(t *testing.T) {
	state := watcher.NewState()
	state.SetSummary(domain.CategorySummary{
		"Work":  3600,
		"Other": 1800,
	})
	state.SetScore(domain.ProductivityScore{Percent: 66.7, Rating: domain.RatingAverage})

	view := New(state).View()

	if !strings.Contains(view, "Work") {
		t.Error("expected Work category in view")
	}
	if strings.Contains(view, "Other") {
		t.Error("Other category must not be rendered")
	}
	if !strings.Contains(view, "66.7%") {
		t.Error("expected score percent in view")
	}
}

func TestViewShowsActiveWindow(t *testing.T) {
	state := watcher.NewState()
	state.SetObservation(domain.WindowObservation{Title: "notes.md", Process: "editor"})

	view := New(state).View()

	if !strings.Contains(view, "notes.md") {
		t.Error("expected active window title in view")
	}
}
