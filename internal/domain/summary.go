package domain

import (
	"sort"
	"time"
)

// OtherCategory is the reserved bucket for unclassified time. It counts
// toward totals but is excluded from every display consumer.
const OtherCategory = "Other"

// DateLayout is the calendar-date key used for daily records.
const DateLayout = "2006-01-02"

// DateOf truncates a wall-clock time to its local calendar date key.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// CategorySummary maps a category name to seconds spent today. It is an
// authoritative snapshot fetched from the usage store; the client replaces
// it wholesale on each poll and never sums deltas into it locally.
type CategorySummary map[string]int64

// CategoryUsage is one display row of a summary.
type CategoryUsage struct {
	Name    string `json:"name"`
	Seconds int64  `json:"seconds"`
}

// Total returns the accumulated seconds across all categories,
// including Other.
func (s CategorySummary) Total() int64 {
	var total int64
	for _, secs := range s {
		total += secs
	}
	return total
}

// Displayed returns the summary as display rows with the reserved Other
// bucket removed, sorted by seconds descending then name ascending.
func (s CategorySummary) Displayed() []CategoryUsage {
	rows := make([]CategoryUsage, 0, len(s))
	for name, secs := range s {
		if name == OtherCategory {
			continue
		}
		rows = append(rows, CategoryUsage{Name: name, Seconds: secs})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Seconds != rows[j].Seconds {
			return rows[i].Seconds > rows[j].Seconds
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}

// Clone returns an independent copy of the summary.
func (s CategorySummary) Clone() CategorySummary {
	if s == nil {
		return nil
	}
	out := make(CategorySummary, len(s))
	for name, secs := range s {
		out[name] = secs
	}
	return out
}
