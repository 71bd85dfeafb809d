package domain

import "math"

// Rating is the qualitative band for a productivity percentage.
type Rating string

const (
	RatingExcellent        Rating = "Excellent"
	RatingGood             Rating = "Good"
	RatingAverage          Rating = "Average"
	RatingNeedsImprovement Rating = "Needs Improvement"
)

// ProductivityScore is the derived daily score. It is recomputed in full
// from the current CategorySummary on every update; there is no
// incremental state.
type ProductivityScore struct {
	Percent float64 `json:"percent"`
	Rating  Rating  `json:"rating"`
}

// ProductiveSet is the allow-list of category names counted toward the
// productivity numerator.
type ProductiveSet map[string]struct{}

// NewProductiveSet builds a set from category names.
func NewProductiveSet(names ...string) ProductiveSet {
	set := make(ProductiveSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Contains reports whether a category counts as productive.
func (p ProductiveSet) Contains(name string) bool {
	_, ok := p[name]
	return ok
}

// DefaultProductiveCategories is the fixed policy list. Membership is a
// constant, not derived; it is injected into the scorer so tests can
// swap it.
func DefaultProductiveCategories() ProductiveSet {
	return NewProductiveSet(
		"Development",
		"Education",
		"Work",
		"Writing",
		"Research",
		"Tools",
		"Design",
	)
}

// ComputeScore derives {percent, rating} from a category summary.
// Other counts toward the denominator but never the numerator. A zero
// total yields exactly 0, not an error. The computation is stateless:
// the same summary always produces the same score.
func ComputeScore(summary CategorySummary, productive ProductiveSet) ProductivityScore {
	total := summary.Total()
	if total <= 0 {
		return ProductivityScore{Percent: 0, Rating: RatingFor(0)}
	}

	var productiveSecs int64
	for name, secs := range summary {
		if productive.Contains(name) {
			productiveSecs += secs
		}
	}

	percent := round1(float64(productiveSecs) / float64(total) * 100)
	return ProductivityScore{Percent: percent, Rating: RatingFor(percent)}
}

// RatingFor maps a percentage to its band. Bands are closed on the lower
// bound and evaluated high to low.
func RatingFor(percent float64) Rating {
	switch {
	case percent >= 90:
		return RatingExcellent
	case percent >= 70:
		return RatingGood
	case percent >= 50:
		return RatingAverage
	default:
		return RatingNeedsImprovement
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
