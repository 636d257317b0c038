package schedule

import "github.com/luminar-edu/studyplan/internal/rules"

// minWeight is the positive floor for an adjusted weight. A course with
// full mastery and no urgency still draws a nominal share of the budget.
const minWeight = 0.1

// BaseWeight derives a course's weight from confidence and credit load.
// Confidence dominates (inverse, so 1 maps to 5); each credit unit beyond
// the first adds 30%.
func BaseWeight(c Course) float64 {
	inv := float64(6 - c.ConfidenceLevel)
	if inv < 1 {
		inv = 1
	}
	credit := c.CreditUnit
	if credit < 1 {
		credit = 1
	}
	return inv * (1.0 + 0.30*float64(credit-1))
}

// AggregateWeight combines a course's base weight with the net boost from
// its topic adjustments, clamped to the positive floor. With no
// adjustments the base weight passes through unchanged.
func AggregateWeight(c Course, adjs []rules.Adjustment) float64 {
	w := BaseWeight(c)
	for _, a := range adjs {
		w += a.Boost
	}
	if w < minWeight {
		return minWeight
	}
	return w
}
