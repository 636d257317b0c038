package rules

// UrgencyFactor computes a continuous urgency multiplier from the exam
// horizon. Cram mode steepens the curve.
//
// The rule catalog does not use this curve: its urgency rules are discrete
// per-day additive constants, and callers depend on that discrete output.
// The helper is kept for tooling that wants a smooth multiplier (e.g. ad
// hoc what-if queries); wiring it into the catalog would change every
// schedule this service produces.
func UrgencyFactor(daysToExam int, cramMode bool) float64 {
	if cramMode {
		switch {
		case daysToExam <= 1:
			return 2.0
		case daysToExam <= 3:
			return 1.8
		case daysToExam <= 7:
			return 1.6
		case daysToExam <= 14:
			return 1.3
		default:
			return 1.0
		}
	}
	switch {
	case daysToExam <= 1:
		return 1.8
	case daysToExam <= 3:
		return 1.5
	case daysToExam <= 7:
		return 1.3
	case daysToExam <= 14:
		return 1.15
	default:
		return 1.0
	}
}
