package schedule

import (
	"testing"

	"github.com/luminar-edu/studyplan/internal/rules"
)

func TestBaseWeight(t *testing.T) {
	tests := []struct {
		name       string
		confidence int
		credit     int
		want       float64
	}{
		{"weakest-single-credit", 1, 1, 5.0},
		{"strongest-single-credit", 5, 1, 1.0},
		{"weakest-two-credits", 1, 2, 6.5},
		{"mid-confidence", 3, 1, 3.0},
		{"three-credits", 5, 3, 1.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Course{Name: "X", ConfidenceLevel: tt.confidence, CreditUnit: tt.credit}
			if got := BaseWeight(c); got != tt.want {
				t.Errorf("BaseWeight(conf=%d, credit=%d) = %v, want %v", tt.confidence, tt.credit, got, tt.want)
			}
		})
	}
}

func TestBaseWeight_ConfidenceMonotonic(t *testing.T) {
	for credit := 1; credit <= 4; credit++ {
		for conf := 1; conf < 5; conf++ {
			lower := BaseWeight(Course{Name: "A", ConfidenceLevel: conf, CreditUnit: credit})
			higher := BaseWeight(Course{Name: "B", ConfidenceLevel: conf + 1, CreditUnit: credit})
			if lower < higher {
				t.Errorf("confidence %d weight %v < confidence %d weight %v; lower confidence must never weigh less",
					conf, lower, conf+1, higher)
			}
		}
	}
}

func TestBaseWeight_CreditMonotonic(t *testing.T) {
	for conf := 1; conf <= 5; conf++ {
		for credit := 1; credit < 6; credit++ {
			less := BaseWeight(Course{Name: "A", ConfidenceLevel: conf, CreditUnit: credit})
			more := BaseWeight(Course{Name: "B", ConfidenceLevel: conf, CreditUnit: credit + 1})
			if more <= less {
				t.Errorf("credit %d weight %v not strictly greater than credit %d weight %v",
					credit+1, more, credit, less)
			}
		}
	}
}

func TestAggregateWeight_NoAdjustmentsPassThrough(t *testing.T) {
	c := Course{Name: "Math", ConfidenceLevel: 2, CreditUnit: 3}
	if got, want := AggregateWeight(c, nil), BaseWeight(c); got != want {
		t.Errorf("AggregateWeight with no adjustments = %v, want base %v", got, want)
	}
}

func TestAggregateWeight_SumsBoosts(t *testing.T) {
	c := Course{Name: "Math", ConfidenceLevel: 3, CreditUnit: 1} // base 3.0
	adjs := []rules.Adjustment{
		{RuleID: "MAS-01", Boost: 0.40},
		{RuleID: "CMB-01", Boost: 0.12},
		{RuleID: "PEN-01", Boost: -0.10},
	}
	want := 3.0 + 0.40 + 0.12 - 0.10
	if got := AggregateWeight(c, adjs); got != want {
		t.Errorf("AggregateWeight = %v, want %v", got, want)
	}
}

func TestAggregateWeight_PositiveFloor(t *testing.T) {
	c := Course{Name: "Easy", ConfidenceLevel: 5, CreditUnit: 1} // base 1.0
	adjs := []rules.Adjustment{
		{RuleID: "MAS-09", Boost: -0.20},
		{RuleID: "PEN-02", Boost: -0.90},
	}
	got := AggregateWeight(c, adjs)
	if got != minWeight {
		t.Errorf("AggregateWeight = %v, want floor %v; weight must never reach zero", got, minWeight)
	}
}
