package rules

import "testing"

func TestUrgencyFactor(t *testing.T) {
	tests := []struct {
		days int
		cram bool
		want float64
	}{
		{0, true, 2.0},
		{1, true, 2.0},
		{3, true, 1.8},
		{7, true, 1.6},
		{14, true, 1.3},
		{15, true, 1.0},
		{0, false, 1.8},
		{1, false, 1.8},
		{3, false, 1.5},
		{7, false, 1.3},
		{14, false, 1.15},
		{30, false, 1.0},
	}

	for _, tt := range tests {
		if got := UrgencyFactor(tt.days, tt.cram); got != tt.want {
			t.Errorf("UrgencyFactor(%d, %v) = %v, want %v", tt.days, tt.cram, got, tt.want)
		}
	}
}

func TestUrgencyFactor_Monotonic(t *testing.T) {
	for _, cram := range []bool{false, true} {
		prev := UrgencyFactor(0, cram)
		for days := 1; days <= 31; days++ {
			cur := UrgencyFactor(days, cram)
			if cur > prev {
				t.Errorf("UrgencyFactor(%d, %v) = %v > %v; factor must not grow with the horizon", days, cram, cur, prev)
			}
			prev = cur
		}
	}
}
