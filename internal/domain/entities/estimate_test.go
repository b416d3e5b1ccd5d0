package entities

import "testing"

func TestEstimate_ComputeFinalTotal(t *testing.T) {
	cases := []struct {
		name     string
		estimate Estimate
		want     float64
	}{
		{"no margin or discount", Estimate{GrandTotal: 260}, 260},
		{"margin only", Estimate{GrandTotal: 200, MarginPercent: 50}, 300},
		{"discount only", Estimate{GrandTotal: 200, DiscountPercent: 25}, 150},
		{"margin then discount", Estimate{GrandTotal: 100, MarginPercent: 50, DiscountPercent: 50}, 75},
		{"zero grand total", Estimate{MarginPercent: 50, DiscountPercent: 25}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.estimate.ComputeFinalTotal(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
