package calculator

import (
	"fleet-dashboard-service/formatting"
	"testing"
)

func TestEstimate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		raw  string
		unit Unit
		want string
	}{
		{"1000", Pound, "$35.00"},
		{"1000", Kilogram, "$77.00"},
		{"150075", Kilogram, "$1155.54"},
	}
	for _, tc := range cases {
		price, ok := Estimate(formatting.Weight.Format(tc.raw), tc.unit)
		if !ok {
			t.Fatalf("Estimate(%q, %s): no estimate", tc.raw, tc.unit)
		}
		if got := FormatPrice(price); got != tc.want {
			t.Errorf("Estimate(%q, %s): got %s, want %s", tc.raw, tc.unit, got, tc.want)
		}
	}
}

func TestEstimateRejectsEmptyWeight(t *testing.T) {
	t.Parallel()
	for _, display := range []string{"", "0.00", "abc"} {
		if _, ok := Estimate(display, Pound); ok {
			t.Errorf("Estimate(%q): expected no estimate", display)
		}
	}
}

func TestParseUnit(t *testing.T) {
	t.Parallel()
	if u, err := ParseUnit(" KG "); err != nil || u != Kilogram {
		t.Errorf("ParseUnit(KG): got (%q, %v), want (kg, nil)", u, err)
	}
	if u, err := ParseUnit("lb"); err != nil || u != Pound {
		t.Errorf("ParseUnit(lb): got (%q, %v), want (lb, nil)", u, err)
	}
	if _, err := ParseUnit("oz"); err == nil {
		t.Error("ParseUnit(oz): expected error")
	}
}
