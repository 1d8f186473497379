// Package calculator estimates Miami -> Panama shipping cost from a package weight.
package calculator

import (
	"fleet-dashboard-service/formatting"
	"fmt"
	"strings"
)

type Unit string

const (
	Pound    Unit = "lb"
	Kilogram Unit = "kg"
)

const (
	PricePerPound = 3.50
	PricePerKilo  = 7.70
)

// ParseUnit accepts "lb" or "kg" in any case.
func ParseUnit(s string) (Unit, error) {
	switch Unit(strings.ToLower(strings.TrimSpace(s))) {
	case Pound:
		return Pound, nil
	case Kilogram:
		return Kilogram, nil
	}
	return "", fmt.Errorf("unknown weight unit %q", s)
}

func (u Unit) Rate() float64 {
	if u == Kilogram {
		return PricePerKilo
	}
	return PricePerPound
}

// Estimate prices a weight typed through the weight mask. ok is false when the
// weight is empty or zero.
func Estimate(weightDisplay string, unit Unit) (price float64, ok bool) {
	weight, err := formatting.Weight.Value(weightDisplay)
	if err != nil || weight <= 0 {
		return 0, false
	}
	return weight * unit.Rate(), true
}

func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}
