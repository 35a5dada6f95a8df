package model

import (
	"strconv"
	"strings"
)

// Unit is a display mass unit. The engine works in canonical grams;
// units only matter at the edges.
type Unit string

const (
	UnitGram  Unit = "g"
	UnitOunce Unit = "oz"
	UnitPound Unit = "lb"
)

// Gram-equivalent factors per display unit.
const (
	gramsPerOunce = 28.3495
	gramsPerPound = 453.592
)

// Factor returns the number of grams in one of this unit. Unknown
// units behave as grams so a stale snapshot can never break math.
func (u Unit) Factor() float64 {
	switch u {
	case UnitOunce:
		return gramsPerOunce
	case UnitPound:
		return gramsPerPound
	default:
		return 1
	}
}

// ToGrams converts a display value to canonical grams.
func ToGrams(v float64, u Unit) float64 {
	return v * u.Factor()
}

// FromGrams converts canonical grams to a display value.
func FromGrams(g float64, u Unit) float64 {
	return g / u.Factor()
}

// ConvertAmount re-expresses a display value from one unit to another
// so that the canonical grams are unchanged. It does not touch the
// ledger; re-running reconciliation is the caller's choice.
func ConvertAmount(v float64, from, to Unit) float64 {
	return v * from.Factor() / to.Factor()
}

// ParseAmount turns user numeric text into a non-negative value.
// Malformed or negative input clamps to 0; the engine never raises on
// bad numeric text.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
