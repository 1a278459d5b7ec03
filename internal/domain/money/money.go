// Package money holds the shared financial primitives both engines agree on:
// display-time rounding, numeric coercion and the variance sign convention.
//
// Currency is carried as floating-point dollars end to end and rounded only
// at display/persistence boundaries, never between intermediate steps.
package money

import (
	"math"
	"strconv"
	"strings"
)

// RoundCents rounds v to the nearest cent. Display/reporting only; the
// engines keep full precision internally.
func RoundCents(v float64) float64 {
	return math.Round(Num(v)*100) / 100
}

// Num coerces v into a usable number: NaN and infinities become 0 so that
// downstream formulas never propagate non-numeric values.
func Num(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseNum coerces a free-form numeric field to dollars. Blank or malformed
// input resolves to 0, never an error: the engines are total functions over
// their declared input shape.
func ParseNum(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(strings.TrimPrefix(s, "$"), ",", ""))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return Num(v)
}

// Variance is the allowance settlement delta with the positive-equals-savings
// sign convention. Pending items (actualCost == 0) carry no variance.
//
//	variance > 0  under budget, increases the contingency fund
//	variance < 0  over budget, decreases the contingency fund
func Variance(contractPrice, actualCost float64) float64 {
	if Num(actualCost) <= 0 {
		return 0
	}
	return Num(contractPrice) - Num(actualCost)
}
