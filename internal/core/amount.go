// Package core holds the domain types and the pure transforms the
// dashboard derives its views from: amount parsing, category
// aggregation, date-range filtering and category normalization.
package core

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount parses a wire amount string for display or aggregation.
// The second return is false unless the value is a finite number > 0;
// zero, negative, infinite and malformed amounts are all excluded the
// same way, without error.
//
// Amounts are decimal-exact strings on the wire. Parsing to float64
// reintroduces rounding, which is acceptable only because every
// consumer of this function produces display aggregates, not balances.
func ParseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}
