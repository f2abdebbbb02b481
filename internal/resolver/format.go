package resolver

import (
	"strconv"
	"strings"
)

// FormatNumber renders a numeric value with the given decimal-place count
// and separator. Trailing zeros after the separator are stripped, a bare
// separator is dropped, and there is always at least one digit before it,
// so 12.50000 at five places renders as "12,5" with a comma separator and
// 0.00000 as "0".
func FormatNumber(v float64, places int, decimal byte) string {
	if places < 0 {
		places = 0
	}

	s := strconv.FormatFloat(v, 'f', places, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}

	// values rounding to zero must not keep a sign
	if s == "-0" {
		s = "0"
	}

	if decimal != '.' {
		s = strings.ReplaceAll(s, ".", string(decimal))
	}
	return s
}
