package shared

import (
	"strconv"
	"strings"
)

// Amount parses a currency or day-count field, falling back to zero on
// anything non-numeric. Malformed form input is absorbed, not rejected;
// callers that need hard validation must check the raw string themselves.
func Amount(value string) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return parsed
}
