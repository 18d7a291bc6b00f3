package dom

import (
	"math"
	"strconv"
)

// ToPixelsString formats quantity as a CSS pixel length, e.g. "12px".
// The value is not validated.
func ToPixelsString(quantity float64) string {
	return formatNumber(quantity) + "px"
}

// formatNumber returns the shortest decimal representation of f.
// Non-finite values are spelled out as words.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		// Drops the sign of negative zero.
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
