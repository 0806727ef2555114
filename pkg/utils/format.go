// Package utils provides common utility functions for riskcore.
package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatUSD formats a number as US dollars ($1,234,567.89) with
// thousands grouping.
func FormatUSD(amount float64) string {
	negative := amount < 0
	amount = math.Abs(amount)

	intPart := int64(amount)
	decPart := amount - float64(intPart)

	formatted := formatGroupedNumber(intPart)

	if decPart > 0 {
		decStr := fmt.Sprintf("%.2f", decPart)
		formatted += decStr[1:] // skip the leading "0"
	} else {
		formatted += ".00"
	}

	if negative {
		return "-$" + formatted
	}
	return "$" + formatted
}

// FormatUSDCompact formats a number in compact notation.
// e.g., 1927345 → "$1.93M", 3e12 → "$3T"
func FormatUSDCompact(amount float64) string {
	negative := amount < 0
	amount = math.Abs(amount)

	prefix := "$"
	if negative {
		prefix = "-$"
	}

	switch {
	case amount >= 1e12:
		return fmt.Sprintf("%s%sT", prefix, formatWithDecimals(amount/1e12))
	case amount >= 1e9:
		return fmt.Sprintf("%s%sB", prefix, formatWithDecimals(amount/1e9))
	case amount >= 1e6:
		return fmt.Sprintf("%s%sM", prefix, formatWithDecimals(amount/1e6))
	case amount >= 1e3:
		return fmt.Sprintf("%s%sK", prefix, formatWithDecimals(amount/1e3))
	default:
		return fmt.Sprintf("%s%.2f", prefix, amount)
	}
}

// FormatPct formats a percentage value with sign and suffix.
// e.g., 2.45 → "+2.45%", -1.23 → "-1.23%"
func FormatPct(pct float64) string {
	if pct >= 0 {
		return fmt.Sprintf("+%.2f%%", pct)
	}
	return fmt.Sprintf("%.2f%%", pct)
}

// FormatVolume formats share volume in human-readable notation.
// e.g., 1500000 → "1.50M", 25000000000 → "25.00B"
func FormatVolume(volume int64) string {
	v := float64(volume)
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2fK", v/1e3)
	default:
		return fmt.Sprintf("%d", volume)
	}
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round3 rounds to 3 decimal places.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// formatGroupedNumber formats an integer with western grouping (3s).
func formatGroupedNumber(n int64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}

	s := fmt.Sprintf("%d", n)

	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)

	return strings.Join(groups, ",")
}

// formatWithDecimals formats a number with up to 2 decimal places,
// removing trailing zeros.
func formatWithDecimals(n float64) string {
	s := fmt.Sprintf("%.2f", n)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}
