package ui

import (
	"fmt"
	"math"
	"strings"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// titleCase upper-cases the first letter of every word.
func titleCase(value string) string {
	parts := strings.Fields(value)
	for i, part := range parts {
		r := []rune(part)
		parts[i] = strings.ToUpper(string(r[:1])) + string(r[1:])
	}
	return strings.Join(parts, " ")
}

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(r))
}

// stars renders a rating as five filled or empty stars. Ratings are rounded
// to the nearest whole star.
func stars(rating float64) string {
	filled := int(math.Round(math.Max(0, math.Min(5, rating))))
	return strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
}

// formatRating renders "4.3" style ratings with one decimal.
func formatRating(rating float64) string {
	return fmt.Sprintf("%.1f", rating)
}

// ternary returns a if cond is true, otherwise b.
func ternary(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
