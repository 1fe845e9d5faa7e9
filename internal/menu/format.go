package menu

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

var nonAlnumRuns = regexp.MustCompile(`[^a-z0-9]+`)

// FormatPrice renders v as a dollar amount with two decimals.
// Non-finite values render as an empty string rather than "$NaN".
func FormatPrice(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return fmt.Sprintf("$%.2f", v)
}

// Slug builds a stable fragment identifier from a category or
// subcategory name: "Drinks & Snacks" -> "drinks-and-snacks".
// Idempotent, so already-slugged input passes through unchanged.
func Slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "&", "and")
	s = nonAlnumRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
