package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatPriceLevel renders a price tier as dollar signs. Tier 0 renders as "$".
func FormatPriceLevel(level *int) string {
	if level == nil {
		return ""
	}

	return strings.Repeat("$", max(*level, 1))
}

// FormatRating renders a rating with one decimal.
func FormatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', 1, 64)
}

// FormatReviewCount abbreviates counts of a thousand or more, e.g. 1.2k.
func FormatReviewCount(count int) string {
	if count >= 1000 {
		return strconv.FormatFloat(float64(count)/1000, 'f', 1, 64) + "k"
	}

	return strconv.Itoa(count)
}

// FormatDistance renders meters as "850 m" or "1.3 km". A nil distance renders empty.
func FormatDistance(meters *float64) string {
	if meters == nil {
		return ""
	}
	if *meters < 1000 {
		return fmt.Sprintf("%.0f m", *meters)
	}

	return fmt.Sprintf("%.1f km", *meters/1000)
}

// TruncateText shortens text to maxLength runes, ending with "...".
func TruncateText(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	if maxLength <= 3 {
		return string(runes[:maxLength])
	}

	return string(runes[:maxLength-3]) + "..."
}
