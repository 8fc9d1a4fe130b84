package domain

import (
	"strconv"
	"strings"
)

// ParsePrice converts a display price string like "$2,400" into a float.
// This is the single string→numeric conversion boundary for EstimatedPrice:
// everywhere else the price stays the string the model produced.
// Unparseable input yields 0 — the dashboard prefers a zero over an error for
// a single malformed document.
func ParsePrice(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}
