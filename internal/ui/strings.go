package ui

import (
	"strings"

	"github.com/five82/threds/internal/threds"
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

// excerpt collapses whitespace to single spaces and truncates.
func excerpt(value string, limit int) string {
	return truncate(strings.Join(strings.Fields(value), " "), limit)
}

// quoteRef renders a post reference the way posts cite each other.
func quoteRef(id threds.ID) string {
	return ">>" + id.Short()
}

// formatStamp renders a full local date and time.
func formatStamp(ts threds.Timestamp) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Local().Format("2006-01-02 15:04")
}

// formatClock renders hours and minutes only.
func formatClock(ts threds.Timestamp) string {
	if ts.IsZero() {
		return "--:--"
	}
	return ts.Local().Format("15:04")
}

// clamp bounds v to [lo, hi]; hi below lo yields lo.
func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
