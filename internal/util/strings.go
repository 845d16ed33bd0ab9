// Package util provides shared utility functions used across the codebase.
package util

import (
	"strings"
	"time"
)

// Truncate caps a string at maxLen runes, appending "..." when the original
// exceeds the cap. Strings at or under the cap are returned unchanged.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return "..."
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}

// JoinTags renders a tag list as a comma-joined string, or "None" when the
// list is empty.
func JoinTags(tags []string) string {
	if len(tags) == 0 {
		return "None"
	}
	return strings.Join(tags, ", ")
}

// FormatTimestamp formats a timestamp for display. Zero times render as "-".
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
