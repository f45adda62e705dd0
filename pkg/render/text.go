// Package render builds the markdown fragments substituted into the README
// template: one builder per section, plus the text utilities and lookup
// tables they share.
//
// Every builder returns a non-empty fragment. When its underlying collection
// is empty after filtering, a builder renders its empty-state string instead
// of an empty fragment, so the substituted document stays well-formed.
package render

import (
	"fmt"
	"time"
)

// ellipsis marks truncated free-text fields.
const ellipsis = "…"

// Truncate shortens s to at most n runes, appending an ellipsis marker when
// anything was cut. The result never exceeds n runes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n == 1 {
		return ellipsis
	}
	return string(runes[:n-1]) + ellipsis
}

// TimeAgo renders the distance between t and now as "3 days ago" style
// text. Future timestamps and sub-minute distances render as "just now".
func TimeAgo(t, now time.Time) string {
	diff := now.Sub(t)

	days := int(diff.Hours() / 24)
	switch {
	case days > 365:
		return plural(days/365, "year")
	case days > 30:
		return plural(days/30, "month")
	case days > 0:
		return plural(days, "day")
	}

	if hours := int(diff.Hours()); hours > 0 {
		return plural(hours, "hour")
	}
	if minutes := int(diff.Minutes()); minutes > 0 {
		return plural(minutes, "minute")
	}
	return "just now"
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// orDefault returns s unless it is empty, in which case def.
func orDefault(s, def string) string {
	if s != "" {
		return s
	}
	return def
}
