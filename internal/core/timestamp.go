package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// NormalizeTimestamp converts heterogeneous date text to a canonical RFC3339
// UTC instant. Exports write dates in several shapes ("02 Jan 2024",
// "2024-01-02 10:00:00 UTC", ISO with offsets), so parsing is delegated to
// dateparse with UTC as the location for zone-less input.
//
// Empty input returns ("", nil): no date is not an error. Non-empty input
// that fails to parse returns ("", err) so the caller can record a warning
// while keeping the row.
func NormalizeTimestamp(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", nil
	}

	// Exports commonly suffix a literal " UTC" that layout parsers reject.
	if len(s) > 4 && strings.EqualFold(s[len(s)-4:], " UTC") {
		s = strings.TrimSpace(s[:len(s)-4])
	}

	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return "", fmt.Errorf("unparseable date %q: %w", raw, err)
	}

	return t.UTC().Format(time.RFC3339), nil
}

// dayBucket returns the UTC calendar-date portion of an RFC3339 instant,
// used as a coarse fallback grouping key. An empty or malformed instant
// yields the literal token "unknown".
func dayBucket(instant string) string {
	if len(instant) < 10 {
		return "unknown"
	}
	return instant[:10]
}
