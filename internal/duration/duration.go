// Package duration provides parsing for human-readable duration strings.
//
// Users specify durations as "12h" (hours), "7d" (days), or "4w" (weeks)
// rather than Go's time.Duration format. This matches common CLI conventions
// and is more intuitive for runs --since and similar windows.
package duration

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parse parses duration strings in the format: Nh (hours), Nd (days),
// Nw (weeks). Examples: "12h" = 12 hours, "7d" = 7 days, "4w" = 4 weeks.
func Parse(s string) (time.Duration, error) {
	unit := time.Duration(0)
	num := ""
	switch {
	case strings.HasSuffix(s, "h"):
		unit, num = time.Hour, strings.TrimSuffix(s, "h")
	case strings.HasSuffix(s, "d"):
		unit, num = 24*time.Hour, strings.TrimSuffix(s, "d")
	case strings.HasSuffix(s, "w"):
		unit, num = 7*24*time.Hour, strings.TrimSuffix(s, "w")
	default:
		return 0, fmt.Errorf("invalid duration format: %s (use 12h, 7d, or 4w)", s)
	}

	n, err := strconv.Atoi(num)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid duration format: %s (use 12h, 7d, or 4w)", s)
	}
	return time.Duration(n) * unit, nil
}
