package domain

import (
	"fmt"
	"strings"
)

const ellipsis = "..."

// StripString limits s to limit characters. With addEllipsis set, a cut string ends in "..." and still fits
// the limit; limits below 4 cannot hold that and yield false.
func StripString(s string, limit int, addEllipsis bool) (string, bool) {
	if limit < 0 || (addEllipsis && limit < len(ellipsis)+1) {
		return "", false
	}

	runes := []rune(s)
	if len(runes) <= limit {
		return s, true
	}

	if !addEllipsis {
		return string(runes[:limit]), true
	}

	return string(runes[:limit-len(ellipsis)]) + ellipsis, true
}

// Pluralize appends "s" to unit unless n is exactly 1.
func Pluralize(unit string, n int64) string {
	if n == 1 {
		return unit
	}

	return unit + "s"
}

const (
	millisPerSecond = 1000
	secondsPerDay   = 24 * 60 * 60
)

// DurationText renders milliseconds as "1 day, 2 hours, 3 minutes, and 4 seconds", leaving out zero parts.
func DurationText(millis int64) string {
	if millis < 0 {
		millis = 0
	}

	total := millis / millisPerSecond

	parts := make([]string, 0, 4)
	for _, part := range []struct {
		value int64
		unit  string
	}{
		{total / secondsPerDay, "day"},
		{total / 3600 % 24, "hour"},
		{total / 60 % 60, "minute"},
		{total % 60, "second"},
	} {
		if part.value > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", part.value, Pluralize(part.unit, part.value)))
		}
	}

	switch len(parts) {
	case 0:
		return "0 seconds"
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + ", and " + parts[len(parts)-1]
	}
}
