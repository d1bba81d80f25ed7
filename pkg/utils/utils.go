package utils

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// FormatElapsed renders a duration in the largest fitting unit, rounded down:
// "850ms", "4.2s", "12m", "3h".
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", float64(d.Milliseconds()/100)/10)
	case d < time.Hour:
		return fmt.Sprintf("%dm", int64(d/time.Minute))
	default:
		return fmt.Sprintf("%dh", int64(d/time.Hour))
	}
}

// Truncate shortens s to at most maxLen bytes, marking the cut with "...".
// The cut never splits a UTF-8 sequence.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return Clip(s, maxLen)
	}
	return Clip(s, maxLen-3) + "..."
}

// Clip returns the longest prefix of s that fits in n bytes and ends on a rune boundary.
func Clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
