// Package timeutil normalizes the wall-clock and weekday inputs the
// schedule accepts: HH:MM strings and day tokens in numeric, Turkish or
// English form.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// strictClock accepts validator-grade HH:MM: hour 0-23, minute 00-59,
// minute always two digits.
var strictClock = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)

// looseClock accepts import-grade input: "9", "9:0", "09:00". Out of range
// digits are clamped, not rejected.
var looseClock = regexp.MustCompile(`^(\d{1,2}):?(\d{0,2})$`)

// ParseClock parses a strict HH:MM string into minutes since midnight.
func ParseClock(text string) (int, bool) {
	m := strictClock.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	return h*60 + min, true
}

// NormalizeClock turns loosely formatted input into a canonical zero-padded
// HH:MM string, clamping the hour to [0,23] and the minute to [0,59]. It is
// the tolerant sibling of ParseClock used by the CSV import path.
func NormalizeClock(text string) (string, bool) {
	m := looseClock.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return "", false
	}
	h, _ := strconv.Atoi(m[1])
	min := 0
	if m[2] != "" {
		min, _ = strconv.Atoi(m[2])
	}
	return fmt.Sprintf("%02d:%02d", clamp(h, 0, 23), clamp(min, 0, 59)), true
}

// FormatClock renders minutes since midnight as zero-padded HH:MM, wrapping
// the value into the [0,1439] domain first.
func FormatClock(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ToMinutes converts an already canonical HH:MM string into minutes since
// midnight. Missing or malformed pieces count as zero; callers that need
// rejection use ParseClock.
func ToMinutes(hhmm string) int {
	parts := strings.SplitN(hhmm, ":", 2)
	h, _ := strconv.Atoi(parts[0])
	m := 0
	if len(parts) > 1 {
		m, _ = strconv.Atoi(parts[1])
	}
	return h*60 + m
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
