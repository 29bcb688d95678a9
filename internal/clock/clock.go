// Package clock implements the work-time arithmetic: elapsed minutes between
// two wall-clock times with overnight support, rounding to a step size, and
// the work-minutes formula shared by draft previews and saved entries.
package clock

import (
	"strconv"
	"strings"
)

const (
	// MinutesPerDay is the number of minutes in a calendar day.
	MinutesPerDay = 24 * 60
	// MaxWorkMinutes is the upper clamp for a single entry's work and break minutes.
	MaxWorkMinutes = MinutesPerDay
)

// parseClock parses an HH:MM string into total minutes since midnight.
// Returns ok=false for empty or unparsable input.
func parseClock(s string) (minutes int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}

// ValidClock reports whether s is a parsable 24-hour HH:MM time.
// An empty string is not valid; callers treat empty as "not provided".
func ValidClock(s string) bool {
	m, ok := parseClock(s)
	return ok && m >= 0 && m < MinutesPerDay
}

// MinutesBetween returns the elapsed minutes from start to end, both HH:MM.
// If either side is empty or unparsable the result is 0; a bad clock string
// is a defined fallback, not an error. When end is earlier than start the
// shift is treated as crossing midnight, so 23:00 to 01:00 yields 120.
// The result is never negative.
func MinutesBetween(start, end string) int {
	if start == "" || end == "" {
		return 0
	}
	s, ok := parseClock(start)
	if !ok {
		return 0
	}
	e, ok := parseClock(end)
	if !ok {
		return 0
	}

	diff := e - s
	if e < s {
		// Overnight shift
		diff = (MinutesPerDay - s) + e
	}
	if diff < 0 {
		return 0
	}
	return diff
}

// RoundToStep rounds minutes to the nearest multiple of step using
// round-half-up arithmetic. A step of 0 means no rounding.
func RoundToStep(minutes, step int) int {
	if step <= 0 {
		return minutes
	}
	return ((minutes + step/2) / step) * step
}

// ClampBreak clamps break minutes to the allowed [0, MaxWorkMinutes] range.
func ClampBreak(breakMins int) int {
	if breakMins < 0 {
		return 0
	}
	if breakMins > MaxWorkMinutes {
		return MaxWorkMinutes
	}
	return breakMins
}

// WorkMinutes computes the work minutes stored on an entry: gross elapsed
// time minus the break, floored at 0, rounded to the configured step, then
// clamped to a single day. The same formula backs the live draft preview and
// the committed entry, so the preview always matches what gets persisted.
func WorkMinutes(start, end string, breakMins, roundingStep int) int {
	net := MinutesBetween(start, end) - ClampBreak(breakMins)
	if net < 0 {
		net = 0
	}
	work := RoundToStep(net, roundingStep)
	if work < 0 {
		return 0
	}
	if work > MaxWorkMinutes {
		return MaxWorkMinutes
	}
	return work
}
