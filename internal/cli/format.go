// Package cli provides output formatting helpers shared by the CLI commands
// and the TUI.
package cli

import (
	"fmt"

	"github.com/toolstack/overtimeit/internal/entry"
)

// FormatMinutes formats minutes as "Xh YYm", e.g. 480 -> "8h 00m".
func FormatMinutes(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%dh %02dm", sign, minutes/60, minutes%60)
}

// FormatSignedMinutes formats a balance with an explicit sign, e.g. "+1h 00m".
func FormatSignedMinutes(minutes int) string {
	if minutes >= 0 {
		return "+" + FormatMinutes(minutes)
	}
	return FormatMinutes(minutes)
}

// FormatClockRange formats an entry's start/end pair, tolerating missing
// sides, e.g. "09:00-17:30" or "-".
func FormatClockRange(e entry.Entry) string {
	if e.Start == "" && e.End == "" {
		return "-"
	}
	return e.Start + "-" + e.End
}
