package cli

import (
	"testing"

	"github.com/toolstack/overtimeit/internal/entry"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{0, "0h 00m"},
		{30, "0h 30m"},
		{60, "1h 00m"},
		{480, "8h 00m"},
		{485, "8h 05m"},
		{-90, "-1h 30m"},
	}

	for _, tt := range tests {
		if got := FormatMinutes(tt.minutes); got != tt.expected {
			t.Errorf("FormatMinutes(%d) = %q, expected %q", tt.minutes, got, tt.expected)
		}
	}
}

func TestFormatSignedMinutes(t *testing.T) {
	if got := FormatSignedMinutes(60); got != "+1h 00m" {
		t.Errorf("FormatSignedMinutes(60) = %q", got)
	}
	if got := FormatSignedMinutes(-440); got != "-7h 20m" {
		t.Errorf("FormatSignedMinutes(-440) = %q", got)
	}
	if got := FormatSignedMinutes(0); got != "+0h 00m" {
		t.Errorf("FormatSignedMinutes(0) = %q", got)
	}
}

func TestFormatClockRange(t *testing.T) {
	if got := FormatClockRange(entry.Entry{Start: "09:00", End: "17:30"}); got != "09:00-17:30" {
		t.Errorf("FormatClockRange() = %q", got)
	}
	if got := FormatClockRange(entry.Entry{}); got != "-" {
		t.Errorf("FormatClockRange() empty = %q", got)
	}
}
