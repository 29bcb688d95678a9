package entry

import "time"

// ValidDate reports whether s is a calendar date in ISO YYYY-MM-DD form.
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ValidMonth reports whether s is a month key in YYYY-MM form.
func ValidMonth(s string) bool {
	_, err := time.Parse("2006-01", s)
	return err == nil
}

// MonthOf returns the YYYY-MM month key of an ISO date string.
func MonthOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// ShiftMonth returns the month key delta months after month. An unparsable
// month key is returned unchanged.
func ShiftMonth(month string, delta int) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.AddDate(0, delta, 0).Format("2006-01")
}

// Today returns the current date as an ISO YYYY-MM-DD string.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// CurrentMonth returns the current month as a YYYY-MM key.
func CurrentMonth() string {
	return time.Now().Format("2006-01")
}
