package ledger

import "github.com/toolstack/overtimeit/internal/entry"

// Totals aggregates a filtered set of entries against the expected
// standard day.
type Totals struct {
	TotalWork  int // sum of stored work minutes
	TotalBreak int // sum of break minutes
	DaysLogged int // distinct dates; several entries on one date count once
	Expected   int // DaysLogged * StandardDayMins
	Balance    int // TotalWork - Expected, signed
	Overtime   int // max(0, Balance)
}

// ComputeTotals reduces the given entries to their totals. A shortfall
// shows as a negative balance but never as negative overtime.
func ComputeTotals(entries []entry.Entry, settings Settings) Totals {
	t := Totals{}
	days := make(map[string]struct{})

	for _, e := range entries {
		t.TotalWork += e.WorkMins
		t.TotalBreak += e.BreakMins
		days[e.Date] = struct{}{}
	}

	t.DaysLogged = len(days)
	t.Expected = t.DaysLogged * settings.StandardDayMins
	t.Balance = t.TotalWork - t.Expected
	if t.Balance > 0 {
		t.Overtime = t.Balance
	}
	return t
}

// FilteredTotals computes the totals of the current filtered view.
func (l *Ledger) FilteredTotals() Totals {
	return ComputeTotals(l.Filtered(), l.Settings)
}
