package ledger

import (
	"sort"

	"github.com/toolstack/overtimeit/internal/entry"
)

// SortEntries orders entries in descending (date, start) order: the most
// recent date and latest start time first. The comparison is lexical on the
// composite key, so entries without a start time sort after those with one
// on the same day.
func SortEntries(entries []entry.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SortKey() > entries[j].SortKey()
	})
}

// Filtered returns the entries selected by the persisted filter state,
// sorted for presentation. Month mode matches the entry's year-month
// against the active month; range mode keeps entries with
// from <= date <= to, an inclusive lexical comparison that is correct for
// ISO dates.
func (l *Ledger) Filtered() []entry.Entry {
	out := make([]entry.Entry, 0, len(l.Entries))
	for _, e := range l.Entries {
		if l.matches(e) {
			out = append(out, e)
		}
	}
	SortEntries(out)
	return out
}

func (l *Ledger) matches(e entry.Entry) bool {
	if l.UI.UseRange {
		return l.UI.FilterFrom <= e.Date && e.Date <= l.UI.FilterTo
	}
	return e.Month() == l.UI.ActiveMonth
}

// PeriodLabel describes the current filter for report headers and list
// output, e.g. "2024-05" or "2024-05-01 .. 2024-05-07".
func (l *Ledger) PeriodLabel() string {
	if l.UI.UseRange {
		return l.UI.FilterFrom + " .. " + l.UI.FilterTo
	}
	return l.UI.ActiveMonth
}
