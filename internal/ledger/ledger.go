// Package ledger implements the aggregate root of the application: the
// entry collection, per-month lock flags, settings and the persisted UI
// filter state, together with every state transition the presentation layer
// can issue.
package ledger

import (
	"errors"
	"slices"

	"github.com/toolstack/overtimeit/internal/entry"
)

const (
	// AppID identifies this module's records in the shared store.
	AppID = "overtimeit"
	// SchemaVersion is the persisted record version.
	SchemaVersion = "v1"

	// DefaultStandardDayMins is the expected minutes per logged day.
	DefaultStandardDayMins = 480
)

// Common errors for ledger state transitions
var (
	ErrDraftIncomplete = errors.New("date, start and end are required")
	ErrInvalidDate     = errors.New("date must be YYYY-MM-DD")
	ErrInvalidMonth    = errors.New("month must be YYYY-MM")
	ErrMonthLocked     = errors.New("month is locked")
	ErrEntryNotFound   = errors.New("entry not found")
)

// Meta describes the persisted record itself.
type Meta struct {
	AppID     string `json:"appId"`
	Version   string `json:"version"`
	UpdatedAt string `json:"updatedAt"`
}

// Settings holds the totals configuration.
type Settings struct {
	// StandardDayMins is the expected minutes per logged day.
	StandardDayMins int `json:"standardDayMins"`
	// RoundingStep rounds computed work minutes to this step; 0, 5 or 15.
	RoundingStep int `json:"roundingStep"`
}

// UIState is the persisted filter state. Not authoritative data, but kept
// alongside the entries so the view survives across sessions.
type UIState struct {
	ActiveMonth string `json:"activeMonth"`
	UseRange    bool   `json:"useRange"`
	FilterFrom  string `json:"filterFrom"`
	FilterTo    string `json:"filterTo"`
}

// Ledger is the full persisted state: entries, settings, locked months and
// UI filters. It is owned by the running session; every mutation goes
// through one of its methods and is persisted by the caller afterwards.
type Ledger struct {
	Meta         Meta          `json:"meta"`
	Settings     Settings      `json:"settings"`
	UI           UIState       `json:"ui"`
	LockedMonths []string      `json:"lockedMonths"`
	Entries      []entry.Entry `json:"entries"`
}

// Default returns a fresh ledger scoped to the given active month.
func Default(activeMonth string) Ledger {
	return Ledger{
		Meta: Meta{AppID: AppID, Version: SchemaVersion},
		Settings: Settings{
			StandardDayMins: DefaultStandardDayMins,
			RoundingStep:    0,
		},
		UI:           UIState{ActiveMonth: activeMonth},
		LockedMonths: []string{},
		Entries:      []entry.Entry{},
	}
}

// validRoundingStep reports whether step is one of the supported values.
func validRoundingStep(step int) bool {
	return step == 0 || step == 5 || step == 15
}

// Normalize coerces a loaded ledger to the documented schema: defaults for
// bad settings, malformed entries dropped or fixed field by field, lock keys
// deduplicated and restricted to valid month keys. Corruption is recovered
// from, never surfaced.
func (l *Ledger) Normalize(currentMonth string) {
	l.Meta.AppID = AppID
	l.Meta.Version = SchemaVersion

	if l.Settings.StandardDayMins <= 0 {
		l.Settings.StandardDayMins = DefaultStandardDayMins
	}
	if !validRoundingStep(l.Settings.RoundingStep) {
		l.Settings.RoundingStep = 0
	}

	if !entry.ValidMonth(l.UI.ActiveMonth) {
		l.UI.ActiveMonth = currentMonth
	}
	if !entry.ValidDate(l.UI.FilterFrom) {
		l.UI.FilterFrom = ""
	}
	if !entry.ValidDate(l.UI.FilterTo) {
		l.UI.FilterTo = ""
	}
	if l.UI.UseRange && (l.UI.FilterFrom == "" || l.UI.FilterTo == "") {
		l.UI.UseRange = false
	}

	months := make([]string, 0, len(l.LockedMonths))
	for _, m := range l.LockedMonths {
		if entry.ValidMonth(m) && !slices.Contains(months, m) {
			months = append(months, m)
		}
	}
	slices.Sort(months)
	l.LockedMonths = months

	kept := make([]entry.Entry, 0, len(l.Entries))
	for _, e := range l.Entries {
		if ne, ok := e.Normalize(); ok {
			kept = append(kept, ne)
		}
	}
	l.Entries = kept
}

// IsMonthLocked reports whether the YYYY-MM month key is locked.
func (l *Ledger) IsMonthLocked(month string) bool {
	return slices.Contains(l.LockedMonths, month)
}

// ToggleLockMonth flips the lock flag for a month and returns the new
// locked state. Locking never touches the entries themselves; it only
// blocks future mutations targeting that month.
func (l *Ledger) ToggleLockMonth(month string) (locked bool, err error) {
	if !entry.ValidMonth(month) {
		return false, ErrInvalidMonth
	}
	if i := slices.Index(l.LockedMonths, month); i >= 0 {
		l.LockedMonths = slices.Delete(l.LockedMonths, i, i+1)
		return false, nil
	}
	l.LockedMonths = append(l.LockedMonths, month)
	slices.Sort(l.LockedMonths)
	return true, nil
}

// AddEntry validates the draft, computes its work minutes and prepends the
// new entry. The target month must not be locked.
func (l *Ledger) AddEntry(d entry.Draft) (entry.Entry, error) {
	if !d.Complete() {
		return entry.Entry{}, ErrDraftIncomplete
	}
	if !entry.ValidDate(d.Date) {
		return entry.Entry{}, ErrInvalidDate
	}
	if l.IsMonthLocked(entry.MonthOf(d.Date)) {
		return entry.Entry{}, ErrMonthLocked
	}

	e := entry.New(d, l.Settings.RoundingStep)
	l.Entries = append([]entry.Entry{e}, l.Entries...)
	return e, nil
}

// find returns the index of the entry with the given id, or -1.
func (l *Ledger) find(id string) int {
	return slices.IndexFunc(l.Entries, func(e entry.Entry) bool { return e.ID == id })
}

// Entry returns the entry with the given id.
func (l *Ledger) Entry(id string) (entry.Entry, error) {
	i := l.find(id)
	if i < 0 {
		return entry.Entry{}, ErrEntryNotFound
	}
	return l.Entries[i], nil
}

// UpdateEntry applies the draft to an existing entry, recomputing its work
// minutes and stamping updatedAt. Rejected when the entry's current month
// or the draft's target month is locked.
func (l *Ledger) UpdateEntry(id string, d entry.Draft) (entry.Entry, error) {
	i := l.find(id)
	if i < 0 {
		return entry.Entry{}, ErrEntryNotFound
	}
	if !d.Complete() {
		return entry.Entry{}, ErrDraftIncomplete
	}
	if !entry.ValidDate(d.Date) {
		return entry.Entry{}, ErrInvalidDate
	}
	if l.IsMonthLocked(l.Entries[i].Month()) || l.IsMonthLocked(entry.MonthOf(d.Date)) {
		return entry.Entry{}, ErrMonthLocked
	}

	l.Entries[i] = l.Entries[i].Apply(d, l.Settings.RoundingStep)
	return l.Entries[i], nil
}

// DeleteEntry removes an entry by id. Rejected when its month is locked.
// Confirmation of this destructive action is the caller's responsibility.
func (l *Ledger) DeleteEntry(id string) (entry.Entry, error) {
	i := l.find(id)
	if i < 0 {
		return entry.Entry{}, ErrEntryNotFound
	}
	if l.IsMonthLocked(l.Entries[i].Month()) {
		return entry.Entry{}, ErrMonthLocked
	}

	e := l.Entries[i]
	l.Entries = slices.Delete(l.Entries, i, i+1)
	return e, nil
}

// DuplicateEntry clones an entry under a new id with a fresh createdAt and
// cleared updatedAt. Rejected when the source entry's month is locked.
func (l *Ledger) DuplicateEntry(id string) (entry.Entry, error) {
	i := l.find(id)
	if i < 0 {
		return entry.Entry{}, ErrEntryNotFound
	}
	if l.IsMonthLocked(l.Entries[i].Month()) {
		return entry.Entry{}, ErrMonthLocked
	}

	dup := l.Entries[i].Duplicate()
	l.Entries = append([]entry.Entry{dup}, l.Entries...)
	return dup, nil
}

// SetActiveMonth switches the persisted filter to month mode.
func (l *Ledger) SetActiveMonth(month string) error {
	if !entry.ValidMonth(month) {
		return ErrInvalidMonth
	}
	l.UI.ActiveMonth = month
	l.UI.UseRange = false
	return nil
}

// SetRange switches the persisted filter to range mode, from and to
// inclusive.
func (l *Ledger) SetRange(from, to string) error {
	if !entry.ValidDate(from) || !entry.ValidDate(to) {
		return ErrInvalidDate
	}
	l.UI.UseRange = true
	l.UI.FilterFrom = from
	l.UI.FilterTo = to
	return nil
}

// ClearRange switches the persisted filter back to month mode.
func (l *Ledger) ClearRange() {
	l.UI.UseRange = false
}
