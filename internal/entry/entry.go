package entry

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/toolstack/overtimeit/internal/clock"
)

// Entry represents a single logged work period
type Entry struct {
	ID        string     `json:"id"`
	Date      string     `json:"date"`  // ISO calendar date, YYYY-MM-DD
	Start     string     `json:"start"` // HH:MM, may be empty
	End       string     `json:"end"`   // HH:MM, may be empty
	BreakMins int        `json:"breakMins"`
	WorkMins  int        `json:"workMins"` // stored at save time, not derived on read
	Note      string     `json:"note"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Month returns the entry's YYYY-MM month key, the partition key for
// locking and month-mode filtering.
func (e Entry) Month() string {
	return MonthOf(e.Date)
}

// SortKey returns the composite "date start" key used for presentation
// order. Entries are shown descending by this key, so the most recent date
// and latest start time come first; a missing start sorts as empty string.
func (e Entry) SortKey() string {
	return e.Date + " " + e.Start
}

// Draft holds the user-provided fields of an entry before it is committed.
// WorkMins is always derived from the draft itself at commit time.
type Draft struct {
	Date      string
	Start     string
	End       string
	BreakMins int
	Note      string
}

// Complete reports whether the draft has the fields required to commit:
// a date, a start time and an end time.
func (d Draft) Complete() bool {
	return d.Date != "" && d.Start != "" && d.End != ""
}

// New builds a committed entry from a draft: fresh id, fresh createdAt,
// break clamped, note trimmed, work minutes computed with the given
// rounding step.
func New(d Draft, roundingStep int) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Date:      d.Date,
		Start:     d.Start,
		End:       d.End,
		BreakMins: clock.ClampBreak(d.BreakMins),
		WorkMins:  clock.WorkMinutes(d.Start, d.End, d.BreakMins, roundingStep),
		Note:      strings.TrimSpace(d.Note),
		CreatedAt: time.Now(),
	}
}

// Apply returns a copy of e with the draft's fields applied, work minutes
// recomputed and updatedAt stamped. ID and createdAt never change.
func (e Entry) Apply(d Draft, roundingStep int) Entry {
	now := time.Now()
	e.Date = d.Date
	e.Start = d.Start
	e.End = d.End
	e.BreakMins = clock.ClampBreak(d.BreakMins)
	e.WorkMins = clock.WorkMinutes(d.Start, d.End, d.BreakMins, roundingStep)
	e.Note = strings.TrimSpace(d.Note)
	e.UpdatedAt = &now
	return e
}

// Duplicate returns a clone of e with a new id, a fresh createdAt and a
// cleared updatedAt.
func (e Entry) Duplicate() Entry {
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now()
	e.UpdatedAt = nil
	return e
}

// Normalize coerces a persisted entry field by field rather than rejecting
// it: break and work minutes are clamped to [0, 1440], unparsable clock
// strings are dropped to empty, and the note is trimmed. Returns false when
// the entry is unusable (no id or no valid date) and should be dropped.
func (e Entry) Normalize() (Entry, bool) {
	if e.ID == "" || !ValidDate(e.Date) {
		return Entry{}, false
	}
	if !clock.ValidClock(e.Start) {
		e.Start = ""
	}
	if !clock.ValidClock(e.End) {
		e.End = ""
	}
	e.BreakMins = clock.ClampBreak(e.BreakMins)
	if e.WorkMins < 0 {
		e.WorkMins = 0
	}
	if e.WorkMins > clock.MaxWorkMinutes {
		e.WorkMins = clock.MaxWorkMinutes
	}
	e.Note = strings.TrimSpace(e.Note)
	return e, true
}
