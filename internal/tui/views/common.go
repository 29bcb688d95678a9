package views

import (
	"fmt"
	"strings"

	"github.com/toolstack/overtimeit/internal/cli"
	"github.com/toolstack/overtimeit/internal/entry"
	"github.com/toolstack/overtimeit/internal/tui/ui"
)

// EntryRenderOptions configures how entries are rendered
type EntryRenderOptions struct {
	Width  int // Available width for rendering
	Cursor int // Currently selected entry index (-1 for none)
}

// RenderEntryList renders a list of entries with aligned columns:
// date, clock range, break, worked and note.
func RenderEntryList(entries []entry.Entry, styles ui.Styles, opts EntryRenderOptions) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	for i, e := range entries {
		style := styles.EntryNormal
		if i == opts.Cursor {
			style = styles.EntrySelected
		}

		note := e.Note
		// Leave room for the fixed-width columns
		maxNoteWidth := opts.Width - 40
		if maxNoteWidth < 16 {
			maxNoteWidth = 16
		}
		if len(note) > maxNoteWidth {
			note = note[:maxNoteWidth-1] + "…"
		}

		date := styles.EntryDate.Render(e.Date)
		timeCol := styles.EntryTime.Render(cli.FormatClockRange(e))
		breakCol := fmt.Sprintf("%7s", cli.FormatMinutes(e.BreakMins))
		worked := styles.EntryWorked.Render(cli.FormatMinutes(e.WorkMins))
		noteCol := styles.EntryNote.Render(note)

		line := fmt.Sprintf("%s %s %s %s  %s", date, timeCol, breakCol, worked, noteCol)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
