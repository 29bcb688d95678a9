// Package report renders the print-ready time sheet: organization,
// preparer, period, totals and the entry table. The totals are the
// aggregator's numbers; nothing is recomputed here.
package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/toolstack/overtimeit/internal/cli"
	"github.com/toolstack/overtimeit/internal/entry"
	"github.com/toolstack/overtimeit/internal/ledger"
	"github.com/toolstack/overtimeit/internal/profile"
)

// Render writes the report sheet for the given filtered view.
func Render(w io.Writer, p profile.Profile, period string, totals ledger.Totals, entries []entry.Entry) {
	fmt.Fprintf(w, "Overtime Report: %s\n", p.Org)
	if p.User != "" {
		fmt.Fprintf(w, "Prepared by: %s\n", p.User)
	}
	fmt.Fprintf(w, "Period: %s\n\n", period)

	renderTotals(w, totals)
	fmt.Fprintln(w)
	renderEntries(w, entries)
}

func renderTotals(w io.Writer, totals ledger.Totals) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Days", "Worked", "Breaks", "Expected", "Balance", "Overtime"})
	t.AppendRow(table.Row{
		totals.DaysLogged,
		cli.FormatMinutes(totals.TotalWork),
		cli.FormatMinutes(totals.TotalBreak),
		cli.FormatMinutes(totals.Expected),
		cli.FormatSignedMinutes(totals.Balance),
		cli.FormatMinutes(totals.Overtime),
	})
	t.Render()
}

func renderEntries(w io.Writer, entries []entry.Entry) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Date", "Time", "Break", "Worked", "Note"})
	for _, e := range entries {
		t.AppendRow(table.Row{
			e.Date,
			cli.FormatClockRange(e),
			cli.FormatMinutes(e.BreakMins),
			cli.FormatMinutes(e.WorkMins),
			e.Note,
		})
	}
	t.Render()
}
