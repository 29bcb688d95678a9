package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/toolstack/overtimeit/internal/cli"
	"github.com/toolstack/overtimeit/internal/ledger"
)

var rootCmd = &cobra.Command{
	Use:   "overtimeit",
	Short: "A work-time ledger with overtime tracking",
	Long: `overtimeit logs work-time entries (date, start/end time, break minutes),
computes worked minutes, aggregates totals against an expected standard day
and produces a printable report.

Usage:
  overtimeit                                  List the current filtered view
  overtimeit add --date 2024-05-02 --start 09:00 --end 17:30 --break 30
  overtimeit edit <index> --end 18:00         Edit an entry
  overtimeit delete <index>                   Delete an entry (with confirmation)
  overtimeit duplicate <index>                Clone an entry
  overtimeit lock 2024-05                     Toggle a month's lock
  overtimeit month 2024-06                    Filter by month
  overtimeit range 2024-05-01 2024-05-07      Filter by date range
  overtimeit report                           Printable report sheet
  overtimeit export json > backup.json        Export everything
  overtimeit import backup.json               Replace state from an export

Times are 24-hour HH:MM; an end before the start means the shift crossed
midnight.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listEntries()
	},
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"overtimeit version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// listEntries renders the filtered view with 1-based indexes and a totals
// footer. The indexes shown here are the ones edit/delete/duplicate accept.
func listEntries() {
	s, ok := openSession()
	if !ok {
		return
	}
	defer s.close()

	l := s.svc.Ledger()
	entries := l.Filtered()
	totals := ledger.ComputeTotals(entries, l.Settings)

	header := fmt.Sprintf("Period: %s", l.PeriodLabel())
	if !l.UI.UseRange && l.IsMonthLocked(l.UI.ActiveMonth) {
		header += " (locked)"
	}
	fmt.Fprintln(deps.Stdout, header)

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No entries.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(deps.Stdout)
	t.AppendHeader(table.Row{"#", "Date", "Time", "Break", "Worked", "Note"})
	for i, e := range entries {
		t.AppendRow(table.Row{
			i + 1,
			e.Date,
			cli.FormatClockRange(e),
			cli.FormatMinutes(e.BreakMins),
			cli.FormatMinutes(e.WorkMins),
			e.Note,
		})
	}
	t.AppendFooter(table.Row{
		"", fmt.Sprintf("%d day(s)", totals.DaysLogged), "",
		cli.FormatMinutes(totals.TotalBreak),
		cli.FormatMinutes(totals.TotalWork),
		"balance " + cli.FormatSignedMinutes(totals.Balance),
	})
	t.Render()
}
