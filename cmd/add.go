package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toolstack/overtimeit/internal/cli"
	"github.com/toolstack/overtimeit/internal/clock"
	"github.com/toolstack/overtimeit/internal/entry"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a new work-time entry",
	Long: `Log a new work-time entry. Date, start and end are required; the worked
minutes are computed from start/end minus the break, rounded to the
configured step, and stored on the entry.

An end time before the start time means the shift crossed midnight:
--start 23:00 --end 01:00 logs two hours.

Examples:
  overtimeit add --start 09:00 --end 17:30 --break 30
  overtimeit add --date 2024-05-02 --start 22:00 --end 01:00 --note "late run"
  overtimeit add --start 09:00 --end 17:00 --preview`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		addEntry(cmd)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().String("date", "", "Entry date (YYYY-MM-DD, default today)")
	addCmd.Flags().String("start", "", "Start time (HH:MM)")
	addCmd.Flags().String("end", "", "End time (HH:MM)")
	addCmd.Flags().Int("break", 0, "Break minutes")
	addCmd.Flags().String("note", "", "Free-text note")
	addCmd.Flags().Bool("preview", false, "Show the computed work time without saving")
}

func addEntry(cmd *cobra.Command) {
	date, _ := cmd.Flags().GetString("date")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	breakMins, _ := cmd.Flags().GetInt("break")
	note, _ := cmd.Flags().GetString("note")
	preview, _ := cmd.Flags().GetBool("preview")

	if date == "" {
		date = entry.Today()
	}

	s, ok := openSession()
	if !ok {
		return
	}
	defer s.close()

	draft := entry.Draft{Date: date, Start: start, End: end, BreakMins: breakMins, Note: note}

	// The preview uses the exact commit-time formula, so what is shown here
	// is what would be stored.
	computed := clock.WorkMinutes(start, end, breakMins, s.svc.Ledger().Settings.RoundingStep)

	if preview {
		fmt.Fprintf(deps.Stdout, "Computed: %s (not saved)\n", cli.FormatMinutes(computed))
		return
	}

	e, err := s.svc.Add(draft)
	if err != nil {
		fail("Failed to add entry", err)
		return
	}

	fmt.Fprintf(deps.Stdout, "Added %s %s: %s worked\n", e.Date, cli.FormatClockRange(e), cli.FormatMinutes(e.WorkMins))
}
