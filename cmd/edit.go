package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toolstack/overtimeit/internal/cli"
	"github.com/toolstack/overtimeit/internal/entry"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <index>",
	Short: "Edit an existing entry",
	Long: `Edit an entry by its index in the current list output. Only the
specified fields change; the worked minutes are always recomputed from the
entry's resulting start/end/break.

Examples:
  overtimeit edit 2 --end 18:00
  overtimeit edit 1 --break 45 --note "worked through lunch"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		editEntry(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().String("date", "", "New date (YYYY-MM-DD)")
	editCmd.Flags().String("start", "", "New start time (HH:MM)")
	editCmd.Flags().String("end", "", "New end time (HH:MM)")
	editCmd.Flags().Int("break", -1, "New break minutes")
	editCmd.Flags().String("note", "", "New note")
}

func editEntry(cmd *cobra.Command, indexStr string) {
	s, ok := openSession()
	if !ok {
		return
	}
	defer s.close()

	e, ok := entryAt(s, indexStr)
	if !ok {
		return
	}

	if !cmd.Flags().Changed("date") && !cmd.Flags().Changed("start") && !cmd.Flags().Changed("end") &&
		!cmd.Flags().Changed("break") && !cmd.Flags().Changed("note") {
		fail("At least one of --date, --start, --end, --break or --note is required", nil)
		return
	}

	// Start from the entry's current values; flags override what they name.
	draft := entry.Draft{Date: e.Date, Start: e.Start, End: e.End, BreakMins: e.BreakMins, Note: e.Note}
	if cmd.Flags().Changed("date") {
		draft.Date, _ = cmd.Flags().GetString("date")
	}
	if cmd.Flags().Changed("start") {
		draft.Start, _ = cmd.Flags().GetString("start")
	}
	if cmd.Flags().Changed("end") {
		draft.End, _ = cmd.Flags().GetString("end")
	}
	if cmd.Flags().Changed("break") {
		draft.BreakMins, _ = cmd.Flags().GetInt("break")
	}
	if cmd.Flags().Changed("note") {
		draft.Note, _ = cmd.Flags().GetString("note")
	}

	updated, err := s.svc.Update(e.ID, draft)
	if err != nil {
		fail("Failed to edit entry", err)
		return
	}

	fmt.Fprintf(deps.Stdout, "Updated %s %s: %s worked\n",
		updated.Date, cli.FormatClockRange(updated), cli.FormatMinutes(updated.WorkMins))
}
