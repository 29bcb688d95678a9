package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toolstack/overtimeit/internal/cli"
)

var yesFlag bool

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <index>",
	Short: "Delete an entry by index",
	Long: `Delete an entry by its index in the current list output.
Deletion is irreversible; a confirmation prompt is shown unless --yes is
specified. Entries in a locked month cannot be deleted.

Example:
  overtimeit delete 3
  overtimeit delete 3 --yes`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deleteEntry(args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "skip confirmation prompt")
}

func deleteEntry(indexStr string) {
	s, ok := openSession()
	if !ok {
		return
	}
	defer s.close()

	e, ok := entryAt(s, indexStr)
	if !ok {
		return
	}

	fmt.Fprintf(deps.Stdout, "Entry to delete:\n  %s  %s  %s worked  %s\n",
		e.Date, cli.FormatClockRange(e), cli.FormatMinutes(e.WorkMins), e.Note)

	if !yesFlag {
		if !promptConfirmation("Delete this entry?") {
			fmt.Fprintln(deps.Stdout, "Deletion cancelled")
			return
		}
	}

	deleted, err := s.svc.Delete(e.ID)
	if err != nil {
		fail("Failed to delete entry", err)
		return
	}

	fmt.Fprintf(deps.Stdout, "Deleted %s (%s)\n", deleted.Date, cli.FormatMinutes(deleted.WorkMins))
}
