package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toolstack/overtimeit/internal/cli"
)

// duplicateCmd represents the duplicate command
var duplicateCmd = &cobra.Command{
	Use:   "duplicate <index>",
	Short: "Clone an entry",
	Long: `Clone an entry by its index in the current list output. The clone gets a
new id and a fresh creation timestamp; everything else is copied. Entries in
a locked month cannot be duplicated.

Example:
  overtimeit duplicate 1`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		duplicateEntry(args[0])
	},
}

func init() {
	rootCmd.AddCommand(duplicateCmd)
}

func duplicateEntry(indexStr string) {
	s, ok := openSession()
	if !ok {
		return
	}
	defer s.close()

	e, ok := entryAt(s, indexStr)
	if !ok {
		return
	}

	dup, err := s.svc.Duplicate(e.ID)
	if err != nil {
		fail("Failed to duplicate entry", err)
		return
	}

	fmt.Fprintf(deps.Stdout, "Duplicated %s %s: %s worked\n",
		dup.Date, cli.FormatClockRange(dup), cli.FormatMinutes(dup.WorkMins))
}
