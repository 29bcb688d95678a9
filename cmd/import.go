package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/toolstack/overtimeit/internal/export"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the ledger from a JSON export",
	Long: `Replace the complete state from a file produced by 'overtimeit export
json'. The import is all-or-nothing: if the file is not valid JSON or its
data.entries is not a list, nothing changes and the error is reported. A
profile in the file replaces the current profile; a file without one keeps
it.

Because the current ledger is replaced entirely, a confirmation prompt is
shown unless --yes is specified.

Example:
  overtimeit import backup.json`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runImport(args[0])
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "skip confirmation prompt")
}

func runImport(path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		fail("Failed to read import file", err)
		return
	}

	s, ok := openSession()
	if !ok {
		return
	}
	defer s.close()

	// Validate the whole payload before touching any state.
	payload, err := export.ParseImport(raw)
	if err != nil {
		fail("Import rejected", err)
		return
	}

	if !yesFlag {
		fmt.Fprintf(deps.Stdout, "Importing %d entries, replacing the current ledger.\n", len(payload.Data.Entries))
		if !promptConfirmation("Continue?") {
			fmt.Fprintln(deps.Stdout, "Import cancelled")
			return
		}
	}

	if err := s.svc.Replace(payload.Data, payload.Profile); err != nil {
		fail("Failed to apply import", err)
		return
	}

	fmt.Fprintf(deps.Stdout, "Imported %d entries\n", len(s.svc.Ledger().Entries))
}
