package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toolstack/overtimeit/internal/export"
)

// exportCmd represents the export parent command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger to various formats",
	Long: `Export to various formats for backup or further processing.

Available formats:
  json    The full ledger and profile, importable back
  csv     The current filtered view only

Examples:
  overtimeit export json > backup.json
  overtimeit export csv > may.csv`,
}

// exportJSONCmd represents the export json command
var exportJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Export the full ledger and profile as JSON",
	Long: `Export the complete state as a JSON envelope: export timestamp, profile
and the full ledger record (settings, locked months, filters, all entries).
The output is accepted by 'overtimeit import'.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exportJSON()
	},
}

// exportCSVCmd represents the export csv command
var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export the filtered view as CSV",
	Long: `Export the entries of the current filtered view as CSV with the columns
date,start,end,breakMins,workMins,workHours,note. workHours is workMins/60
with two decimals.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exportCSV()
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportJSONCmd)
	exportCmd.AddCommand(exportCSVCmd)
}

func exportJSON() {
	s, ok := openSession()
	if !ok {
		return
	}
	defer s.close()

	raw, err := export.ExportJSON(s.svc.Ledger(), s.svc.Profile())
	if err != nil {
		fail("Failed to encode export", err)
		return
	}

	fmt.Fprintln(deps.Stdout, string(raw))
}

func exportCSV() {
	s, ok := openSession()
	if !ok {
		return
	}
	defer s.close()

	if err := export.WriteCSV(deps.Stdout, s.svc.Ledger().Filtered()); err != nil {
		fail("Failed to write CSV", err)
		return
	}
}
