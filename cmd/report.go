package cmd

import (
	"github.com/spf13/cobra"

	"github.com/toolstack/overtimeit/internal/ledger"
	"github.com/toolstack/overtimeit/internal/report"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a report sheet for the current view",
	Long: `Print a report sheet for the currently filtered view: organization and
preparer from the profile, the period, the totals and every entry in the
view. Pipe it to a file or printer as-is.

Example:
  overtimeit report > may.txt`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runReport()
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport() {
	s, ok := openSession()
	if !ok {
		return
	}
	defer s.close()

	l := s.svc.Ledger()
	entries := l.Filtered()
	totals := ledger.ComputeTotals(entries, l.Settings)

	report.Render(deps.Stdout, s.svc.Profile(), l.PeriodLabel(), totals, entries)
}
