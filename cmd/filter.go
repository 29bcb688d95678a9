package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// monthCmd represents the month command
var monthCmd = &cobra.Command{
	Use:   "month <YYYY-MM>",
	Short: "Filter the view by month",
	Long: `Switch the persisted filter to month mode. The filter survives across
sessions; every list, totals, report and CSV export uses it.

Example:
  overtimeit month 2024-05`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setMonth(args[0])
	},
}

// rangeCmd represents the range command
var rangeCmd = &cobra.Command{
	Use:   "range <from> <to>",
	Short: "Filter the view by date range",
	Long: `Switch the persisted filter to an inclusive date range.

Examples:
  overtimeit range 2024-05-01 2024-05-07
  overtimeit range --off       Switch back to month mode`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		off, _ := cmd.Flags().GetBool("off")
		if off {
			clearRange()
			return
		}
		if len(args) != 2 {
			fail("Both <from> and <to> dates are required (or use --off)", nil)
			return
		}
		setRange(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(monthCmd)
	rootCmd.AddCommand(rangeCmd)
	rangeCmd.Flags().Bool("off", false, "switch back to month mode")
}

func setMonth(month string) {
	s, ok := openSession()
	if !ok {
		return
	}
	defer s.close()

	if err := s.svc.SetActiveMonth(month); err != nil {
		fail("Failed to set the active month", err)
		return
	}
	fmt.Fprintf(deps.Stdout, "Filtering by month %s\n", month)
}

func setRange(from, to string) {
	s, ok := openSession()
	if !ok {
		return
	}
	defer s.close()

	if err := s.svc.SetRange(from, to); err != nil {
		fail("Failed to set the date range", err)
		return
	}
	fmt.Fprintf(deps.Stdout, "Filtering by range %s .. %s\n", from, to)
}

func clearRange() {
	s, ok := openSession()
	if !ok {
		return
	}
	defer s.close()

	if err := s.svc.ClearRange(); err != nil {
		fail("Failed to clear the date range", err)
		return
	}
	fmt.Fprintf(deps.Stdout, "Filtering by month %s\n", s.svc.Ledger().UI.ActiveMonth)
}
