package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toolstack/overtimeit/internal/cli"
)

// settingsCmd represents the settings command
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the ledger settings",
	Long: `Show or change the totals settings stored in the ledger.

The standard day is the expected minutes per logged day; the balance and
overtime of a period are measured against it. The rounding step (0, 5 or 15)
rounds computed work minutes at save time; 0 disables rounding. Changing the
step affects future saves only, stored entries keep their minutes.

Examples:
  overtimeit settings
  overtimeit settings --standard-day 450
  overtimeit settings --rounding 15`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runSettings(cmd)
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)

	settingsCmd.Flags().Int("standard-day", 0, "Expected minutes per logged day")
	settingsCmd.Flags().Int("rounding", -1, "Rounding step in minutes: 0, 5 or 15")
}

func runSettings(cmd *cobra.Command) {
	s, ok := openSession()
	if !ok {
		return
	}
	defer s.close()

	current := s.svc.Ledger().Settings

	if !cmd.Flags().Changed("standard-day") && !cmd.Flags().Changed("rounding") {
		fmt.Fprintf(deps.Stdout, "Standard day: %s (%d minutes)\n", cli.FormatMinutes(current.StandardDayMins), current.StandardDayMins)
		fmt.Fprintf(deps.Stdout, "Rounding step: %d minutes\n", current.RoundingStep)
		return
	}

	next := current
	if cmd.Flags().Changed("standard-day") {
		next.StandardDayMins, _ = cmd.Flags().GetInt("standard-day")
		if next.StandardDayMins <= 0 {
			fail("Standard day must be a positive number of minutes", nil)
			return
		}
	}
	if cmd.Flags().Changed("rounding") {
		next.RoundingStep, _ = cmd.Flags().GetInt("rounding")
		switch next.RoundingStep {
		case 0, 5, 15:
		default:
			fail("Rounding step must be 0, 5 or 15", nil)
			return
		}
	}

	saved, err := s.svc.UpdateSettings(next)
	if err != nil {
		fail("Failed to save settings", err)
		return
	}

	fmt.Fprintf(deps.Stdout, "Standard day: %d minutes, rounding step: %d minutes\n",
		saved.StandardDayMins, saved.RoundingStep)
}
