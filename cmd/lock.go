package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// lockCmd represents the lock command
var lockCmd = &cobra.Command{
	Use:   "lock [YYYY-MM]",
	Short: "Toggle a month's lock",
	Long: `Toggle the lock flag for a calendar month. While a month is locked, every
mutation targeting its entries (add, edit, delete, duplicate) is rejected.
Locking changes no entries; it only freezes them.

Examples:
  overtimeit lock 2024-05      Lock (or unlock) May 2024
  overtimeit lock --list       Show all locked months`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		list, _ := cmd.Flags().GetBool("list")
		if list {
			listLockedMonths()
			return
		}
		if len(args) != 1 {
			fail("A month (YYYY-MM) or --list is required", nil)
			return
		}
		toggleLock(args[0])
	},
}

func init() {
	rootCmd.AddCommand(lockCmd)
	lockCmd.Flags().Bool("list", false, "list locked months")
}

func toggleLock(month string) {
	s, ok := openSession()
	if !ok {
		return
	}
	defer s.close()

	locked, err := s.svc.ToggleLock(month)
	if err != nil {
		fail("Failed to toggle month lock", err)
		return
	}

	if locked {
		fmt.Fprintf(deps.Stdout, "Locked %s; entries in this month are now read-only\n", month)
	} else {
		fmt.Fprintf(deps.Stdout, "Unlocked %s\n", month)
	}
}

func listLockedMonths() {
	s, ok := openSession()
	if !ok {
		return
	}
	defer s.close()

	months := s.svc.Ledger().LockedMonths
	if len(months) == 0 {
		fmt.Fprintln(deps.Stdout, "No locked months")
		return
	}
	fmt.Fprintln(deps.Stdout, "Locked months:", strings.Join(months, ", "))
}
