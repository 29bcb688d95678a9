package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// profileCmd represents the profile command
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or change the shared profile",
	Long: `Show or change the shared profile record: organization, preparer,
language tag (EN or DE) and logo reference. The profile appears on report
sheets and in JSON exports.

Examples:
  overtimeit profile
  overtimeit profile --org "Acme Hotel" --user "N. Garcia"
  overtimeit profile --language DE`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runProfile(cmd)
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)

	profileCmd.Flags().String("org", "", "Organization name")
	profileCmd.Flags().String("user", "", "Preparer name")
	profileCmd.Flags().String("language", "", "Language tag: EN or DE")
	profileCmd.Flags().String("logo", "", "Logo reference")
}

func runProfile(cmd *cobra.Command) {
	s, ok := openSession()
	if !ok {
		return
	}
	defer s.close()

	p := s.svc.Profile()

	changed := false
	if cmd.Flags().Changed("org") {
		p.Org, _ = cmd.Flags().GetString("org")
		changed = true
	}
	if cmd.Flags().Changed("user") {
		p.User, _ = cmd.Flags().GetString("user")
		changed = true
	}
	if cmd.Flags().Changed("language") {
		p.Language, _ = cmd.Flags().GetString("language")
		changed = true
	}
	if cmd.Flags().Changed("logo") {
		p.Logo, _ = cmd.Flags().GetString("logo")
		changed = true
	}

	if changed {
		if err := s.svc.UpdateProfile(p); err != nil {
			fail("Failed to save profile", err)
			return
		}
		p = s.svc.Profile()
	}

	fmt.Fprintf(deps.Stdout, "Organization: %s\n", p.Org)
	fmt.Fprintf(deps.Stdout, "User: %s\n", p.User)
	fmt.Fprintf(deps.Stdout, "Language: %s\n", p.Language)
	if p.Logo != "" {
		fmt.Fprintf(deps.Stdout, "Logo: %s\n", p.Logo)
	}
}
