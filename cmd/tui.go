package cmd

import (
	"github.com/spf13/cobra"

	"github.com/toolstack/overtimeit/internal/config"
	"github.com/toolstack/overtimeit/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive terminal interface",
	Long: `Open the interactive terminal interface: browse and edit entries, watch
the running totals and pick a color theme. The theme choice is saved to the
config file.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI() {
	s, ok := openSession()
	if !ok {
		return
	}
	defer s.close()

	configPath, err := deps.ConfigPath()
	if err != nil {
		fail("Failed to determine config location", err)
		return
	}

	saveTheme := func(name string) error {
		cfg := s.cfg
		cfg.Theme = name
		return config.Save(configPath, cfg)
	}

	if err := tui.Run(s.svc, s.cfg.Theme, saveTheme); err != nil {
		fail("Interface error", err)
	}
}
