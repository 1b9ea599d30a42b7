package cmd

import (
	"fmt"

	"github.com/mabhi256/dquest/internal/tui"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Pick a level from an interactive menu",
	Long: `Play opens a terminal menu listing the levels. Choosing one runs it and shows
the walk, the clues, the clue → suspect table and the suspect chart in tabs.

Keys:
  enter      play the selected level
  ←/→, 1-4   switch tabs
  esc        back to the menu
  q          quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := loadSession()
		if err != nil {
			return err
		}

		if err := tui.StartMenu(session); err != nil {
			return fmt.Errorf("unable to start TUI: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
