package cmd

import (
	"fmt"

	"github.com/mabhi256/dquest/internal/game"
	"github.com/mabhi256/dquest/internal/report"
	"github.com/mabhi256/dquest/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Novice: take the guided walk from the entrance to a dead end",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLevel(cmd, game.Novice)
	},
}

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Adventurer: explore every room and list the clues alphabetically",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLevel(cmd, game.Adventurer)
	},
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Master: link clues to suspects and name the most cited one",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLevel(cmd, game.Master)
	},
}

var runCmd = &cobra.Command{
	Use:   "run [level]",
	Short: "Run a level by name or number (default: all levels)",
	Long: `Run a level by name or menu number:
  1, novice      guided walk
  2, adventurer  clue collection
  3, master      clues, suspects and the most cited suspect
  0, all         the three levels in sequence`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: game.LevelNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		level := game.All
		if len(args) > 0 {
			l, err := game.ParseLevel(args[0])
			if err != nil {
				return err
			}
			level = l
		}
		return runLevel(cmd, level)
	},
}

// runLevel plays level on the configured case and reports it in the
// configured output format.
func runLevel(cmd *cobra.Command, level game.Level) error {
	session, err := loadSession()
	if err != nil {
		return err
	}

	logger.Info("running level", zap.Stringer("level", level), zap.String("case", session.Case))

	if cfg.Output == "tui" {
		if err := tui.StartTUI(session, level); err != nil {
			return fmt.Errorf("unable to start TUI: %w", err)
		}
		return nil
	}

	outcomes := session.Play(level)
	return report.NewPrinter(cmd.OutOrStdout()).PrintReport(outcomes, cfg.Output)
}

func init() {
	rootCmd.AddCommand(walkCmd)
	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(runCmd)
}
