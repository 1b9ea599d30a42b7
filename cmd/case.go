package cmd

import (
	"fmt"

	"github.com/mabhi256/dquest/internal/casefile"
	"github.com/mabhi256/dquest/internal/estate"
	"github.com/mabhi256/dquest/utils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var caseCmd = &cobra.Command{
	Use:   "case",
	Short: "Inspect and export case files",
}

var caseExportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Write the built-in mansion as a case file (stdout if no path)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cf := casefile.Reference()

		if len(args) == 0 {
			data, err := yaml.Marshal(cf)
			if err != nil {
				return fmt.Errorf("failed to marshal case file: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}

		if err := cf.Save(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Case file written to %s\n", args[0])
		return nil
	},
}

var caseValidateCmd = &cobra.Command{
	Use:               "validate [case-file]",
	Short:             "Validate a case file",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: utils.CompleteFilesByExtension(utils.CaseFileExtensions),
	RunE: func(cmd *cobra.Command, args []string) error {
		cf, err := casefile.Load(args[0])
		if err != nil {
			return err
		}

		root, err := cf.BuildEstate()
		if err != nil {
			return fmt.Errorf("invalid case file %s: %w", args[0], err)
		}

		clues := 0
		unresolved := 0
		resolve := cf.Resolver()
		root.TraversePreOrder(func(r *estate.Room) {
			c, ok := r.Clue()
			if !ok {
				return
			}
			clues++
			if _, ok := resolve(c); !ok {
				unresolved++
			}
		})

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✅ %s\n", cf)
		fmt.Fprintf(out, "   Rooms: %d (height %d)\n", root.Count(), root.Height())
		fmt.Fprintf(out, "   Clues: %d (%d without a suspect)\n", clues, unresolved)
		fmt.Fprintf(out, "   Suspects: %d\n", len(cf.Suspects))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(caseCmd)

	caseCmd.AddCommand(caseExportCmd)
	caseCmd.AddCommand(caseValidateCmd)
}
