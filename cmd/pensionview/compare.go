package main

import (
	"github.com/pensionview/retirement-projection/internal/config"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <scenarios.yaml>",
	Short: "Compare the scenarios of a scenario file",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompare,
}

func init() {
	addReportFlags(compareCmd)
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewInputParser().LoadFromFile(args[0])
	if err != nil {
		return err
	}
	results, err := newEngine().RunScenarios(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	return render(cmd, results)
}
