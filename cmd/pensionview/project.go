package main

import (
	"fmt"

	"github.com/pensionview/retirement-projection/internal/domain"
	"github.com/pensionview/retirement-projection/internal/output"
	"github.com/spf13/cobra"
)

var (
	projectParams paramFlags
	flagFormat    string
	flagOutputDir string
	flagSaveAs    string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project a single parameter set",
	Long: "Project the last saved parameters (or the settings defaults), with any flag " +
		"overriding a single value. Invalid overrides fall back to the saved parameters.",
	Args: cobra.NoArgs,
	RunE: runProject,
}

func init() {
	projectParams.register(projectCmd)
	addReportFlags(projectCmd)
	projectCmd.Flags().StringVar(&flagSaveAs, "save", "", "Save the parameters under this name")
	rootCmd.AddCommand(projectCmd)
}

func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagFormat, "format", "f", "", "Report format: "+fmt.Sprint(output.AvailableFormatterNames())+" or all")
	cmd.Flags().StringVarP(&flagOutputDir, "output", "o", "", "Write the report to a file in this directory")
}

func runProject(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	st, err := openStore()
	if err != nil {
		logger.Warnf("%v; projecting without saved parameters", err)
	} else {
		defer st.Close()
	}

	var src snapshotSource
	if st != nil {
		src = st
	}
	p, err := resolveParameters(ctx, cmd, &projectParams, src)
	if err != nil {
		return err
	}

	if flagSaveAs != "" {
		if st == nil {
			return fmt.Errorf("cannot save %q without a database", flagSaveAs)
		}
		snap, err := st.SaveSnapshot(ctx, flagSaveAs, p)
		if err != nil {
			return err
		}
		logger.Infof("saved parameters as %s (%s)", snap.Name, snap.ID)
	}

	engine := newEngine()
	result, err := engine.RunScenario(ctx, domain.Scenario{Name: "Projection", Parameters: p})
	if err != nil {
		return err
	}
	comparison := &domain.ScenarioComparison{
		Scenarios:           []domain.ScenarioResult{*result},
		RecommendedScenario: result.Name,
	}
	return render(cmd, comparison)
}

// render prints the comparison in the selected format, or writes it to the
// output directory when one is given.
func render(cmd *cobra.Command, results *domain.ScenarioComparison) error {
	format := flagFormat
	if format == "" {
		format = settings.Display.DefaultFormat
	}
	opts := output.Options{CurrencySymbol: settings.Display.CurrencySymbol}

	if flagOutputDir != "" {
		files, err := output.GenerateReport(results, format, flagOutputDir, opts)
		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", f)
		}
		return err
	}

	if output.NormalizeFormatName(format) == "pdf" {
		return fmt.Errorf("the pdf format needs --output")
	}
	f, err := output.GetFormatter(format, opts)
	if err != nil {
		return err
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("formatting %s: %w", f.Name(), err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func formatAmount(v float64) string {
	return output.FormatCurrency(v, settings.Display.CurrencySymbol)
}
