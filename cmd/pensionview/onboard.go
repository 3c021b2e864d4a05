package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pensionview/retirement-projection/internal/calculation"
	"github.com/pensionview/retirement-projection/internal/config"
	"github.com/pensionview/retirement-projection/internal/domain"
	"github.com/spf13/cobra"
)

const onboardingSnapshot = "onboarding"

var flagAccessible bool

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Set up your retirement parameters",
	Args:  cobra.NoArgs,
	RunE:  runOnboard,
}

func init() {
	onboardCmd.Flags().BoolVar(&flagAccessible, "accessible", false, "Use plain prompts instead of the form")
	rootCmd.AddCommand(onboardCmd)
}

// onboardAnswers holds the raw form input.
type onboardAnswers struct {
	Deposit string
	Retire  string
	Capital string
}

func defaultAnswers(s config.ProjectionSettings) onboardAnswers {
	return onboardAnswers{
		Deposit: strconv.FormatFloat(s.MonthlyDeposit, 'f', -1, 64),
		Retire:  strconv.Itoa(s.RetirementStartYear),
		Capital: strconv.FormatFloat(s.InitialCapital, 'f', -1, 64),
	}
}

func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.New("enter a number")
	}
	if v < 0 {
		return 0, errors.New("cannot be negative")
	}
	return v, nil
}

func validateAmount(s string) error {
	_, err := parseAmount(s)
	return err
}

func retirementYearValidator(currentYear int) func(string) error {
	return func(s string) error {
		y, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return errors.New("enter a year")
		}
		if y < currentYear {
			return fmt.Errorf("must be %d or later", currentYear)
		}
		return nil
	}
}

// parameters turns the answers into projection parameters over the settings'
// rates and duration.
func (a onboardAnswers) parameters(s config.ProjectionSettings, currentYear int) (domain.ProjectionParameters, error) {
	deposit, err := parseAmount(a.Deposit)
	if err != nil {
		return domain.ProjectionParameters{}, fmt.Errorf("monthly deposit: %w", err)
	}
	capital, err := parseAmount(a.Capital)
	if err != nil {
		return domain.ProjectionParameters{}, fmt.Errorf("initial capital: %w", err)
	}
	if err := retirementYearValidator(currentYear)(a.Retire); err != nil {
		return domain.ProjectionParameters{}, fmt.Errorf("retirement year: %w", err)
	}
	retire, _ := strconv.Atoi(strings.TrimSpace(a.Retire))

	s.MonthlyDeposit = deposit
	s.InitialCapital = capital
	s.RetirementStartYear = retire
	p := s.Parameters(currentYear)
	return p, config.ValidateParameters(p)
}

func newOnboardForm(a *onboardAnswers, currentYear int) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to pensionview").
				Description("Three numbers are enough for a first projection. You can change them any time."),
			huh.NewInput().
				Title("Monthly deposit").
				Description("How much you put aside every month").
				Value(&a.Deposit).
				Validate(validateAmount),
			huh.NewInput().
				Title("Retirement start year").
				Value(&a.Retire).
				Validate(retirementYearValidator(currentYear)),
			huh.NewInput().
				Title("Initial capital").
				Description("What you have already saved").
				Value(&a.Capital).
				Validate(validateAmount),
		),
	).WithAccessible(flagAccessible)
}

func runOnboard(cmd *cobra.Command, _ []string) error {
	year := calculation.CurrentYear()
	answers := defaultAnswers(settings.Projection)
	if err := newOnboardForm(&answers, year).RunWithContext(cmd.Context()); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "Onboarding cancelled; nothing saved.")
			return nil
		}
		return err
	}

	p, err := answers.parameters(settings.Projection, year)
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	if _, err := st.SaveSnapshot(cmd.Context(), onboardingSnapshot, p); err != nil {
		return err
	}

	series := newEngine().Project(p)
	fmt.Fprintf(cmd.OutOrStdout(), "Saved. Retiring in %d with %s, your expected monthly pension is %s.\n",
		p.RetirementStartYear,
		formatAmount(series.RetirementBoundaryWealth),
		formatAmount(series.ExpectedMonthlyPension))
	return nil
}
