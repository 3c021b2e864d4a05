package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pensionview/retirement-projection/internal/domain"
	"github.com/pensionview/retirement-projection/internal/expense"
	"github.com/pensionview/retirement-projection/internal/store"
	"github.com/pensionview/retirement-projection/pkg/dateutil"
	money "github.com/pensionview/retirement-projection/pkg/decimal"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagMonth     string
	flagCut       float64
	flagRepair    bool
	savingsParams paramFlags

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3AA99F"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6F6E69"))
)

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "Import and analyze card transactions",
}

var expensesImportCmd = &cobra.Command{
	Use:   "import <feed.json>",
	Short: "Import a transaction feed (use - for stdin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpensesImport,
}

var expensesSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a month's spending by category against the previous month",
	Args:  cobra.NoArgs,
	RunE:  runExpensesSummary,
}

var expensesSavingsCmd = &cobra.Command{
	Use:   "savings",
	Short: "Show what cutting discretionary spending would add to the pension",
	Args:  cobra.NoArgs,
	RunE:  runExpensesSavings,
}

var expensesMonthsCmd = &cobra.Command{
	Use:   "months",
	Short: "List the months that have transactions",
	Args:  cobra.NoArgs,
	RunE:  runExpensesMonths,
}

func init() {
	for _, c := range []*cobra.Command{expensesSummaryCmd, expensesSavingsCmd} {
		c.Flags().StringVarP(&flagMonth, "month", "m", "", "Month as YYYY-MM (default: newest with transactions)")
	}
	expensesImportCmd.Flags().BoolVar(&flagRepair, "repair", false, "Repair malformed JSON before importing")
	expensesSavingsCmd.Flags().Float64Var(&flagCut, "cut", 20, "Share of discretionary spending to cut, in percent")
	savingsParams.register(expensesSavingsCmd)

	expensesCmd.AddCommand(expensesImportCmd, expensesSummaryCmd, expensesSavingsCmd, expensesMonthsCmd)
	rootCmd.AddCommand(expensesCmd)
}

func runExpensesImport(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening feed: %w", err)
		}
		defer f.Close()
		r = f
	}
	decode := expense.DecodeFeed
	if flagRepair {
		decode = expense.DecodeFeedLenient
	}
	txs, err := decode(r)
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	n, err := st.ImportTransactions(cmd.Context(), txs)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions across %d months\n", n, len(expense.AvailableMonths(txs)))
	return nil
}

func runExpensesMonths(cmd *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	months, err := st.Months(cmd.Context())
	if err != nil {
		return err
	}
	if len(months) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No transactions imported yet.")
		return nil
	}
	for _, m := range months {
		fmt.Fprintln(cmd.OutOrStdout(), m)
	}
	return nil
}

// loadMonth summarizes the selected month, or the newest month with
// transactions when none is selected or the selection has none.
func loadMonth(ctx context.Context, st *store.Store, selected string) (domain.MonthSummary, error) {
	months, err := st.Months(ctx)
	if err != nil {
		return domain.MonthSummary{}, err
	}
	key := expense.ResolveMonth(selected, months)
	if key == "" {
		return domain.MonthSummary{}, fmt.Errorf("no transactions imported yet")
	}
	if selected != "" && key != selected {
		logger.Warnf("no transactions in %s, showing %s", selected, key)
	}
	month, err := dateutil.ParseMonth(key)
	if err != nil {
		return domain.MonthSummary{}, err
	}
	txs, err := st.Transactions(ctx, dateutil.PreviousMonth(month), dateutil.NextMonth(month))
	if err != nil {
		return domain.MonthSummary{}, err
	}
	return expense.SummarizeMonth(txs, month), nil
}

func runExpensesSummary(cmd *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	month, err := loadMonth(cmd.Context(), st, flagMonth)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderMonth(month, settings.Display.CurrencySymbol))
	return nil
}

func renderMonth(month domain.MonthSummary, symbol string) string {
	amount := func(d decimal.Decimal) string { return money.NewMoneyFromDecimal(d).FormatWith(symbol) }

	var b strings.Builder
	fmt.Fprintln(&b, headingStyle.Render(month.Label))
	fmt.Fprintf(&b, "Total spending: %s (previous month %s, %s%%)\n",
		amount(month.Total), amount(month.PreviousTotal), signed(month.Change))
	if month.InvestedAmount.IsPositive() {
		fmt.Fprintf(&b, "Invested: %s\n", amount(month.InvestedAmount))
	}
	if len(month.Categories) == 0 {
		fmt.Fprintln(&b, mutedStyle.Render("No spending this month."))
		return b.String()
	}

	rows := make([][]string, 0, len(month.Categories))
	for _, c := range month.Categories {
		rows = append(rows, []string{c.Name, amount(c.Amount), c.Percentage.StringFixed(1) + "%",
			amount(c.PreviousAmount), signed(c.Change) + "%"})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Category", "Amount", "Share", "Previous", "Change").
		Rows(rows...)
	fmt.Fprintln(&b, t.Render())
	return b.String()
}

func signed(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + d.StringFixed(1)
	}
	return d.StringFixed(1)
}

func runExpensesSavings(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	month, err := loadMonth(ctx, st, flagMonth)
	if err != nil {
		return err
	}
	p, err := resolveParameters(ctx, cmd, &savingsParams, st)
	if err != nil {
		return err
	}

	cut := expense.DefaultCutRatio
	if cmd.Flags().Changed("cut") {
		cut = decimal.NewFromFloat(flagCut).Div(decimal.NewFromInt(100))
	}
	suggestions := expense.PotentialSavings(newEngine(), p, month, cut)

	out := cmd.OutOrStdout()
	symbol := settings.Display.CurrencySymbol
	amount := func(d decimal.Decimal) string { return money.NewMoneyFromDecimal(d).FormatWith(symbol) }
	fmt.Fprintln(out, headingStyle.Render("Potential savings, "+month.Label))
	if len(suggestions) == 0 {
		fmt.Fprintln(out, mutedStyle.Render("No discretionary spending to cut."))
		return nil
	}
	for _, s := range suggestions {
		fmt.Fprintf(out, "%-14s cut %s of %s per month -> +%s at retirement, +%s monthly pension\n",
			s.Category, amount(s.MonthlySaving), amount(s.CurrentMonthlySpend),
			amount(s.ExtraBoundaryWealth), symbol+s.ExtraMonthlyPension.StringFixed(2))
	}
	return nil
}
