package output

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pensionview/retirement-projection/internal/domain"
)

var (
	colorBorder = lipgloss.Color("#575653")
	colorAccent = lipgloss.Color("#3AA99F")
	colorGreen  = lipgloss.Color("#879A39")
	colorMuted  = lipgloss.Color("#6F6E69")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	goodStyle   = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
)

// ConsoleFormatter renders each scenario as a year table followed by its
// derived figures.
type ConsoleFormatter struct {
	Symbol string
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	symbol := symbolOrDefault(c.Symbol)
	var buf bytes.Buffer
	fmt.Fprintln(&buf, titleStyle.Render("RETIREMENT PROJECTION"))

	for _, sc := range results.Scenarios {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, headerStyle.Render(sc.Name))
		s := sc.Series
		if s.IsEmpty() {
			fmt.Fprintln(&buf, mutedStyle.Render("  No projection: the parameters describe an empty horizon."))
			continue
		}
		fmt.Fprintln(&buf, renderYearTable(s, symbol))
		fmt.Fprintf(&buf, "  Wealth at retirement (%d): %s\n", s.Parameters.RetirementStartYear, FormatCurrency(s.RetirementBoundaryWealth, symbol))
		fmt.Fprintf(&buf, "  First-year payout:          %s\n", FormatCurrency(s.ScaleConstant, symbol))
		fmt.Fprintf(&buf, "  Expected monthly pension:   %s\n", FormatCurrency(s.ExpectedMonthlyPension, symbol))
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" && len(results.Scenarios) > 1 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, goodStyle.Render(fmt.Sprintf("Recommended: %s (Δ %s / %s per month)",
			rec.ScenarioName, FormatCurrency(rec.PensionChange.InexactFloat64(), symbol), FormatPercentage(rec.PercentageChange))))
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, mutedStyle.Render("Assumptions:"))
	for _, a := range assumptionsFor(results) {
		fmt.Fprintln(&buf, mutedStyle.Render("  - "+a))
	}
	return buf.Bytes(), nil
}

func renderYearTable(s domain.ProjectionSeries, symbol string) string {
	rows := make([][]string, 0, len(s.Points))
	for _, yp := range s.Points {
		rows = append(rows, []string{
			strconv.Itoa(yp.Year),
			yp.Phase(),
			FormatOptional(yp.InvestedCapital, symbol),
			FormatOptional(yp.Wealth, symbol),
			FormatOptional(yp.RemainingPension, symbol),
		})
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers("Year", "Phase", "Invested", "Wealth", "Remaining").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 1 {
				return mutedStyle.Padding(0, 1)
			}
			return cellStyle
		})
	return t.Render()
}
