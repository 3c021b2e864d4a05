package output

import (
	"bytes"
	"context"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/pensionview/retirement-projection/internal/calculation"
	"github.com/pensionview/retirement-projection/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseParams() domain.ProjectionParameters {
	return domain.ProjectionParameters{
		CurrentYear:          2025,
		LastYear:             2050,
		MonthlyDeposit:       300,
		DepositGrowthRate:    0.01,
		MarketRate:           0.061,
		RetirementStartYear:  2040,
		RetirementGrowthRate: 0.02,
		RetirementDuration:   10,
	}
}

func buildTestComparison(t *testing.T) *domain.ScenarioComparison {
	t.Helper()
	richer := baseParams().WithMonthlyDeposit(400)
	config := &domain.Configuration{
		Baseline: baseParams(),
		Scenarios: []domain.Scenario{
			{Name: "B Baseline", Parameters: baseParams()},
			{Name: "A Richer", Parameters: richer},
		},
	}
	cmp, err := calculation.NewProjectionEngine().RunScenarios(context.Background(), config)
	require.NoError(t, err)
	return cmp
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{Symbol: "€"}.Format(buildTestComparison(t))
	require.NoError(t, err)
	content := string(out)

	assert.Contains(t, content, "RETIREMENT PROJECTION")
	assert.Contains(t, content, "B Baseline")
	assert.Contains(t, content, "boundary")
	assert.Contains(t, content, "Expected monthly pension")
	assert.Contains(t, content, "Recommended: A Richer")
	assert.Contains(t, content, "Assumptions:")
}

func TestConsoleFormatterEmptyProjection(t *testing.T) {
	p := baseParams()
	p.LastYear = 2000
	cmp := &domain.ScenarioComparison{Scenarios: []domain.ScenarioResult{{Name: "Empty", Series: calculation.Project(p)}}}

	out, err := ConsoleFormatter{}.Format(cmp)
	require.NoError(t, err)
	assert.Contains(t, string(out), "No projection")
	assert.NotContains(t, string(out), "Recommended")
}

func readCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestCSVYearlyExporter(t *testing.T) {
	out, err := CSVYearlyExporter{}.Format(buildTestComparison(t))
	require.NoError(t, err)
	records := readCSV(t, out)

	assert.Equal(t, []string{"Scenario", "Year", "InvestedCapital", "Wealth", "RemainingPension"}, records[0])
	require.Len(t, records, 1+2*26)
	assert.Equal(t, "A Richer", records[1][0], "rows sorted by scenario name")
	assert.Equal(t, "2025", records[1][1])
	assert.Equal(t, "0", records[1][2])
	assert.Equal(t, "", records[1][4], "no remaining pension during accumulation")

	last := records[len(records)-1]
	assert.Equal(t, "B Baseline", last[0])
	assert.Equal(t, "2050", last[1])
	assert.Equal(t, "", last[2])
	assert.Equal(t, "0", last[4], "the payout exhausts the wealth")
}

func TestCSVDetailedExporter(t *testing.T) {
	cmp := buildTestComparison(t)
	out, err := CSVDetailedExporter{}.Format(cmp)
	require.NoError(t, err)
	records := readCSV(t, out)

	require.Len(t, records[0], 9)
	var boundary []string
	for _, r := range records[1:] {
		if r[0] == "B Baseline" && r[1] == "2040" {
			boundary = r
		}
	}
	require.NotNil(t, boundary)
	assert.Equal(t, "boundary", boundary[2])
	assert.Equal(t, boundary[4], boundary[5], "wealth equals the remaining pension at the boundary")
	assert.Equal(t, boundary[4], boundary[6])
}

func TestCSVSummarizerDeterministicOrder(t *testing.T) {
	out, err := CSVSummarizer{}.Format(buildTestComparison(t))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3, "header + 2 rows")
	assert.True(t, strings.HasPrefix(lines[1], "A Richer,"))
	assert.True(t, strings.HasPrefix(lines[2], "B Baseline,"))
	assert.True(t, strings.HasSuffix(lines[1], ",true"))
	assert.Contains(t, lines[2], ",6.1,")
}

func TestJSONFormatter(t *testing.T) {
	cmp := buildTestComparison(t)
	out, err := JSONFormatter{}.Format(cmp)
	require.NoError(t, err)

	var view ComparisonView
	require.NoError(t, json.Unmarshal(out, &view))
	require.Len(t, view.Scenarios, 2)
	assert.Equal(t, "A Richer", view.RecommendedScenario)

	s := view.Scenarios[0].Series
	assert.Len(t, s.Points, 26)
	assert.InDelta(t, 0.061, s.Parameters.MarketRate.Fraction(), 1e-12)
	require.NotNil(t, s.ExpectedMonthlyPension)
	assert.InDelta(t, cmp.Scenarios[0].Series.ExpectedMonthlyPension, *s.ExpectedMonthlyPension, 1e-9)
	require.NotNil(t, s.Axis)
	assert.Equal(t, 0.0, s.Axis.Min)
	assert.Equal(t, "accumulation", s.Points[0].Phase)
	assert.Nil(t, s.Points[0].RemainingPension)
	assert.Contains(t, string(out), `"market_rate": 6.1`)
}

func TestJSONFormatterNonFiniteBecomesNull(t *testing.T) {
	nan := math.NaN()
	series := domain.ProjectionSeries{
		Parameters:             baseParams(),
		Points:                 []domain.YearPoint{{Year: 2025, Wealth: &nan}},
		ExpectedMonthlyPension: math.Inf(1),
	}
	view := NewSeriesView(series)
	assert.Nil(t, view.Points[0].Wealth)
	assert.Nil(t, view.ExpectedMonthlyPension)
	assert.Nil(t, view.Axis)

	_, err := json.Marshal(view)
	assert.NoError(t, err)
}

func TestPDFFormatter(t *testing.T) {
	out, err := PDFFormatter{Symbol: "€"}.Format(buildTestComparison(t))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Greater(t, len(out), 1000)
}

func TestGetFormatter(t *testing.T) {
	for _, name := range AvailableFormatterNames() {
		f, err := GetFormatter(name, Options{})
		require.NoError(t, err, name)
		assert.Equal(t, name, f.Name())
	}

	f, err := GetFormatter(" Table ", Options{CurrencySymbol: "$"})
	require.NoError(t, err)
	assert.Equal(t, ConsoleFormatter{Symbol: "$"}, f)

	_, err = GetFormatter("html", Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Nil(t, GetFormatterByName("html"))
	assert.NotNil(t, GetFormatterByName("csv-detailed"))
}

func TestNormalizeFormatName(t *testing.T) {
	assert.Equal(t, "detailed-csv", NormalizeFormatName("CSV-Detailed"))
	assert.Equal(t, "json", NormalizeFormatName("json-pretty"))
	assert.Equal(t, "unknown", NormalizeFormatName("unknown"))
	assert.Equal(t, "pdf", Extension("report"))
	assert.Equal(t, "csv", Extension("summary-csv"))
	assert.Equal(t, "txt", Extension("console"))
}

func TestFormatterFunc(t *testing.T) {
	f := FormatterFunc{ID: "static", F: func(*domain.ScenarioComparison) ([]byte, error) { return []byte("ok"), nil }}
	dir := t.TempDir()
	name, err := WriteFormatted(f, &domain.ScenarioComparison{}, dir, "txt")
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(name))
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))
}
