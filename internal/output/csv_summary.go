package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/pensionview/retirement-projection/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "summary-csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "RetirementStartYear", "RetirementDuration", "MonthlyDeposit",
		"MarketRatePercent", "RetirementBoundaryWealth", "ScaleConstant", "ExpectedMonthlyPension", "Recommended"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedScenarios(results) {
		s := sc.Series
		p := s.Parameters
		row := []string{
			sc.Name,
			strconv.Itoa(p.RetirementStartYear),
			strconv.Itoa(p.RetirementDuration),
			plain(&p.MonthlyDeposit, 2),
			strconv.FormatFloat(p.MarketRate.Percent(), 'f', -1, 64),
			plain(&s.RetirementBoundaryWealth, 0),
			plain(&s.ScaleConstant, 2),
			plain(&s.ExpectedMonthlyPension, 2),
			strconv.FormatBool(sc.Name == results.RecommendedScenario),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
