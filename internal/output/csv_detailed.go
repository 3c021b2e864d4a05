package output

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	"github.com/pensionview/retirement-projection/internal/domain"
)

// CSVDetailedExporter provides raw annual projection detail per scenario/year,
// unrounded to the cent, with the phase and the scenario's derived scalars.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "Phase", "InvestedCapital", "Wealth", "RemainingPension",
		"RetirementBoundaryWealth", "ScaleConstant", "ExpectedMonthlyPension"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedScenarios(results) {
		s := sc.Series
		for _, yp := range s.Points {
			row := []string{
				sc.Name,
				strconv.Itoa(yp.Year),
				yp.Phase(),
				plain(yp.InvestedCapital, 2),
				plain(yp.Wealth, 2),
				plain(yp.RemainingPension, 2),
				plain(&s.RetirementBoundaryWealth, 2),
				plain(&s.ScaleConstant, 4),
				plain(&s.ExpectedMonthlyPension, 2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// sortedScenarios returns the scenarios ordered by name so file output is
// stable across runs.
func sortedScenarios(results *domain.ScenarioComparison) []domain.ScenarioResult {
	scenarios := append([]domain.ScenarioResult(nil), results.Scenarios...)
	sort.SliceStable(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	return scenarios
}
