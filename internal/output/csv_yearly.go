package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/pensionview/retirement-projection/internal/domain"
)

// CSVYearlyExporter writes one row per scenario and year, rounded to whole
// currency units. Cells outside a value's phase are empty.
type CSVYearlyExporter struct{}

func (c CSVYearlyExporter) Name() string { return "csv" }

func (c CSVYearlyExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "InvestedCapital", "Wealth", "RemainingPension"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedScenarios(results) {
		for _, yp := range sc.Series.Points {
			row := []string{
				sc.Name,
				strconv.Itoa(yp.Year),
				plain(yp.InvestedCapital, 0),
				plain(yp.Wealth, 0),
				plain(yp.RemainingPension, 0),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
