package output

import (
	"github.com/pensionview/retirement-projection/internal/calculation"
	"github.com/pensionview/retirement-projection/internal/domain"
	money "github.com/pensionview/retirement-projection/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName           string
	ExpectedMonthlyPension decimal.Decimal
	PensionChange          decimal.Decimal // against the first scenario
	PercentageChange       decimal.Decimal
}

// AnalyzeScenarios compares the recommended scenario with the first one,
// which scenario files use as the baseline.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if len(results.Scenarios) == 0 {
		return Recommendation{}
	}
	name := results.RecommendedScenario
	if name == "" {
		name = calculation.Recommend(results.Scenarios)
	}
	if name == "" {
		return Recommendation{}
	}

	var best domain.ScenarioResult
	for _, sc := range results.Scenarios {
		if sc.Name == name {
			best = sc
			break
		}
	}
	baseline := money.NewMoney(results.Scenarios[0].Series.ExpectedMonthlyPension).Decimal
	pension := money.NewMoney(best.Series.ExpectedMonthlyPension).Decimal
	delta := pension.Sub(baseline)
	pct := decimal.Zero
	if !baseline.IsZero() {
		pct = delta.Div(baseline).Mul(decimalHundred)
	}
	return Recommendation{ScenarioName: name, ExpectedMonthlyPension: pension, PensionChange: delta, PercentageChange: pct}
}
