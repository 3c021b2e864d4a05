package output

import (
	"github.com/pensionview/retirement-projection/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultAssumptions lists the modeling assumptions that hold for every projection.
var DefaultAssumptions = []string{
	"Deposits are yearly aggregates of the monthly amount, growing once a year",
	"One market return applies to both the saving and the payout phase",
	"Payouts grow by a fixed rate and exhaust the wealth exactly at the end of the payout phase",
	"No taxes, fees or inflation adjustment",
}

// assumptionsFor returns the assumptions recorded with results, or the defaults.
func assumptionsFor(results *domain.ScenarioComparison) []string {
	if len(results.Assumptions) > 0 {
		return results.Assumptions
	}
	return DefaultAssumptions
}

var decimalHundred = decimal.NewFromInt(100)
