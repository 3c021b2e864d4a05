package expense

import (
	"github.com/pensionview/retirement-projection/internal/domain"
	money "github.com/pensionview/retirement-projection/pkg/decimal"
	"github.com/shopspring/decimal"
)

// DefaultCutRatio is the share of discretionary spending a suggestion cuts.
var DefaultCutRatio = decimal.NewFromFloat(0.2)

// Projector runs a projection. *calculation.ProjectionEngine and
// *calculation.Memoizer both satisfy it.
type Projector interface {
	Project(p domain.ProjectionParameters) domain.ProjectionSeries
}

// PotentialSavings suggests cutting each discretionary category of the month
// by cut and redirecting the saving into the monthly deposit. Each suggestion
// carries what the larger deposit adds to the boundary wealth and to the
// expected monthly pension. Suggestions follow the month's category order.
func PotentialSavings(engine Projector, p domain.ProjectionParameters, month domain.MonthSummary, cut decimal.Decimal) []domain.SavingsSuggestion {
	if !cut.IsPositive() || p.IsDegenerate() {
		return nil
	}
	base := engine.Project(p)

	var suggestions []domain.SavingsSuggestion
	for _, cat := range month.Categories {
		if !IsDiscretionary(cat.Name) || !cat.Amount.IsPositive() {
			continue
		}
		saving := cat.Amount.Mul(cut).Round(2)
		deposit := decimal.NewFromFloat(p.MonthlyDeposit).Add(saving)
		adjusted := engine.Project(p.WithMonthlyDeposit(deposit.InexactFloat64()))

		suggestions = append(suggestions, domain.SavingsSuggestion{
			Category:                cat.Name,
			CurrentMonthlySpend:     cat.Amount,
			MonthlySaving:           saving,
			ExtraBoundaryWealth:     difference(adjusted.RetirementBoundaryWealth, base.RetirementBoundaryWealth),
			ExtraMonthlyPension:     difference(adjusted.ExpectedMonthlyPension, base.ExpectedMonthlyPension),
			ResultingMonthlyDeposit: deposit,
		})
	}
	return suggestions
}

func difference(after, before float64) decimal.Decimal {
	return money.NewMoney(after).Sub(money.NewMoney(before)).RoundCents().Decimal
}
