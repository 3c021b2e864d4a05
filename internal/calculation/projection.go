package calculation

import "github.com/pensionview/retirement-projection/internal/domain"

// Project runs the three stages of the projection and assembles one point per
// year of [CurrentYear, LastYear].
//
// The retirement-boundary wealth is taken from the accumulation series when the
// boundary lies inside the horizon, and otherwise from the same Wealth closed
// form, so the charted value and the annuitized value can never diverge.
// Degenerate parameters yield an empty series with zero scalars.
func Project(p domain.ProjectionParameters) domain.ProjectionSeries {
	series := domain.ProjectionSeries{Parameters: p}
	if p.IsDegenerate() {
		return series
	}

	accumulation := Accumulate(p)
	boundary := boundaryWealth(p, accumulation)

	g := p.RetirementGrowthRate.Fraction()
	r := p.MarketRate.Fraction()
	c := Annuitize(boundary, g, r, p.RetirementDuration)
	decumulation := Decumulate(p, boundary, c)

	series.RetirementBoundaryWealth = boundary
	series.ScaleConstant = c
	series.ExpectedMonthlyPension = ExpectedMonthlyPension(boundary, g, r, p.RetirementDuration)
	series.Points = assemblePoints(p, accumulation, decumulation)
	return series
}

func boundaryWealth(p domain.ProjectionParameters, accumulation []AccumulationPoint) float64 {
	if n := len(accumulation); n > 0 && accumulation[n-1].Year == p.RetirementStartYear {
		return accumulation[n-1].Wealth
	}
	return Wealth(p, p.YearsUntilRetirement())
}

func assemblePoints(p domain.ProjectionParameters, accumulation []AccumulationPoint, decumulation []DecumulationPoint) []domain.YearPoint {
	points := make([]domain.YearPoint, p.YearsToProject())
	for i := range points {
		points[i].Year = p.CurrentYear + i
	}
	for _, ap := range accumulation {
		i := ap.Year - p.CurrentYear
		invested, wealth := ap.InvestedCapital, ap.Wealth
		points[i].InvestedCapital = &invested
		points[i].Wealth = &wealth
	}
	for _, dp := range decumulation {
		i := dp.Year - p.CurrentYear
		remaining := dp.RemainingPension
		points[i].RemainingPension = &remaining
	}
	return points
}
