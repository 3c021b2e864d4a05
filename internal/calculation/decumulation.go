package calculation

import (
	"math"

	"github.com/pensionview/retirement-projection/internal/domain"
)

// DecumulationPoint is one year of the decumulation phase.
type DecumulationPoint struct {
	Year             int
	RemainingPension float64
}

// RemainingPension returns the balance left k years after retirement for a
// payout scaled by c, growing at g, while the balance earns r over duration years.
// At k == 0 it is the boundary wealth.
func RemainingPension(wealth, c, g, r float64, duration, k int) float64 {
	if k <= 0 {
		return wealth
	}
	yearsLeft := duration - k
	factor1 := math.Pow(1+g, float64(k))
	factor2 := math.Pow((1+g)/(1+r), float64(yearsLeft)) - 1
	if math.Abs(g-r) < degenerateTolerance || math.Abs(factor2) < degenerateTolerance {
		return c * float64(yearsLeft)
	}
	return c * factor1 * factor2 / (g - r)
}

// Decumulate returns the decumulation series over
// [RetirementStartYear, RetirementStartYear+RetirementDuration] clipped to the
// projection horizon.
func Decumulate(p domain.ProjectionParameters, wealth, c float64) []DecumulationPoint {
	if p.IsDegenerate() {
		return nil
	}
	g := p.RetirementGrowthRate.Fraction()
	r := p.MarketRate.Fraction()
	start := p.RetirementStartYear
	if start < p.CurrentYear {
		start = p.CurrentYear
	}
	end := p.RetirementEndYear()
	if end > p.LastYear {
		end = p.LastYear
	}
	if end < start {
		return nil
	}
	points := make([]DecumulationPoint, 0, end-start+1)
	for year := start; year <= end; year++ {
		k := year - p.RetirementStartYear
		points = append(points, DecumulationPoint{
			Year:             year,
			RemainingPension: RemainingPension(wealth, c, g, r, p.RetirementDuration, k),
		})
	}
	return points
}

// ExpectedMonthlyPension summarizes the decumulation phase as one monthly figure.
//
// The growth-adjusted total is divided by the number of months and then once
// more by 12. The second division looks like a unit slip but is the figure the
// dashboard has always shown; it is kept until product confirms the intent.
func ExpectedMonthlyPension(wealth, g, r float64, duration int) float64 {
	if duration <= 0 {
		return 0
	}
	// Only collapsed rates switch to the flat total.
	var adjustedTotal float64
	if math.Abs(g-r) < degenerateTolerance {
		adjustedTotal = wealth * float64(duration)
	} else {
		adjustedTotal = wealth * (math.Pow((1+g)/(1+r), float64(duration)) - 1) / (g - r)
	}
	return adjustedTotal / float64(duration*monthsPerYear) / monthsPerYear
}
