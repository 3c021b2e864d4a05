package calculation

import (
	"math"

	"github.com/pensionview/retirement-projection/internal/domain"
)

// degenerateTolerance guards every closed form whose denominator vanishes when
// two rates coincide.
const degenerateTolerance = 1e-4

// monthsPerYear converts the monthly deposit into a yearly contribution.
const monthsPerYear = 12

// AccumulationPoint is one year of the accumulation phase.
type AccumulationPoint struct {
	Year            int
	InvestedCapital float64
	Wealth          float64
}

// ratesCoincide reports whether g and r are equal within a relative tolerance.
func ratesCoincide(g, r float64) bool {
	return math.Abs(g-r) <= degenerateTolerance*math.Max(1, math.Abs(r))
}

// InvestedCapital returns the nominal sum of contributions after x elapsed
// years, seeded by the initial capital. No market growth is applied.
func InvestedCapital(p domain.ProjectionParameters, x int) float64 {
	if x <= 0 {
		return p.InitialCapital
	}
	yearly := p.MonthlyDeposit * monthsPerYear
	g := p.DepositGrowthRate.Fraction()
	if math.Abs(g) < degenerateTolerance {
		return p.InitialCapital + yearly*float64(x)
	}
	return p.InitialCapital + yearly*(math.Pow(1+g, float64(x))-1)/g
}

// Wealth returns the compounded account value after x elapsed years: the
// initial capital grown at the market rate plus the future value of a deposit
// stream that itself grows at the deposit growth rate.
func Wealth(p domain.ProjectionParameters, x int) float64 {
	if x <= 0 {
		return p.InitialCapital
	}
	g := p.DepositGrowthRate.Fraction()
	r := p.MarketRate.Fraction()
	if ratesCoincide(g, r) {
		return wealthLimit(p, x)
	}
	return wealthGeneral(p, x)
}

func wealthGeneral(p domain.ProjectionParameters, x int) float64 {
	g := p.DepositGrowthRate.Fraction()
	r := p.MarketRate.Fraction()
	n := float64(x)
	seed := p.InitialCapital * math.Pow(1+r, n)
	stream := p.MonthlyDeposit * monthsPerYear * (math.Pow(1+g, n) - math.Pow(1+r, n)) / (g - r)
	return seed + stream
}

// wealthLimit is the g -> r limit of wealthGeneral.
func wealthLimit(p domain.ProjectionParameters, x int) float64 {
	g := p.DepositGrowthRate.Fraction()
	r := p.MarketRate.Fraction()
	n := float64(x)
	seed := p.InitialCapital * math.Pow(1+r, n)
	stream := p.MonthlyDeposit * monthsPerYear * n * math.Pow(1+g, n-1)
	return seed + stream
}

// Accumulate returns the accumulation series over
// [CurrentYear, min(RetirementStartYear, LastYear)]. Degenerate parameters
// yield an empty slice.
func Accumulate(p domain.ProjectionParameters) []AccumulationPoint {
	if p.IsDegenerate() {
		return nil
	}
	end := p.RetirementStartYear
	if p.LastYear < end {
		end = p.LastYear
	}
	points := make([]AccumulationPoint, 0, end-p.CurrentYear+1)
	for year := p.CurrentYear; year <= end; year++ {
		x := year - p.CurrentYear
		points = append(points, AccumulationPoint{
			Year:            year,
			InvestedCapital: InvestedCapital(p, x),
			Wealth:          Wealth(p, x),
		})
	}
	return points
}
