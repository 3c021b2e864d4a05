package domain

import "math"

// Year bounds of a projection. Years outside [MinYear, MaxYear] and spans
// longer than MaxProjectionYears are degenerate, which keeps every year
// computation far from integer overflow.
const (
	MinYear            = 1
	MaxYear            = 9999
	MaxProjectionYears = 200
)

// ProjectionParameters is the complete, immutable input of one projection.
// Money amounts are nominal currency units; rates are fractions (see Rate).
type ProjectionParameters struct {
	CurrentYear          int     `yaml:"current_year" json:"current_year"`
	LastYear             int     `yaml:"last_year" json:"last_year"`
	MonthlyDeposit       float64 `yaml:"monthly_deposit" json:"monthly_deposit"`
	DepositGrowthRate    Rate    `yaml:"deposit_growth_rate" json:"deposit_growth_rate"`
	MarketRate           Rate    `yaml:"market_rate" json:"market_rate"`
	RetirementStartYear  int     `yaml:"retirement_start_year" json:"retirement_start_year"`
	RetirementGrowthRate Rate    `yaml:"retirement_growth_rate" json:"retirement_growth_rate"`
	RetirementDuration   int     `yaml:"retirement_duration" json:"retirement_duration"`
	InitialCapital       float64 `yaml:"initial_capital" json:"initial_capital"`
}

// YearsToProject returns the inclusive length of the projection horizon.
// Out-of-range years project nothing.
func (p ProjectionParameters) YearsToProject() int {
	if !p.yearsInRange() || p.LastYear < p.CurrentYear {
		return 0
	}
	return p.LastYear - p.CurrentYear + 1
}

// YearsUntilRetirement is the elapsed-years index of the retirement boundary.
func (p ProjectionParameters) YearsUntilRetirement() int {
	return p.RetirementStartYear - p.CurrentYear
}

// RetirementEndYear is the last year of the decumulation window, saturating
// at the int bounds.
func (p ProjectionParameters) RetirementEndYear() int {
	switch {
	case p.RetirementDuration > 0 && p.RetirementStartYear > math.MaxInt-p.RetirementDuration:
		return math.MaxInt
	case p.RetirementDuration < 0 && p.RetirementStartYear < math.MinInt-p.RetirementDuration:
		return math.MinInt
	}
	return p.RetirementStartYear + p.RetirementDuration
}

// IsDegenerate reports parameter combinations for which the engine produces
// an empty series instead of a projection.
func (p ProjectionParameters) IsDegenerate() bool {
	if !p.yearsInRange() {
		return true
	}
	return p.LastYear < p.CurrentYear ||
		p.RetirementDuration < 0 ||
		p.RetirementStartYear < p.CurrentYear ||
		p.LastYear-p.CurrentYear >= MaxProjectionYears ||
		p.RetirementStartYear-p.CurrentYear > MaxProjectionYears ||
		p.RetirementDuration > MaxProjectionYears
}

// yearsInRange bounds the horizon years. Once it holds, differences of
// CurrentYear against LastYear or a not-earlier RetirementStartYear cannot wrap.
func (p ProjectionParameters) yearsInRange() bool {
	return p.CurrentYear >= MinYear && p.LastYear <= MaxYear &&
		p.RetirementStartYear <= MaxYear+MaxProjectionYears
}

// WithMonthlyDeposit returns a copy with a different monthly deposit.
func (p ProjectionParameters) WithMonthlyDeposit(deposit float64) ProjectionParameters {
	p.MonthlyDeposit = deposit
	return p
}
