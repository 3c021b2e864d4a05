package domain

// YearPoint is one year of a projection. Each value is nil outside the
// phase in which it is defined.
type YearPoint struct {
	Year             int      `json:"year"`
	InvestedCapital  *float64 `json:"invested_capital"`
	Wealth           *float64 `json:"wealth"`
	RemainingPension *float64 `json:"remaining_pension"`
}

// IsAccumulation reports whether the year lies in the accumulation phase.
func (yp YearPoint) IsAccumulation() bool { return yp.Wealth != nil }

// IsDecumulation reports whether the year lies in the decumulation phase.
func (yp YearPoint) IsDecumulation() bool { return yp.RemainingPension != nil }

// Phase names the phase of the year; the boundary year belongs to both.
func (yp YearPoint) Phase() string {
	switch {
	case yp.IsAccumulation() && yp.IsDecumulation():
		return "boundary"
	case yp.IsAccumulation():
		return "accumulation"
	case yp.IsDecumulation():
		return "decumulation"
	default:
		return "idle"
	}
}

// ProjectionSeries is the output of a projection: one point per year of the
// horizon plus the derived scalars.
type ProjectionSeries struct {
	Parameters               ProjectionParameters `json:"parameters"`
	Points                   []YearPoint          `json:"points"`
	RetirementBoundaryWealth float64              `json:"retirement_boundary_wealth"`
	ScaleConstant            float64              `json:"scale_constant"`
	ExpectedMonthlyPension   float64              `json:"expected_monthly_pension"`
}

// IsEmpty reports whether the projection produced no points.
func (ps *ProjectionSeries) IsEmpty() bool { return len(ps.Points) == 0 }

// At returns the point for a calendar year.
func (ps *ProjectionSeries) At(year int) (YearPoint, bool) {
	if len(ps.Points) == 0 {
		return YearPoint{}, false
	}
	i := year - ps.Points[0].Year
	if i < 0 || i >= len(ps.Points) {
		return YearPoint{}, false
	}
	return ps.Points[i], true
}

// InvestedCapitalAt returns the invested capital for a year, if defined.
func (ps *ProjectionSeries) InvestedCapitalAt(year int) (float64, bool) {
	yp, ok := ps.At(year)
	if !ok || yp.InvestedCapital == nil {
		return 0, false
	}
	return *yp.InvestedCapital, true
}

// WealthAt returns the wealth for a year, if defined.
func (ps *ProjectionSeries) WealthAt(year int) (float64, bool) {
	yp, ok := ps.At(year)
	if !ok || yp.Wealth == nil {
		return 0, false
	}
	return *yp.Wealth, true
}

// RemainingPensionAt returns the remaining pension for a year, if defined.
func (ps *ProjectionSeries) RemainingPensionAt(year int) (float64, bool) {
	yp, ok := ps.At(year)
	if !ok || yp.RemainingPension == nil {
		return 0, false
	}
	return *yp.RemainingPension, true
}

// Scenario is a named parameter set.
type Scenario struct {
	Name       string               `yaml:"name" json:"name"`
	Parameters ProjectionParameters `yaml:",inline" json:"parameters"`
}

// ScenarioResult pairs a scenario with its projection.
type ScenarioResult struct {
	Name   string           `json:"name"`
	Series ProjectionSeries `json:"series"`
}

// ScenarioComparison is the result of projecting several scenarios.
type ScenarioComparison struct {
	Scenarios           []ScenarioResult `json:"scenarios"`
	RecommendedScenario string           `json:"recommended_scenario"`
	Assumptions         []string         `json:"assumptions"`
}

// Configuration is a scenario file: a baseline plus named variations of it.
type Configuration struct {
	Baseline  ProjectionParameters `yaml:"baseline" json:"baseline"`
	Scenarios []Scenario           `yaml:"scenarios" json:"scenarios"`
}
