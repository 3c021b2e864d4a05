package output

import (
	"github.com/goccy/go-json"
	"github.com/pensionview/retirement-projection/internal/calculation"
	"github.com/pensionview/retirement-projection/internal/domain"
	money "github.com/pensionview/retirement-projection/pkg/decimal"
)

// JSONFormatter serializes the scenario comparison as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	return json.MarshalIndent(NewComparisonView(results), "", "  ")
}

// PointView is the wire form of a projection year. Values outside their
// phase, and values that are not finite, are null.
type PointView struct {
	Year             int      `json:"year"`
	Phase            string   `json:"phase"`
	InvestedCapital  *float64 `json:"invested_capital"`
	Wealth           *float64 `json:"wealth"`
	RemainingPension *float64 `json:"remaining_pension"`
}

// AxisView is the value range a chart of the series needs.
type AxisView struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SeriesView is the wire form of a projection.
type SeriesView struct {
	Parameters               domain.ProjectionParameters `json:"parameters"`
	Points                   []PointView                 `json:"points"`
	RetirementBoundaryWealth *float64                    `json:"retirement_boundary_wealth"`
	ScaleConstant            *float64                    `json:"scale_constant"`
	ExpectedMonthlyPension   *float64                    `json:"expected_monthly_pension"`
	Axis                     *AxisView                   `json:"axis,omitempty"`
}

// ScenarioView is the wire form of one named projection.
type ScenarioView struct {
	Name   string     `json:"name"`
	Series SeriesView `json:"series"`
}

// ComparisonView is the wire form of a scenario comparison.
type ComparisonView struct {
	Scenarios           []ScenarioView `json:"scenarios"`
	RecommendedScenario string         `json:"recommended_scenario,omitempty"`
	Assumptions         []string       `json:"assumptions"`
}

// NewSeriesView converts a projection into its wire form.
func NewSeriesView(series domain.ProjectionSeries) SeriesView {
	view := SeriesView{
		Parameters:               series.Parameters,
		Points:                   make([]PointView, len(series.Points)),
		RetirementBoundaryWealth: finite(series.RetirementBoundaryWealth),
		ScaleConstant:            finite(series.ScaleConstant),
		ExpectedMonthlyPension:   finite(series.ExpectedMonthlyPension),
	}
	for i, yp := range series.Points {
		view.Points[i] = PointView{
			Year:             yp.Year,
			Phase:            yp.Phase(),
			InvestedCapital:  finitePtr(yp.InvestedCapital),
			Wealth:           finitePtr(yp.Wealth),
			RemainingPension: finitePtr(yp.RemainingPension),
		}
	}
	if b := calculation.AxisBounds(series); b.Valid {
		view.Axis = &AxisView{Min: b.Min, Max: b.Max}
	}
	return view
}

// NewComparisonView converts a scenario comparison into its wire form.
func NewComparisonView(results *domain.ScenarioComparison) ComparisonView {
	view := ComparisonView{
		Scenarios:           make([]ScenarioView, len(results.Scenarios)),
		RecommendedScenario: results.RecommendedScenario,
		Assumptions:         assumptionsFor(results),
	}
	for i, sc := range results.Scenarios {
		view.Scenarios[i] = ScenarioView{Name: sc.Name, Series: NewSeriesView(sc.Series)}
	}
	return view
}

func finite(v float64) *float64 {
	if !money.IsRepresentable(v) {
		return nil
	}
	return &v
}

func finitePtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return finite(*v)
}
