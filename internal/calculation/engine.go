package calculation

import (
	"context"
	"fmt"

	"github.com/pensionview/retirement-projection/internal/domain"
	"golang.org/x/sync/errgroup"
)

// ProjectionEngine orchestrates projections for one or more scenarios.
type ProjectionEngine struct {
	Memo   *Memoizer // optional; nil projects every call afresh
	Debug  bool      // log per-year detail of each projection
	Logger Logger
}

// NewProjectionEngine creates a new projection engine
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// NewMemoizedProjectionEngine creates an engine that caches up to limit projections.
func NewMemoizedProjectionEngine(limit int) *ProjectionEngine {
	pe := NewProjectionEngine()
	pe.Memo = NewMemoizer(limit)
	return pe
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

func (pe *ProjectionEngine) logger() Logger {
	if pe.Logger == nil {
		return NopLogger{}
	}
	return pe.Logger
}

// Project runs a single projection.
func (pe *ProjectionEngine) Project(p domain.ProjectionParameters) domain.ProjectionSeries {
	var series domain.ProjectionSeries
	if pe.Memo != nil {
		series = pe.Memo.Project(p)
	} else {
		series = Project(p)
	}

	log := pe.logger()
	if series.IsEmpty() {
		log.Warnf("empty projection for %d-%d (retirement %d, duration %d)",
			p.CurrentYear, p.LastYear, p.RetirementStartYear, p.RetirementDuration)
		return series
	}
	log.Debugf("projected %d years: boundary wealth %.2f, scale %.4f, monthly pension %.2f",
		len(series.Points), series.RetirementBoundaryWealth, series.ScaleConstant, series.ExpectedMonthlyPension)
	if pe.Debug {
		for _, yp := range series.Points {
			log.Debugf("  %d %-12s invested=%s wealth=%s remaining=%s",
				yp.Year, yp.Phase(), fmtOpt(yp.InvestedCapital), fmtOpt(yp.Wealth), fmtOpt(yp.RemainingPension))
		}
	}
	return series
}

// RunScenario projects a single named scenario.
func (pe *ProjectionEngine) RunScenario(ctx context.Context, scenario domain.Scenario) (*domain.ScenarioResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}
	series := pe.Project(scenario.Parameters)
	return &domain.ScenarioResult{Name: scenario.Name, Series: series}, nil
}

// RunScenarios projects every scenario of the configuration concurrently and
// returns the results in configuration order together with a recommendation.
func (pe *ProjectionEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	scenarios := config.Scenarios
	if len(scenarios) == 0 {
		scenarios = []domain.Scenario{{Name: "Baseline", Parameters: config.Baseline}}
	}

	results := make([]domain.ScenarioResult, len(scenarios))
	g, gctx := errgroup.WithContext(ctx)
	for i, scenario := range scenarios {
		g.Go(func() error {
			res, err := pe.RunScenario(gctx, scenario)
			if err != nil {
				return err
			}
			results[i] = *res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("RunScenarios failed: %w", err)
	}

	comparison := &domain.ScenarioComparison{
		Scenarios:   results,
		Assumptions: GenerateAssumptions(config.Baseline),
	}
	comparison.RecommendedScenario = Recommend(results)
	pe.logger().Infof("projected %d scenarios, recommended %q", len(results), comparison.RecommendedScenario)
	return comparison, nil
}

// Recommend returns the scenario with the highest expected monthly pension.
// Ties keep the earlier scenario; empty projections never win.
func Recommend(results []domain.ScenarioResult) string {
	best := ""
	bestPension := 0.0
	for _, res := range results {
		if res.Series.IsEmpty() {
			continue
		}
		if best == "" || res.Series.ExpectedMonthlyPension > bestPension {
			best = res.Name
			bestPension = res.Series.ExpectedMonthlyPension
		}
	}
	return best
}

// GenerateAssumptions describes the modeling assumptions of a parameter set.
func GenerateAssumptions(p domain.ProjectionParameters) []string {
	return []string{
		fmt.Sprintf("Market return: %.1f%% annually, both phases", p.MarketRate.Percent()),
		fmt.Sprintf("Deposit growth: %.1f%% annually until retirement", p.DepositGrowthRate.Percent()),
		fmt.Sprintf("Payout growth: %.1f%% annually over %d years", p.RetirementGrowthRate.Percent(), p.RetirementDuration),
		"Deposits are yearly aggregates of the monthly amount; no taxes or fees",
	}
}

func fmtOpt(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}
