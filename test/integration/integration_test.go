package integration

import (
	"context"
	"math"
	"testing"

	"github.com/pensionview/retirement-projection/internal/calculation"
	"github.com/pensionview/retirement-projection/internal/config"
	"github.com/pensionview/retirement-projection/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadExample(t *testing.T) *domain.Configuration {
	t.Helper()
	cfg, err := config.NewInputParser().LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)
	return cfg
}

func TestEndToEndCalculation(t *testing.T) {
	cfg := loadExample(t)
	require.Len(t, cfg.Scenarios, 2)
	assert.InDelta(t, 0.061, cfg.Scenarios[1].Parameters.MarketRate.Fraction(), 1e-12, "inherited from the baseline")
	assert.Equal(t, 5000.0, cfg.Scenarios[1].Parameters.InitialCapital)

	results, err := calculation.NewProjectionEngine().RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, results.Scenarios, 2)
	assert.Equal(t, "Retire 2060 with savings", results.RecommendedScenario)

	baseline := results.Scenarios[0].Series
	assert.InDelta(t, 321913.21, baseline.RetirementBoundaryWealth, 0.01)
	assert.InDelta(t, 24202.644, baseline.ScaleConstant, 0.001)
	assert.InDelta(t, 1486.696, baseline.ExpectedMonthlyPension, 0.001)

	invested, ok := baseline.InvestedCapitalAt(2025)
	require.True(t, ok)
	assert.Equal(t, 0.0, invested)
	wealth, _ := baseline.WealthAt(2055)
	invested, _ = baseline.InvestedCapitalAt(2055)
	assert.Greater(t, wealth, invested)

	remaining, ok := baseline.RemainingPensionAt(2055)
	require.True(t, ok)
	assert.InDelta(t, wealth, remaining, 1e-6*wealth, "boundary continuity")

	prev := remaining
	closest := math.Inf(1)
	closestYear := 0
	for year := 2056; year <= 2075; year++ {
		v, ok := baseline.RemainingPensionAt(year)
		require.True(t, ok, "year %d", year)
		assert.Less(t, v, prev, "year %d", year)
		prev = v
		if math.Abs(v) < closest {
			closest, closestYear = math.Abs(v), year
		}
	}
	assert.Equal(t, 2075, closestYear)
	assert.InDelta(t, 0, closest, 1e-6)

	_, ok = baseline.RemainingPensionAt(2076)
	assert.False(t, ok)
}

func TestProjectionIsIdempotent(t *testing.T) {
	cfg := loadExample(t)
	p := cfg.Scenarios[1].Parameters
	assert.Equal(t, calculation.Project(p), calculation.Project(p))

	memo := calculation.NewMemoizedProjectionEngine(8)
	assert.Equal(t, calculation.Project(p), memo.Project(p))
	assert.Equal(t, memo.Project(p), memo.Project(p))
}

func TestInvalidScenarioFileIsRejected(t *testing.T) {
	_, err := config.NewInputParser().Parse([]byte(`
baseline:
  current_year: 2025
  last_year: 2080
  monthly_deposit: -300
  retirement_start_year: 2055
  retirement_duration: 20
`))
	assert.ErrorIs(t, err, config.ErrInvalidParameters)
}
