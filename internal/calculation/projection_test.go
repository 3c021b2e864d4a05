package calculation

import (
	"math"
	"testing"

	"github.com/pensionview/retirement-projection/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectEndToEndScenario(t *testing.T) {
	series := Project(scenarioParams())
	require.Len(t, series.Points, 56)

	invested, ok := series.InvestedCapitalAt(2025)
	require.True(t, ok)
	assert.Equal(t, 0.0, invested)
	wealth, ok := series.WealthAt(2025)
	require.True(t, ok)
	assert.Equal(t, 0.0, wealth)

	invested, _ = series.InvestedCapitalAt(2055)
	wealth, _ = series.WealthAt(2055)
	assert.Greater(t, wealth, invested)
	assert.InDelta(t, 321913.21, series.RetirementBoundaryWealth, 0.01)
	assert.InDelta(t, 24202.644, series.ScaleConstant, 0.001)
	assert.InDelta(t, 1486.696, series.ExpectedMonthlyPension, 0.001)

	prev := math.Inf(1)
	closest := math.Inf(1)
	closestYear := 0
	for year := 2055; year <= 2075; year++ {
		remaining, ok := series.RemainingPensionAt(year)
		require.True(t, ok, "year %d", year)
		if year >= 2056 {
			assert.Less(t, remaining, prev, "year %d", year)
		}
		if math.Abs(remaining) < closest {
			closest = math.Abs(remaining)
			closestYear = year
		}
		prev = remaining
	}
	assert.Equal(t, 2075, closestYear)

	// No accumulation values after retirement, no payout values outside the window.
	_, ok = series.WealthAt(2056)
	assert.False(t, ok)
	_, ok = series.RemainingPensionAt(2054)
	assert.False(t, ok)
	_, ok = series.RemainingPensionAt(2076)
	assert.False(t, ok)
	_, ok = series.At(2081)
	assert.False(t, ok)
	_, ok = series.At(2024)
	assert.False(t, ok)
}

func TestProjectBoundaryContinuity(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *domain.ProjectionParameters)
	}{
		{"scenario", func(p *domain.ProjectionParameters) {}},
		{"with capital", func(p *domain.ProjectionParameters) { p.InitialCapital = 50000 }},
		{"deposit growth equals market", func(p *domain.ProjectionParameters) { p.DepositGrowthRate = p.MarketRate }},
		{"payout growth equals market", func(p *domain.ProjectionParameters) { p.RetirementGrowthRate = p.MarketRate }},
		{"retire now", func(p *domain.ProjectionParameters) { p.RetirementStartYear = p.CurrentYear; p.InitialCapital = 1000 }},
		{"retire at horizon", func(p *domain.ProjectionParameters) { p.RetirementStartYear = p.LastYear }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := scenarioParams()
			tt.modify(&p)
			series := Project(p)

			wealth, ok := series.WealthAt(p.RetirementStartYear)
			require.True(t, ok)
			remaining, ok := series.RemainingPensionAt(p.RetirementStartYear)
			require.True(t, ok)
			assert.Equal(t, wealth, remaining)
			assert.Equal(t, wealth, series.RetirementBoundaryWealth)

			yp, _ := series.At(p.RetirementStartYear)
			assert.Equal(t, "boundary", yp.Phase())
		})
	}
}

func TestProjectExhaustsWealth(t *testing.T) {
	for _, duration := range []int{5, 20, 35} {
		p := scenarioParams()
		p.InitialCapital = 20000
		p.RetirementDuration = duration
		p.LastYear = p.RetirementStartYear + duration
		series := Project(p)

		remaining, ok := series.RemainingPensionAt(p.RetirementEndYear())
		require.True(t, ok, "duration %d", duration)
		assert.InDelta(t, 0, remaining, 0.5, "duration %d", duration)

		// One year before the end the general branch is still in use.
		before, _ := series.RemainingPensionAt(p.RetirementEndYear() - 1)
		assert.Greater(t, before, 0.0)
	}
}

func TestProjectIsIdempotent(t *testing.T) {
	p := scenarioParams()
	p.InitialCapital = 7500
	first := Project(p)
	second := Project(p)
	assert.Equal(t, first, second)
}

func TestProjectDegenerateParametersYieldEmptySeries(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *domain.ProjectionParameters)
	}{
		{"horizon reversed", func(p *domain.ProjectionParameters) { p.LastYear = p.CurrentYear - 1 }},
		{"negative duration", func(p *domain.ProjectionParameters) { p.RetirementDuration = -1 }},
		{"retirement in the past", func(p *domain.ProjectionParameters) { p.RetirementStartYear = p.CurrentYear - 5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := scenarioParams()
			tt.modify(&p)
			series := Project(p)
			assert.True(t, series.IsEmpty())
			assert.Zero(t, series.RetirementBoundaryWealth)
			assert.Zero(t, series.ExpectedMonthlyPension)
		})
	}
}

func TestProjectRetirementBeyondHorizon(t *testing.T) {
	p := scenarioParams()
	p.LastYear = 2040
	series := Project(p)

	require.Len(t, series.Points, 16)
	for _, yp := range series.Points {
		assert.Nil(t, yp.RemainingPension, "year %d", yp.Year)
		assert.NotNil(t, yp.Wealth, "year %d", yp.Year)
	}
	// The boundary still comes from the same closed form.
	assert.Equal(t, Wealth(p, 30), series.RetirementBoundaryWealth)
	assert.Greater(t, series.ExpectedMonthlyPension, 0.0)
}

func TestProjectIdleYearsAfterPayoutWindow(t *testing.T) {
	series := Project(scenarioParams())
	yp, ok := series.At(2080)
	require.True(t, ok)
	assert.Equal(t, "idle", yp.Phase())
	assert.Nil(t, yp.InvestedCapital)
	assert.Nil(t, yp.Wealth)
	assert.Nil(t, yp.RemainingPension)
}

func TestProjectExtremeYearsYieldEmptySeries(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *domain.ProjectionParameters)
	}{
		{"span overflows int", func(p *domain.ProjectionParameters) {
			p.CurrentYear = math.MinInt64 + 1
			p.LastYear = math.MaxInt64
		}},
		{"horizon of two billion years", func(p *domain.ProjectionParameters) { p.LastYear = 2000000000 }},
		{"last year at max int", func(p *domain.ProjectionParameters) {
			p.CurrentYear = math.MaxInt64 - 5
			p.LastYear = math.MaxInt64
			p.RetirementStartYear = math.MaxInt64 - 2
		}},
		{"retirement end overflows", func(p *domain.ProjectionParameters) { p.RetirementStartYear = math.MaxInt64 }},
		{"duration overflows", func(p *domain.ProjectionParameters) { p.RetirementDuration = math.MaxInt64 }},
		{"horizon one year too long", func(p *domain.ProjectionParameters) { p.LastYear = p.CurrentYear + domain.MaxProjectionYears }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := scenarioParams()
			tt.modify(&p)
			var series domain.ProjectionSeries
			require.NotPanics(t, func() { series = Project(p) })
			assert.True(t, series.IsEmpty())
			assert.Zero(t, series.ExpectedMonthlyPension)
		})
	}
}

func TestProjectLongestHorizon(t *testing.T) {
	p := scenarioParams()
	p.LastYear = p.CurrentYear + domain.MaxProjectionYears - 1
	series := Project(p)
	assert.Len(t, series.Points, domain.MaxProjectionYears)
}
