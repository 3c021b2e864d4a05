package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/pensionview/retirement-projection/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `baseline:
  current_year: 2025
  last_year: 2080
  monthly_deposit: 300
  deposit_growth_rate: 1
  market_rate: 6.1
  retirement_start_year: 2055
  retirement_growth_rate: 2
  retirement_duration: 20
  initial_capital: 0

scenarios:
  - name: "Baseline"
  - name: "Retire Later"
    retirement_start_year: 2060
  - name: "Cautious Market"
    market_rate: 4.5
    monthly_deposit: 400
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTemp(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, 2025, config.Baseline.CurrentYear)
	assert.InDelta(t, 0.061, config.Baseline.MarketRate.Fraction(), 1e-12, "rates are written in percent")
	assert.InDelta(t, 0.01, config.Baseline.DepositGrowthRate.Fraction(), 1e-12)
	require.Len(t, config.Scenarios, 3)

	assert.Equal(t, config.Baseline, config.Scenarios[0].Parameters)

	later := config.Scenarios[1].Parameters
	assert.Equal(t, 2060, later.RetirementStartYear)
	assert.Equal(t, config.Baseline.MonthlyDeposit, later.MonthlyDeposit, "unspecified fields come from the baseline")

	cautious := config.Scenarios[2].Parameters
	assert.InDelta(t, 0.045, cautious.MarketRate.Fraction(), 1e-12)
	assert.Equal(t, 400.0, cautious.MonthlyDeposit)
	assert.Equal(t, 2055, cautious.RetirementStartYear)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTemp(t, "baseline: [unclosed"))

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_ValidationFailure(t *testing.T) {
	parser := NewInputParser()
	bad := testConfig + "  - name: \"Broke\"\n    monthly_deposit: -50\n"
	config, err := parser.LoadFromFile(writeTemp(t, bad))

	assert.Nil(t, config)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidParameters)
	assert.Contains(t, err.Error(), `scenario "Broke"`)
}

func TestValidateParameters(t *testing.T) {
	valid := NewInputParser().CreateExampleConfiguration().Baseline
	require.NoError(t, ValidateParameters(valid))

	tests := []struct {
		name   string
		mutate func(p *domain.ProjectionParameters)
		errMsg string
	}{
		{"reversed horizon", func(p *domain.ProjectionParameters) { p.LastYear = p.CurrentYear - 1 }, "last year"},
		{"retirement in the past", func(p *domain.ProjectionParameters) { p.RetirementStartYear = p.CurrentYear - 1 }, "retirement start year"},
		{"negative duration", func(p *domain.ProjectionParameters) { p.RetirementDuration = -1 }, "retirement duration"},
		{"current year out of range", func(p *domain.ProjectionParameters) { p.CurrentYear = math.MinInt64 + 1 }, "current year"},
		{"horizon too long", func(p *domain.ProjectionParameters) { p.LastYear = 2000000000 }, "last year"},
		{"retirement too far out", func(p *domain.ProjectionParameters) { p.RetirementStartYear = math.MaxInt64 }, "retirement start year"},
		{"duration too long", func(p *domain.ProjectionParameters) { p.RetirementDuration = math.MaxInt64 }, "retirement duration"},
		{"negative deposit", func(p *domain.ProjectionParameters) { p.MonthlyDeposit = -1 }, "monthly deposit"},
		{"NaN deposit", func(p *domain.ProjectionParameters) { p.MonthlyDeposit = math.NaN() }, "monthly deposit"},
		{"negative capital", func(p *domain.ProjectionParameters) { p.InitialCapital = -100 }, "initial capital"},
		{"infinite market rate", func(p *domain.ProjectionParameters) { p.MarketRate = domain.Rate(math.Inf(1)) }, "market rate"},
		{"total loss", func(p *domain.ProjectionParameters) { p.MarketRate = domain.RateFromPercent(-100) }, "market rate"},
		{"deposit growth total loss", func(p *domain.ProjectionParameters) { p.DepositGrowthRate = -1.5 }, "deposit growth rate"},
		{"payout growth NaN", func(p *domain.ProjectionParameters) { p.RetirementGrowthRate = domain.Rate(math.NaN()) }, "retirement growth rate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := ValidateParameters(p)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidParameters)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidateParametersAllowsEdgeValues(t *testing.T) {
	p := NewInputParser().CreateExampleConfiguration().Baseline
	p.RetirementDuration = 0
	p.MonthlyDeposit = 0
	p.MarketRate = domain.RateFromPercent(-50)
	p.RetirementStartYear = p.LastYear + 10
	assert.NoError(t, ValidateParameters(p), "retiring past the horizon is allowed")
}

func TestValidateConfiguration_Names(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()
	require.NoError(t, parser.ValidateConfiguration(config))

	config.Scenarios[1].Name = config.Scenarios[0].Name
	err := parser.ValidateConfiguration(config)
	assert.ErrorIs(t, err, ErrInvalidParameters)
	assert.Contains(t, err.Error(), "duplicate")

	config.Scenarios[1].Name = ""
	err = parser.ValidateConfiguration(config)
	assert.Contains(t, err.Error(), "name is required")
}

func TestCreateExampleConfiguration(t *testing.T) {
	config := NewInputParser().CreateExampleConfiguration()
	assert.Len(t, config.Scenarios, 4)
	assert.Equal(t, 2060, config.Scenarios[1].Parameters.RetirementStartYear)
	assert.Equal(t, 450.0, config.Scenarios[2].Parameters.MonthlyDeposit)
	assert.Equal(t, 10000.0, config.Scenarios[3].Parameters.InitialCapital)
}
