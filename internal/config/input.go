package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/pensionview/retirement-projection/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrInvalidParameters is wrapped by every validation failure.
var ErrInvalidParameters = errors.New("invalid projection parameters")

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// scenarioFile is the on-disk layout. Scenario entries only name the
// parameters they change; everything else is taken from the baseline.
type scenarioFile struct {
	Baseline  domain.ProjectionParameters `yaml:"baseline"`
	Scenarios []scenarioOverride          `yaml:"scenarios"`
}

type scenarioOverride struct {
	Name                 string       `yaml:"name"`
	CurrentYear          *int         `yaml:"current_year"`
	LastYear             *int         `yaml:"last_year"`
	MonthlyDeposit       *float64     `yaml:"monthly_deposit"`
	DepositGrowthRate    *domain.Rate `yaml:"deposit_growth_rate"`
	MarketRate           *domain.Rate `yaml:"market_rate"`
	RetirementStartYear  *int         `yaml:"retirement_start_year"`
	RetirementGrowthRate *domain.Rate `yaml:"retirement_growth_rate"`
	RetirementDuration   *int         `yaml:"retirement_duration"`
	InitialCapital       *float64     `yaml:"initial_capital"`
}

func (o scenarioOverride) apply(base domain.ProjectionParameters) domain.Scenario {
	p := base
	setInt(&p.CurrentYear, o.CurrentYear)
	setInt(&p.LastYear, o.LastYear)
	setFloat(&p.MonthlyDeposit, o.MonthlyDeposit)
	setRate(&p.DepositGrowthRate, o.DepositGrowthRate)
	setRate(&p.MarketRate, o.MarketRate)
	setInt(&p.RetirementStartYear, o.RetirementStartYear)
	setRate(&p.RetirementGrowthRate, o.RetirementGrowthRate)
	setInt(&p.RetirementDuration, o.RetirementDuration)
	setFloat(&p.InitialCapital, o.InitialCapital)
	return domain.Scenario{Name: o.Name, Parameters: p}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setRate(dst *domain.Rate, v *domain.Rate) {
	if v != nil {
		*dst = *v
	}
}

// LoadFromFile loads a scenario file from YAML
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a scenario file.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config := &domain.Configuration{Baseline: file.Baseline}
	for _, o := range file.Scenarios {
		config.Scenarios = append(config.Scenarios, o.apply(file.Baseline))
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// ValidateConfiguration validates the baseline and every scenario.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ValidateParameters(config.Baseline); err != nil {
		return fmt.Errorf("baseline: %w", err)
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if scenario.Name == "" {
			return fmt.Errorf("scenario %d: name is required: %w", i, ErrInvalidParameters)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %q: duplicate name: %w", scenario.Name, ErrInvalidParameters)
		}
		seen[scenario.Name] = true
		if err := ValidateParameters(scenario.Parameters); err != nil {
			return fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
	}
	return nil
}

// ValidateParameters rejects inputs the projection engine would accept but
// turn into meaningless numbers: negative money, non-finite or total-loss
// rates, and a retirement before the projection starts.
func ValidateParameters(p domain.ProjectionParameters) error {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidParameters)
	}

	if p.CurrentYear < domain.MinYear || p.CurrentYear > domain.MaxYear {
		return invalid("current year %d must lie between %d and %d", p.CurrentYear, domain.MinYear, domain.MaxYear)
	}
	if p.LastYear < p.CurrentYear {
		return invalid("last year %d is before current year %d", p.LastYear, p.CurrentYear)
	}
	if p.LastYear-p.CurrentYear >= domain.MaxProjectionYears {
		return invalid("last year %d is more than %d years after current year %d", p.LastYear, domain.MaxProjectionYears-1, p.CurrentYear)
	}
	if p.RetirementStartYear < p.CurrentYear {
		return invalid("retirement start year %d is before current year %d", p.RetirementStartYear, p.CurrentYear)
	}
	if p.RetirementStartYear-p.CurrentYear > domain.MaxProjectionYears {
		return invalid("retirement start year %d is more than %d years after current year %d", p.RetirementStartYear, domain.MaxProjectionYears, p.CurrentYear)
	}
	if p.RetirementDuration < 0 {
		return invalid("retirement duration cannot be negative")
	}
	if p.RetirementDuration > domain.MaxProjectionYears {
		return invalid("retirement duration cannot exceed %d years", domain.MaxProjectionYears)
	}
	if !isFinite(p.MonthlyDeposit) || p.MonthlyDeposit < 0 {
		return invalid("monthly deposit must be a non-negative amount")
	}
	if !isFinite(p.InitialCapital) || p.InitialCapital < 0 {
		return invalid("initial capital must be a non-negative amount")
	}

	rates := []struct {
		name string
		rate domain.Rate
	}{
		{"deposit growth rate", p.DepositGrowthRate},
		{"market rate", p.MarketRate},
		{"retirement growth rate", p.RetirementGrowthRate},
	}
	for _, r := range rates {
		if !r.rate.IsFinite() {
			return invalid("%s must be a finite number", r.name)
		}
		if r.rate.Fraction() <= -1 {
			return invalid("%s cannot be -100%% or less", r.name)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CreateExampleConfiguration creates an example scenario file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	baseline := domain.ProjectionParameters{
		CurrentYear:          2025,
		LastYear:             2080,
		MonthlyDeposit:       300,
		DepositGrowthRate:    domain.RateFromPercent(1),
		MarketRate:           domain.RateFromPercent(6.1),
		RetirementStartYear:  2055,
		RetirementGrowthRate: domain.RateFromPercent(2),
		RetirementDuration:   20,
		InitialCapital:       0,
	}

	later := baseline
	later.RetirementStartYear = 2060

	higher := baseline.WithMonthlyDeposit(450)

	seeded := baseline
	seeded.InitialCapital = 10000

	return &domain.Configuration{
		Baseline: baseline,
		Scenarios: []domain.Scenario{
			{Name: "Baseline", Parameters: baseline},
			{Name: "Retire 2060", Parameters: later},
			{Name: "Higher Deposit", Parameters: higher},
			{Name: "Seed Capital", Parameters: seeded},
		},
	}
}
