package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pensionview/retirement-projection/internal/domain"
)

const appName = "pensionview"

// Settings holds user preferences read from config.toml.
type Settings struct {
	Projection ProjectionSettings `toml:"projection"`
	Storage    StorageSettings    `toml:"storage"`
	Display    DisplaySettings    `toml:"display"`
	Summary    SummarySettings    `toml:"summary"`
	Server     ServerSettings     `toml:"server"`
}

// ProjectionSettings are the defaults used when the user has not onboarded
// or a command is run without a scenario file. Rates are in percent.
type ProjectionSettings struct {
	MonthlyDeposit       float64 `toml:"monthly_deposit"`
	InitialCapital       float64 `toml:"initial_capital"`
	RetirementStartYear  int     `toml:"retirement_start_year"`
	RetirementDuration   int     `toml:"retirement_duration"`
	DepositGrowthRate    float64 `toml:"deposit_growth_rate"`
	MarketRate           float64 `toml:"market_rate"`
	RetirementGrowthRate float64 `toml:"retirement_growth_rate"`
	// HorizonYears extends the projection past the end of the payout phase.
	HorizonYears int `toml:"horizon_years"`
}

// StorageSettings configures the local database.
type StorageSettings struct {
	DatabasePath string `toml:"database_path,omitempty"`
}

// DisplaySettings configures report rendering.
type DisplaySettings struct {
	CurrencySymbol string `toml:"currency_symbol"`
	DefaultFormat  string `toml:"default_format"`
}

// SummarySettings configures the text-generation model.
type SummarySettings struct {
	APIKey string `toml:"api_key,omitempty"`
	Model  string `toml:"model"`
}

// ServerSettings configures the HTTP API.
type ServerSettings struct {
	Addr string `toml:"addr"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	return Settings{
		Projection: ProjectionSettings{
			MonthlyDeposit:       300,
			InitialCapital:       0,
			RetirementStartYear:  2065,
			RetirementDuration:   20,
			DepositGrowthRate:    1,
			MarketRate:           6.1,
			RetirementGrowthRate: 2,
		},
		Display: DisplaySettings{
			CurrencySymbol: "€",
			DefaultFormat:  "console",
		},
		Summary: SummarySettings{
			Model: "gemini-2.0-flash",
		},
		Server: ServerSettings{
			Addr: ":8080",
		},
	}
}

// Parameters builds projection parameters from the defaults, starting at
// currentYear and ending when the payout phase ends (plus HorizonYears).
func (s ProjectionSettings) Parameters(currentYear int) domain.ProjectionParameters {
	p := domain.ProjectionParameters{
		CurrentYear:          currentYear,
		MonthlyDeposit:       s.MonthlyDeposit,
		DepositGrowthRate:    domain.RateFromPercent(s.DepositGrowthRate),
		MarketRate:           domain.RateFromPercent(s.MarketRate),
		RetirementStartYear:  s.RetirementStartYear,
		RetirementGrowthRate: domain.RateFromPercent(s.RetirementGrowthRate),
		RetirementDuration:   s.RetirementDuration,
		InitialCapital:       s.InitialCapital,
	}
	p.LastYear = p.RetirementEndYear() + s.HorizonYears
	return p
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

// SettingsPath returns the full path to the settings file.
func SettingsPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// DatabasePath returns the configured database path or the default one next
// to the settings file.
func (s Settings) DatabasePath() string {
	if s.Storage.DatabasePath != "" {
		return s.Storage.DatabasePath
	}
	return filepath.Join(Dir(), appName+".db")
}

// GeminiAPIKey returns the API key from the environment or the settings, in
// that order.
func (s Settings) GeminiAPIKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return s.Summary.APIKey
}

// LoadSettings reads the settings file, returning defaults if it doesn't exist.
func LoadSettings() (Settings, error) {
	return LoadSettingsFrom(SettingsPath())
}

// LoadSettingsFrom reads settings from path, returning defaults if it doesn't exist.
func LoadSettingsFrom(path string) (Settings, error) {
	cfg := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading settings: %w", err)
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("parsing settings: %w", err)
	}
	return cfg, nil
}

// SaveSettings writes the settings to the default location.
func SaveSettings(cfg Settings) error {
	return SaveSettingsTo(SettingsPath(), cfg)
}

// SaveSettingsTo writes the settings to path.
func SaveSettingsTo(path string, cfg Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
