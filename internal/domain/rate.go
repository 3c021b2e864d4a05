package domain

import (
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Rate is an annual rate stored as a fraction (0.061 == 6.1%).
// Scenario files, CLI flags and the HTTP API all express rates in percent;
// the conversion happens in the marshal/unmarshal methods below.
type Rate float64

// RateFromPercent converts a percent value (6.1) into a Rate (0.061).
func RateFromPercent(pct float64) Rate { return Rate(pct / 100) }

// Fraction returns the rate as a plain float64 fraction.
func (r Rate) Fraction() float64 { return float64(r) }

// Percent returns the rate expressed in percent, rounded to 10 decimals so
// that 0.061 reads back as 6.1.
func (r Rate) Percent() float64 {
	pct := float64(r) * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return pct
	}
	return math.Round(pct*1e10) / 1e10
}

// Growth returns 1 + r.
func (r Rate) Growth() float64 { return 1 + float64(r) }

// IsFinite reports whether the rate is neither NaN nor infinite.
func (r Rate) IsFinite() bool {
	f := float64(r)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (r Rate) String() string {
	return strconv.FormatFloat(r.Percent(), 'f', -1, 64) + "%"
}

// UnmarshalYAML reads a percent value.
func (r *Rate) UnmarshalYAML(value *yaml.Node) error {
	var pct float64
	if err := value.Decode(&pct); err != nil {
		return fmt.Errorf("rate %q: %w", value.Value, err)
	}
	*r = RateFromPercent(pct)
	return nil
}

// MarshalYAML writes the rate in percent.
func (r Rate) MarshalYAML() (interface{}, error) {
	return r.Percent(), nil
}

// UnmarshalJSON reads a percent value.
func (r *Rate) UnmarshalJSON(data []byte) error {
	var pct float64
	if err := json.Unmarshal(data, &pct); err != nil {
		return fmt.Errorf("rate %s: %w", string(data), err)
	}
	*r = RateFromPercent(pct)
	return nil
}

// MarshalJSON writes the rate in percent.
func (r Rate) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Percent())
}
