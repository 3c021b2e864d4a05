//go:build unit

package output

import (
	"math"
	"testing"

	"github.com/pensionview/retirement-projection/internal/domain"
	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1234.567, "€1,235"},
		{321913.2128, "€321,913"},
		{0, "€0"},
		{math.NaN(), "n/a"},
		{math.Inf(1), "n/a"},
	}
	for _, c := range cases {
		if got := FormatCurrency(c.in, "€"); got != c.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatOptional(t *testing.T) {
	if got := FormatOptional(nil, "€"); got != "-" {
		t.Errorf("FormatOptional(nil) = %q", got)
	}
	v := 1486.7
	if got := FormatOptional(&v, "$"); got != "$1,487" {
		t.Errorf("FormatOptional(1486.7) = %q", got)
	}
}

func TestFormatPercentage(t *testing.T) {
	v := decimal.NewFromFloat(12.3456)
	got := FormatPercentage(v)
	want := "12.35%"
	if got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
	if got := FormatRate(domain.RateFromPercent(6.1)); got != "6.10%" {
		t.Errorf("FormatRate = %q", got)
	}
}

func TestPlain(t *testing.T) {
	v := 125225.6149
	if got := plain(&v, 2); got != "125225.61" {
		t.Errorf("plain = %q", got)
	}
	nan := math.NaN()
	if got := plain(&nan, 2); got != "" {
		t.Errorf("plain(NaN) = %q", got)
	}
	if got := plain(nil, 0); got != "" {
		t.Errorf("plain(nil) = %q", got)
	}
}
