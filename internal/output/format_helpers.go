package output

import (
	"fmt"

	"github.com/pensionview/retirement-projection/internal/domain"
	money "github.com/pensionview/retirement-projection/pkg/decimal"
	"github.com/shopspring/decimal"
)

// notAvailable is rendered for values the projection could not produce.
const notAvailable = "n/a"

// FormatCurrency formats an engine value rounded to whole currency units.
func FormatCurrency(v float64, symbol string) string {
	if !money.IsRepresentable(v) {
		return notAvailable
	}
	return money.NewMoney(v).FormatWith(symbol)
}

// FormatOptional formats a per-year value; years outside the value's phase render as "-".
func FormatOptional(v *float64, symbol string) string {
	if v == nil {
		return "-"
	}
	return FormatCurrency(*v, symbol)
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a rate in percent with 2 decimals.
func FormatRate(r domain.Rate) string { return fmt.Sprintf("%.2f%%", r.Percent()) }

// plain renders a value for machine-readable output, rounded to places.
func plain(v *float64, places int32) string {
	if v == nil || !money.IsRepresentable(*v) {
		return ""
	}
	return decimal.NewFromFloat(*v).StringFixed(places)
}

func symbolOrDefault(symbol string) string {
	if symbol == "" {
		return money.DefaultCurrencySymbol
	}
	return symbol
}
