package decimal

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrencySymbol is used by Format when no symbol is configured.
const DefaultCurrencySymbol = "€"

// Money represents a monetary amount for presentation. Projections are computed
// in float64 and only converted to Money, and rounded, when displayed.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64. Non-finite values
// (which only come out of invalid projection inputs) become zero; use
// IsRepresentable to tell them apart first.
func NewMoney(value float64) Money {
	if !IsRepresentable(value) {
		return Zero()
	}
	return Money{decimal.NewFromFloat(value)}
}

// IsRepresentable reports whether value can be turned into Money.
func IsRepresentable(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to whole currency units (half away from zero).
func (m Money) Round() Money {
	return Money{m.Decimal.Round(0)}
}

// RoundCents rounds the money amount to cents.
func (m Money) RoundCents() Money {
	return Money{m.Decimal.Round(2)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// GreaterThan checks if this amount is greater than another
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// LessThan checks if this amount is less than another
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// Equal checks if this amount equals another
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount rounded to whole units without grouping.
func (m Money) String() string {
	return m.Decimal.StringFixed(0)
}

// Format formats the amount with the default currency symbol.
func (m Money) Format() string {
	return m.FormatWith(DefaultCurrencySymbol)
}

// FormatWith formats the amount rounded to whole units, with thousands
// separators and the given currency symbol: "€321,913".
func (m Money) FormatWith(symbol string) string {
	s := m.Round().Decimal.Abs().StringFixed(0)
	sign := ""
	if m.Round().IsNegative() {
		sign = "-"
	}
	return sign + symbol + group(s)
}

func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
