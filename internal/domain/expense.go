package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction sides as delivered by the banking feed.
const (
	SideDebit  = "debt"
	SideCredit = "credit"
)

// Transaction is a single booked card or account movement.
type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	BookingDate time.Time       `json:"booking_date"`
	Side        string          `json:"side"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Type        string          `json:"type"`
	MCC         string          `json:"mcc"`
	Description string          `json:"description"`
}

// IsExpense reports whether the transaction is an outgoing payment.
func (t Transaction) IsExpense() bool { return t.Side == SideDebit }

// CategorySummary is the spend of one category within a month.
type CategorySummary struct {
	Name           string          `json:"name"`
	Icon           string          `json:"icon"`
	Amount         decimal.Decimal `json:"amount"`
	PreviousAmount decimal.Decimal `json:"previous_amount"`
	Change         decimal.Decimal `json:"change"`     // percent vs previous month, 1 decimal
	Percentage     decimal.Decimal `json:"percentage"` // share of the month's total
}

// MonthSummary aggregates a month of expenses against the previous month.
type MonthSummary struct {
	Month          string            `json:"month"` // YYYY-MM
	Label          string            `json:"label"` // "May 2025"
	Total          decimal.Decimal   `json:"total"`
	PreviousTotal  decimal.Decimal   `json:"previous_total"`
	Change         decimal.Decimal   `json:"change"`
	Categories     []CategorySummary `json:"categories"`
	InvestedAmount decimal.Decimal   `json:"invested_amount"`
	Transactions   []Transaction     `json:"-"`
}

// SavingsSuggestion is an illustrative cut in one category and what it would
// add to the retirement projection if redirected into the monthly deposit.
type SavingsSuggestion struct {
	Category                string          `json:"category"`
	CurrentMonthlySpend     decimal.Decimal `json:"current_monthly_spend"`
	MonthlySaving           decimal.Decimal `json:"monthly_saving"`
	ExtraBoundaryWealth     decimal.Decimal `json:"extra_boundary_wealth"`
	ExtraMonthlyPension     decimal.Decimal `json:"extra_monthly_pension"`
	ResultingMonthlyDeposit decimal.Decimal `json:"resulting_monthly_deposit"`
}
