package expense

import (
	"sort"
	"time"

	"github.com/pensionview/retirement-projection/internal/domain"
	"github.com/pensionview/retirement-projection/pkg/dateutil"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// InMonth returns the expenses booked in the month containing month,
// newest first.
func InMonth(txs []domain.Transaction, month time.Time) []domain.Transaction {
	var out []domain.Transaction
	for _, tx := range txs {
		if tx.IsExpense() && dateutil.InMonth(tx.BookingDate, month) {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].BookingDate.After(out[j].BookingDate)
	})
	return out
}

// SummarizeMonth aggregates the expenses of month against the month before it.
func SummarizeMonth(txs []domain.Transaction, month time.Time) domain.MonthSummary {
	return Summarize(month, InMonth(txs, month), InMonth(txs, dateutil.PreviousMonth(month)))
}

// Summarize aggregates current against previous. Only debit transactions are
// counted, by absolute amount. Categories are ordered by amount, largest first.
func Summarize(month time.Time, current, previous []domain.Transaction) domain.MonthSummary {
	totals, order, total := categoryTotals(current)
	prevTotals, _, prevTotal := categoryTotals(previous)

	summary := domain.MonthSummary{
		Month:          dateutil.MonthKey(month),
		Label:          dateutil.MonthLabel(month),
		Total:          total.Round(2),
		PreviousTotal:  prevTotal.Round(2),
		Change:         percentChange(total, prevTotal),
		InvestedAmount: totals[Investments].Round(2),
		Categories:     make([]domain.CategorySummary, 0, len(order)),
	}
	for _, tx := range current {
		if tx.IsExpense() {
			summary.Transactions = append(summary.Transactions, tx)
		}
	}

	for _, name := range order {
		amount := totals[name]
		share := decimal.Zero
		if total.IsPositive() {
			share = amount.Div(total).Mul(hundred).Round(1)
		}
		summary.Categories = append(summary.Categories, domain.CategorySummary{
			Name:           name,
			Icon:           IconFor(name),
			Amount:         amount.Round(2),
			PreviousAmount: prevTotals[name].Round(2),
			Change:         percentChange(amount, prevTotals[name]),
			Percentage:     share,
		})
	}
	sort.SliceStable(summary.Categories, func(i, j int) bool {
		return summary.Categories[i].Amount.GreaterThan(summary.Categories[j].Amount)
	})
	return summary
}

// categoryTotals sums absolute debit amounts per category. order lists the
// categories in first-seen order so ties sort deterministically.
func categoryTotals(txs []domain.Transaction) (map[string]decimal.Decimal, []string, decimal.Decimal) {
	totals := make(map[string]decimal.Decimal)
	var order []string
	total := decimal.Zero
	for _, tx := range txs {
		if !tx.IsExpense() {
			continue
		}
		amount := tx.Amount.Abs()
		name := CategoryFor(tx.MCC).Name
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] = totals[name].Add(amount)
		total = total.Add(amount)
	}
	return totals, order, total
}

// percentChange is the change from previous to current in percent, rounded to
// one decimal. It is zero when there is nothing to compare against.
func percentChange(current, previous decimal.Decimal) decimal.Decimal {
	if !previous.IsPositive() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(1)
}
