package summary

import (
	"fmt"
	"strings"

	"github.com/pensionview/retirement-projection/internal/domain"
	money "github.com/pensionview/retirement-projection/pkg/decimal"
)

const (
	maxPromptCategories   = 3
	maxPromptTransactions = 5
)

// SystemInstruction frames every request sent to the model.
const SystemInstruction = "You are a helpful financial assistant that provides concise, personalized financial insights."

const summaryInstruction = `Look through the customer's spending below for under-used, duplicated or low-value subscriptions and recurring costs.
Write a single upbeat in-app message that praises one positive spending habit and names at most one specific cost worth cutting, with its long-term benefit.
If several services in the same category are paid for, suggest keeping only one.`

const closingInstruction = "1 to 2 sentences maximum. Use a friendly, professional tone. No introduction or greeting. No placeholders."

// PromptBuilder renders month data into model prompts.
type PromptBuilder struct {
	Symbol string // currency symbol, defaults to money.DefaultCurrencySymbol
}

func (b PromptBuilder) symbol() string {
	if b.Symbol == "" {
		return money.DefaultCurrencySymbol
	}
	return b.Symbol
}

// SummaryPrompt builds the prompt for a month insight.
func (b PromptBuilder) SummaryPrompt(month domain.MonthSummary) string {
	var sb strings.Builder
	sb.WriteString(summaryInstruction)
	sb.WriteString("\n\n")
	b.writeContext(&sb, month)
	sb.WriteString("\n\n")
	sb.WriteString(closingInstruction)
	return sb.String()
}

// ChatPrompt appends the month as context to a user question.
func (b PromptBuilder) ChatPrompt(question string, month domain.MonthSummary) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(question))
	if month.Month != "" || len(month.Categories) > 0 || len(month.Transactions) > 0 {
		sb.WriteString("\n\nHere's my current financial data for context:\n")
		b.writeContext(&sb, month)
	}
	return sb.String()
}

func (b PromptBuilder) writeContext(sb *strings.Builder, month domain.MonthSummary) {
	label := month.Label
	if label == "" {
		label = "Current Month"
	}
	fmt.Fprintf(sb, "Month: %s\n", label)
	fmt.Fprintf(sb, "Total spending: %s", b.amount(month.Total.InexactFloat64()))

	if len(month.Categories) > 0 {
		sb.WriteString("\n\nTop spending categories:")
		for i, c := range month.Categories {
			if i == maxPromptCategories {
				break
			}
			fmt.Fprintf(sb, "\n- %s: %s", c.Name, b.amount(c.Amount.InexactFloat64()))
		}
	}

	if month.PreviousTotal.IsPositive() {
		fmt.Fprintf(sb, "\n\nMonth-over-month change: %s%% (previous month: %s)",
			month.Change.StringFixed(1), b.amount(month.PreviousTotal.InexactFloat64()))
	}

	if len(month.Transactions) > 0 {
		fmt.Fprintf(sb, "\n\nRecent transactions (up to %d):", maxPromptTransactions)
		for i, tx := range month.Transactions {
			if i == maxPromptTransactions {
				break
			}
			date := "Unknown date"
			if !tx.BookingDate.IsZero() {
				date = tx.BookingDate.Format("2006-01-02")
			}
			desc := tx.Description
			if desc == "" {
				desc = "No description"
			}
			fmt.Fprintf(sb, "\n%d. %s: %s%s - %s", i+1, date, b.symbol(), tx.Amount.Abs().StringFixed(2), desc)
		}
	}
}

func (b PromptBuilder) amount(v float64) string {
	return money.NewMoney(v).FormatWith(b.symbol())
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
