package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/pensionview/retirement-projection/internal/domain"
	"github.com/shopspring/decimal"
)

// NoAnswer is what the rule-based summarizer replies to chat questions.
const NoAnswer = "I'm sorry, I couldn't generate a response."

var significantChange = decimal.NewFromInt(5)

// RuleSummarizer derives an insight from the month's numbers without a model.
type RuleSummarizer struct{}

// Summarize points out the category with the largest increase above 5 %,
// or else an overall decrease above 5 %.
func (RuleSummarizer) Summarize(_ context.Context, month domain.MonthSummary) (string, error) {
	var top *domain.CategorySummary
	for i := range month.Categories {
		c := &month.Categories[i]
		if strings.EqualFold(c.Name, "investments") {
			continue
		}
		if top == nil || c.Change.GreaterThan(top.Change) {
			top = c
		}
	}
	if top != nil && top.Change.GreaterThan(significantChange) {
		return fmt.Sprintf("Your %s spending increased by %s%%. Consider setting a limit next month.",
			strings.ToLower(top.Name), top.Change.String()), nil
	}
	if month.Change.LessThan(significantChange.Neg()) {
		return fmt.Sprintf("Great job! Your overall spending decreased by %s%% compared to last month.",
			month.Change.Abs().String()), nil
	}
	return "Your spending patterns are consistent with last month. Keep maintaining your budget.", nil
}

// Ask always returns NoAnswer.
func (RuleSummarizer) Ask(_ context.Context, question string, _ domain.MonthSummary) (string, error) {
	if isBlank(question) {
		return "", ErrEmptyQuestion
	}
	return NoAnswer, nil
}
