// Package summary turns a month of aggregated expenses into a short written
// insight, either through a text-generation model or a set of static rules.
package summary

import (
	"context"
	"errors"

	"github.com/pensionview/retirement-projection/internal/domain"
)

var (
	// ErrNoAPIKey is returned when a model-backed summarizer has no API key.
	ErrNoAPIKey = errors.New("no API key configured")
	// ErrEmptyQuestion is returned by Ask for a blank question.
	ErrEmptyQuestion = errors.New("question is empty")
)

// Summarizer writes insights about a month of expenses.
type Summarizer interface {
	// Summarize returns a one or two sentence insight about the month.
	Summarize(ctx context.Context, month domain.MonthSummary) (string, error)
	// Ask answers a free-form question with the month as context.
	Ask(ctx context.Context, question string, month domain.MonthSummary) (string, error)
}

// Logger is the subset of the engine logger the fallback reports through.
type Logger interface {
	Warnf(format string, args ...interface{})
}

type fallback struct {
	primary   Summarizer
	secondary Summarizer
	log       Logger
}

// WithFallback answers with primary and switches to secondary whenever primary
// fails or returns nothing. log may be nil.
func WithFallback(primary, secondary Summarizer, log Logger) Summarizer {
	return &fallback{primary: primary, secondary: secondary, log: log}
}

func (f *fallback) Summarize(ctx context.Context, month domain.MonthSummary) (string, error) {
	text, err := f.primary.Summarize(ctx, month)
	if err == nil && text != "" {
		return text, nil
	}
	f.warn("summary", err)
	return f.secondary.Summarize(ctx, month)
}

func (f *fallback) Ask(ctx context.Context, question string, month domain.MonthSummary) (string, error) {
	if isBlank(question) {
		return "", ErrEmptyQuestion
	}
	text, err := f.primary.Ask(ctx, question, month)
	if err == nil && text != "" {
		return text, nil
	}
	f.warn("chat", err)
	return f.secondary.Ask(ctx, question, month)
}

func (f *fallback) warn(mode string, err error) {
	if f.log == nil {
		return
	}
	if err == nil {
		f.log.Warnf("%s: empty response, using fallback", mode)
		return
	}
	f.log.Warnf("%s: %v, using fallback", mode, err)
}
