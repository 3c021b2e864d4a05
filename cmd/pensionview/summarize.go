package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pensionview/retirement-projection/internal/summary"
	"github.com/spf13/cobra"
)

const summarizeTimeout = 30 * time.Second

var flagQuestion string

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Write a short insight about a month of spending",
	Long: "Summarize a month of spending with Gemini (GEMINI_API_KEY), falling back to " +
		"built-in rules when no key is configured or the model fails.",
	Args: cobra.NoArgs,
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVarP(&flagMonth, "month", "m", "", "Month as YYYY-MM (default: newest with transactions)")
	summarizeCmd.Flags().StringVarP(&flagQuestion, "ask", "a", "", "Ask a question about the month instead")
	rootCmd.AddCommand(summarizeCmd)
}

// newSummarizer prefers the model and always keeps the rules as fallback.
func newSummarizer(ctx context.Context) summary.Summarizer {
	rules := summary.RuleSummarizer{}
	gemini, err := summary.NewGeminiSummarizer(ctx, settings.GeminiAPIKey(), settings.Summary.Model)
	if err != nil {
		if !errors.Is(err, summary.ErrNoAPIKey) {
			logger.Warnf("%v", err)
		}
		logger.Debugf("using rule-based summaries")
		return rules
	}
	gemini.Prompts = summary.PromptBuilder{Symbol: settings.Display.CurrencySymbol}
	return summary.WithFallback(gemini, rules, logger)
}

func runSummarize(cmd *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	month, err := loadMonth(cmd.Context(), st, flagMonth)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), summarizeTimeout)
	defer cancel()
	s := newSummarizer(ctx)

	var text string
	if cmd.Flags().Changed("ask") {
		text, err = s.Ask(ctx, flagQuestion, month)
	} else {
		text, err = s.Summarize(ctx, month)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), headingStyle.Render(month.Label))
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
