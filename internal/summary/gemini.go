package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/pensionview/retirement-projection/internal/domain"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

// GeminiSummarizer generates insights with Google's Gemini models.
type GeminiSummarizer struct {
	Model       string
	Temperature float32
	Prompts     PromptBuilder

	client *genai.Client
}

var _ Summarizer = (*GeminiSummarizer)(nil)

// NewGeminiSummarizer creates a summarizer for the Gemini API.
func NewGeminiSummarizer(ctx context.Context, apiKey, model string) (*GeminiSummarizer, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiSummarizer{Model: model, Temperature: 0.7, client: client}, nil
}

// Summarize implements Summarizer.
func (g *GeminiSummarizer) Summarize(ctx context.Context, month domain.MonthSummary) (string, error) {
	return g.generate(ctx, g.Prompts.SummaryPrompt(month))
}

// Ask implements Summarizer.
func (g *GeminiSummarizer) Ask(ctx context.Context, question string, month domain.MonthSummary) (string, error) {
	if isBlank(question) {
		return "", ErrEmptyQuestion
	}
	return g.generate(ctx, g.Prompts.ChatPrompt(question, month))
}

func (g *GeminiSummarizer) generate(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.Temperature),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: SystemInstruction}},
		},
	}
	result, err := g.client.Models.GenerateContent(ctx, g.Model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	return strings.TrimSpace(result.Text()), nil
}
