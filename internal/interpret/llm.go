package interpret

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
)

const (
	llmAPIKeyMock     = "mock"
	summaryTimeout    = 15 * time.Second
	summaryMaxTokens  = 60
	summarySystemRole = "You summarize social media feedback about a brand in one short sentence."
)

// NewSummaryDeriver returns the summary deriver to plug into Derivers. Without
// an API key it is the deterministic keyword heuristic; with one it asks the
// LLM and falls back to the heuristic on any failure, so the pipeline never
// blocks on the LLM being down.
func NewSummaryDeriver(apiKey, model string, logger *zerolog.Logger) func(brand, text string) string {
	if apiKey == "" || apiKey == llmAPIKeyMock {
		return DeriveSummary
	}

	client := openai.NewClient(apiKey)

	return func(brand, text string) string {
		ctx, cancel := context.WithTimeout(context.Background(), summaryTimeout)
		defer cancel()

		resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:     model,
			MaxTokens: summaryMaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: summarySystemRole},
				{Role: openai.ChatMessageRoleUser, Content: "Brand: " + brand + "\nPost: " + text},
			},
		})
		if err != nil || len(resp.Choices) == 0 {
			logger.Warn().Err(err).Str("brand", brand).Msg("llm summary failed, using heuristic")

			return DeriveSummary(brand, text)
		}

		summary := strings.TrimSpace(resp.Choices[0].Message.Content)
		if summary == "" {
			return DeriveSummary(brand, text)
		}

		return summary
	}
}
