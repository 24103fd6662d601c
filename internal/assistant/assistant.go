// Package assistant provides the OpenAI-backed tennis assistant used by the
// /ai, /coach and /summarize_round commands.
package assistant

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/brookhaven-tennis/go-discord-ladder/internal/config"
)

const (
	systemPrompt = "You are a concise tennis assistant for a junior ladder program."
	temperature  = 0.6
)

// Assistant answers one-shot tennis questions.
type Assistant interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// completionClient is the slice of the OpenAI client the assistant needs.
type completionClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// NewAssistant creates an OpenAI-based Assistant implementation.
func NewAssistant(logger *zap.Logger, cfg *config.Config, client *openai.Client, cache *AnswerCache) Assistant {
	return &openAIAssistant{
		logger: logger.Named("assistant"),
		cfg:    cfg,
		client: client,
		cache:  cache,
	}
}

type openAIAssistant struct {
	logger *zap.Logger
	cfg    *config.Config
	client completionClient
	cache  *AnswerCache
}

// Ask sends the prompt to OpenAI and returns the answer. Repeated questions
// are served from the answer cache without a completion call.
func (a *openAIAssistant) Ask(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", errors.New("prompt is empty")
	}

	if answer, ok := a.cache.Lookup(prompt); ok {
		a.logger.Debug("Serving answer from cache")

		return answer, nil
	}

	request := openai.ChatCompletionRequest{
		Model: a.cfg.OpenAI.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   a.cfg.OpenAI.MaxTokens,
		Temperature: temperature,
	}

	response, err := a.client.CreateChatCompletion(ctx, request)
	if err != nil {
		a.logger.Error("Failed to get response from OpenAI", zap.Error(err))

		return "", err
	}

	if len(response.Choices) == 0 || response.Choices[0].Message.Content == "" {
		a.logger.Warn("OpenAI returned an empty response")

		return "", errors.New("OpenAI returned empty response")
	}

	answer := response.Choices[0].Message.Content
	a.logger.Info("Received response from OpenAI",
		zap.Int("promptTokens", response.Usage.PromptTokens),
		zap.Int("completionTokens", response.Usage.CompletionTokens),
		zap.Int("totalTokens", response.Usage.TotalTokens),
	)

	a.cache.Store(prompt, answer)

	return answer, nil
}
