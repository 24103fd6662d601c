package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brookhaven-tennis/go-discord-ladder/internal/config"
)

type fakeCompletionClient struct {
	calls    int
	response openai.ChatCompletionResponse
	err      error

	lastRequest openai.ChatCompletionRequest
}

func (f *fakeCompletionClient) CreateChatCompletion(_ context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.calls++
	f.lastRequest = request

	return f.response, f.err
}

func answeredWith(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func newTestAssistant(t *testing.T, client completionClient) *openAIAssistant {
	t.Helper()

	cache, err := NewAnswerCache(8)
	require.NoError(t, err)

	return &openAIAssistant{
		logger: zap.NewNop(),
		cfg: &config.Config{
			OpenAI: config.OpenAIConfig{
				Model:     config.DefaultModel,
				MaxTokens: config.DefaultMaxTokens,
			},
		},
		client: client,
		cache:  cache,
	}
}

func TestAsk(t *testing.T) {
	t.Run("BuildsRequestFromConfig", func(t *testing.T) {
		client := &fakeCompletionClient{response: answeredWith("Keep your eye on the ball.")}
		a := newTestAssistant(t, client)

		answer, err := a.Ask(context.Background(), "How do I improve my return?")
		require.NoError(t, err)
		assert.Equal(t, "Keep your eye on the ball.", answer)

		assert.Equal(t, config.DefaultModel, client.lastRequest.Model)
		assert.Equal(t, config.DefaultMaxTokens, client.lastRequest.MaxTokens)
		require.Len(t, client.lastRequest.Messages, 2)
		assert.Equal(t, openai.ChatMessageRoleSystem, client.lastRequest.Messages[0].Role)
		assert.Equal(t, openai.ChatMessageRoleUser, client.lastRequest.Messages[1].Role)
	})

	t.Run("EmptyPrompt", func(t *testing.T) {
		client := &fakeCompletionClient{}
		a := newTestAssistant(t, client)

		_, err := a.Ask(context.Background(), "")
		assert.Error(t, err)
		assert.Zero(t, client.calls)
	})

	t.Run("EmptyCompletion", func(t *testing.T) {
		client := &fakeCompletionClient{response: openai.ChatCompletionResponse{}}
		a := newTestAssistant(t, client)

		_, err := a.Ask(context.Background(), "anything")
		assert.Error(t, err)
	})

	t.Run("ClientError", func(t *testing.T) {
		client := &fakeCompletionClient{err: errors.New("rate limited")}
		a := newTestAssistant(t, client)

		_, err := a.Ask(context.Background(), "anything")
		assert.Error(t, err)
	})

	t.Run("RepeatedQuestionHitsCache", func(t *testing.T) {
		client := &fakeCompletionClient{response: answeredWith("Split step early.")}
		a := newTestAssistant(t, client)

		_, err := a.Ask(context.Background(), "When should I split step?")
		require.NoError(t, err)

		answer, err := a.Ask(context.Background(), "  when should i split step?  ")
		require.NoError(t, err)
		assert.Equal(t, "Split step early.", answer)
		assert.Equal(t, 1, client.calls)
	})

	t.Run("FailedCallIsNotCached", func(t *testing.T) {
		client := &fakeCompletionClient{err: errors.New("boom")}
		a := newTestAssistant(t, client)

		_, err := a.Ask(context.Background(), "question")
		require.Error(t, err)

		client.err = nil
		client.response = answeredWith("answer")
		answer, err := a.Ask(context.Background(), "question")
		require.NoError(t, err)
		assert.Equal(t, "answer", answer)
		assert.Equal(t, 2, client.calls)
	})
}

func TestAnswerCacheNormalization(t *testing.T) {
	cache, err := NewAnswerCache(2)
	require.NoError(t, err)

	cache.Store("  What Is A Let?  ", "replay the point")

	answer, ok := cache.Lookup("what is a let?")
	require.True(t, ok)
	assert.Equal(t, "replay the point", answer)

	// LRU evicts the oldest entry past capacity.
	cache.Store("q2", "a2")
	cache.Store("q3", "a3")
	_, ok = cache.Lookup("what is a let?")
	assert.False(t, ok)
}
