package openai

import (
	"testing"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"github.com/brookhaven-tennis/go-discord-ladder/internal/config"
)

func TestModule(t *testing.T) {
	// Create a test configuration
	testConfig := &config.Config{
		OpenAI: config.OpenAIConfig{
			APIKey: "test-api-key",
		},
	}

	// Create a test logger
	logger := zap.NewNop()

	// Test that the module provides the client correctly
	app := fxtest.New(t,
		fx.Supply(testConfig, logger),
		Module,
		fx.Invoke(func(client *openai.Client) {
			if client == nil {
				t.Error("OpenAI client should not be nil")
			}
		}),
	)

	app.RequireStart()
	app.RequireStop()
}

func TestNewClientMissingAPIKey(t *testing.T) {
	testConfig := &config.Config{}

	client, err := NewClient(testConfig, zap.NewNop())
	if err == nil {
		t.Error("NewClient should fail without an API key")
	}
	if client != nil {
		t.Error("NewClient should not return a client without an API key")
	}
}
