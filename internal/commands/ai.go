package commands

import (
	"context"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"go.uber.org/zap"

	"github.com/brookhaven-tennis/go-discord-ladder/internal/assistant"
	"github.com/brookhaven-tennis/go-discord-ladder/internal/config"
)

// replyLimit leaves headroom under Discord's 2000-character message cap.
const replyLimit = 1900

// AICommand handles /ai.
type AICommand struct {
	logger    *zap.Logger
	cfg       *config.Config
	assistant assistant.Assistant
}

// NewAICommand creates a new AICommand.
func NewAICommand(logger *zap.Logger, cfg *config.Config, a assistant.Assistant) Command {
	return &AICommand{
		logger:    logger.Named("ai_command"),
		cfg:       cfg,
		assistant: a,
	}
}

// Name returns the name of the command.
func (c *AICommand) Name() string {
	return "ai"
}

// Description returns the description of the command.
func (c *AICommand) Description() string {
	return "Ask the tennis assistant a question"
}

// Options returns the command options.
func (c *AICommand) Options() []discord.CommandOption {
	return []discord.CommandOption{
		&discord.StringOption{
			OptionName:  "prompt",
			Description: "Your question",
			Required:    true,
		},
	}
}

// Execute runs the command.
func (c *AICommand) Execute(ctx context.Context, s *session.Session, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) error {
	if !aiChannelAllowed(c.cfg, e.ChannelID) {
		return respondEphemeral(s, e, "AI is disabled in this channel.")
	}

	var prompt string
	for _, opt := range data.Options {
		if opt.Name == "prompt" {
			prompt = opt.String()
		}
	}
	if prompt == "" {
		return respondEphemeral(s, e, "Prompt cannot be empty.")
	}

	if err := respondDeferred(s, e); err != nil {
		return err
	}

	answer, err := c.assistant.Ask(ctx, prompt)
	if err != nil {
		c.logger.Error("Assistant request failed", zap.Error(err))

		return followUpMessage(s, e, "Sorry, I couldn't get an answer right now. Please try again.")
	}

	return followUpMessage(s, e, truncate(answer, replyLimit))
}

// aiChannelAllowed reports whether AI-backed commands may run in the channel.
// An empty allowlist permits every channel.
func aiChannelAllowed(cfg *config.Config, channelID discord.ChannelID) bool {
	if len(cfg.Discord.AIChannelIDs) == 0 {
		return true
	}
	for _, id := range cfg.Discord.AIChannelIDs {
		if id == uint64(channelID) {
			return true
		}
	}

	return false
}
