package commands

import (
	"context"
	"fmt"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"go.uber.org/zap"

	"github.com/brookhaven-tennis/go-discord-ladder/internal/assistant"
	"github.com/brookhaven-tennis/go-discord-ladder/internal/config"
)

// CoachCommand handles /coach.
type CoachCommand struct {
	logger    *zap.Logger
	cfg       *config.Config
	assistant assistant.Assistant
}

// NewCoachCommand creates a new CoachCommand.
func NewCoachCommand(logger *zap.Logger, cfg *config.Config, a assistant.Assistant) Command {
	return &CoachCommand{
		logger:    logger.Named("coach_command"),
		cfg:       cfg,
		assistant: a,
	}
}

// Name returns the name of the command.
func (c *CoachCommand) Name() string {
	return "coach"
}

// Description returns the description of the command.
func (c *CoachCommand) Description() string {
	return "Get practice drill suggestions for a group"
}

// Options returns the command options.
func (c *CoachCommand) Options() []discord.CommandOption {
	return []discord.CommandOption{
		&discord.StringOption{
			OptionName:  "for_group",
			Description: "Who the drills are for, e.g. beginner, intermediate, U14",
			Required:    true,
		},
	}
}

// Execute runs the command.
func (c *CoachCommand) Execute(ctx context.Context, s *session.Session, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) error {
	if !aiChannelAllowed(c.cfg, e.ChannelID) {
		return respondEphemeral(s, e, "AI is disabled in this channel.")
	}

	var group string
	for _, opt := range data.Options {
		if opt.Name == "for_group" {
			group = opt.String()
		}
	}
	if group == "" {
		return respondEphemeral(s, e, "Group cannot be empty.")
	}

	if err := respondDeferred(s, e); err != nil {
		return err
	}

	prompt := fmt.Sprintf("Give 3 concise practice drills for %s tennis players. 1-2 sentences each.", group)
	answer, err := c.assistant.Ask(ctx, prompt)
	if err != nil {
		c.logger.Error("Assistant request failed", zap.Error(err))

		return followUpMessage(s, e, "Sorry, I couldn't get drills right now. Please try again.")
	}

	return followUpMessage(s, e, truncate(answer, replyLimit))
}
