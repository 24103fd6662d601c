package commands

import (
	"context"
	"fmt"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"go.uber.org/zap"
)

// AppVersion is the current version of the application, set at build time.
var AppVersion = "dev"

// VersionCommand handles /version.
type VersionCommand struct {
	logger *zap.Logger
}

// NewVersionCommand creates a new VersionCommand.
func NewVersionCommand(logger *zap.Logger) Command {
	return &VersionCommand{
		logger: logger.Named("version_command"),
	}
}

// Name returns the name of the command.
func (c *VersionCommand) Name() string {
	return "version"
}

// Description returns the description of the command.
func (c *VersionCommand) Description() string {
	return "Show the current version of the bot"
}

// Options returns the command options.
func (c *VersionCommand) Options() []discord.CommandOption {
	return nil
}

// Execute runs the command.
func (c *VersionCommand) Execute(ctx context.Context, s *session.Session, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) error {
	return respondEphemeral(s, e, fmt.Sprintf("Current version: %s", AppVersion))
}
