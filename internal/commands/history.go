package commands

import (
	"context"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"go.uber.org/zap"

	"github.com/brookhaven-tennis/go-discord-ladder/internal/ladder"
)

const historyLimit = 10

// HistoryCommand handles /history.
type HistoryCommand struct {
	logger *zap.Logger
	svc    *ladder.Service
}

// NewHistoryCommand creates a new HistoryCommand.
func NewHistoryCommand(logger *zap.Logger, svc *ladder.Service) Command {
	return &HistoryCommand{
		logger: logger.Named("history_command"),
		svc:    svc,
	}
}

// Name returns the name of the command.
func (c *HistoryCommand) Name() string {
	return "history"
}

// Description returns the description of the command.
func (c *HistoryCommand) Description() string {
	return "Show the most recent match results"
}

// Options returns the command options.
func (c *HistoryCommand) Options() []discord.CommandOption {
	return nil
}

// Execute runs the command.
func (c *HistoryCommand) Execute(ctx context.Context, s *session.Session, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) error {
	results := c.svc.RecentResults(historyLimit)
	if len(results) == 0 {
		return respondMessage(s, e, "No results yet.")
	}

	return respondEmbeds(s, e, HistoryEmbed(results))
}
