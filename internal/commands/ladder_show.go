package commands

import (
	"context"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"go.uber.org/zap"

	"github.com/brookhaven-tennis/go-discord-ladder/internal/config"
	"github.com/brookhaven-tennis/go-discord-ladder/internal/ladder"
)

// LadderShowCommand handles /ladder_show.
type LadderShowCommand struct {
	logger *zap.Logger
	cfg    *config.Config
	svc    *ladder.Service
}

// NewLadderShowCommand creates a new LadderShowCommand.
func NewLadderShowCommand(logger *zap.Logger, cfg *config.Config, svc *ladder.Service) Command {
	return &LadderShowCommand{
		logger: logger.Named("ladder_show_command"),
		cfg:    cfg,
		svc:    svc,
	}
}

// Name returns the name of the command.
func (c *LadderShowCommand) Name() string {
	return "ladder_show"
}

// Description returns the description of the command.
func (c *LadderShowCommand) Description() string {
	return "Show the current ladder"
}

// Options returns the command options.
func (c *LadderShowCommand) Options() []discord.CommandOption {
	return nil
}

// Execute runs the command.
func (c *LadderShowCommand) Execute(ctx context.Context, s *session.Session, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) error {
	players := c.svc.Players()
	if len(players) == 0 {
		return respondMessage(s, e, "No players yet. Use /ladder_add to add players.")
	}

	return respondEmbeds(s, e, LadderEmbed(c.cfg.Ladder.Name, players))
}
