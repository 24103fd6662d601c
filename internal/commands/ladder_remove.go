package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"go.uber.org/zap"

	"github.com/brookhaven-tennis/go-discord-ladder/internal/ladder"
)

// LadderRemoveCommand handles /ladder_remove.
type LadderRemoveCommand struct {
	logger *zap.Logger
	svc    *ladder.Service
	perms  *Permissions
}

// NewLadderRemoveCommand creates a new LadderRemoveCommand.
func NewLadderRemoveCommand(logger *zap.Logger, svc *ladder.Service, perms *Permissions) Command {
	return &LadderRemoveCommand{
		logger: logger.Named("ladder_remove_command"),
		svc:    svc,
		perms:  perms,
	}
}

// Name returns the name of the command.
func (c *LadderRemoveCommand) Name() string {
	return "ladder_remove"
}

// Description returns the description of the command.
func (c *LadderRemoveCommand) Description() string {
	return "Remove a player by name or current rank number"
}

// Options returns the command options.
func (c *LadderRemoveCommand) Options() []discord.CommandOption {
	return []discord.CommandOption{
		&discord.StringOption{
			OptionName:  "identifier",
			Description: "Player name or rank number",
			Required:    true,
		},
	}
}

// Execute runs the command.
func (c *LadderRemoveCommand) Execute(ctx context.Context, s *session.Session, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) error {
	if !c.perms.RequireAdmin(s, e) {
		return nil
	}

	var identifier string
	for _, opt := range data.Options {
		if opt.Name == "identifier" {
			identifier = opt.String()
		}
	}

	p, err := c.svc.RemovePlayer(identifier)
	if errors.Is(err, ladder.ErrUnknownPlayer) || errors.Is(err, ladder.ErrRankOutOfRange) {
		return respondEphemeral(s, e, "Couldn't find that player/rank.")
	}
	if err != nil {
		c.logger.Error("Failed to remove player", zap.Error(err))

		return respondEphemeral(s, e, "Couldn't remove the player. Please try again.")
	}

	return respondMessage(s, e, fmt.Sprintf("Removed **%s** from ladder.", p.Name))
}
