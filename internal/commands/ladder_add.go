package commands

import (
	"context"
	"fmt"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"go.uber.org/zap"

	"github.com/brookhaven-tennis/go-discord-ladder/internal/ladder"
)

// LadderAddCommand handles /ladder_add.
type LadderAddCommand struct {
	logger *zap.Logger
	svc    *ladder.Service
	perms  *Permissions
}

// NewLadderAddCommand creates a new LadderAddCommand.
func NewLadderAddCommand(logger *zap.Logger, svc *ladder.Service, perms *Permissions) Command {
	return &LadderAddCommand{
		logger: logger.Named("ladder_add_command"),
		svc:    svc,
		perms:  perms,
	}
}

// Name returns the name of the command.
func (c *LadderAddCommand) Name() string {
	return "ladder_add"
}

// Description returns the description of the command.
func (c *LadderAddCommand) Description() string {
	return "Add a player to the bottom of the ladder"
}

// Options returns the command options.
func (c *LadderAddCommand) Options() []discord.CommandOption {
	return []discord.CommandOption{
		&discord.StringOption{
			OptionName:  "name",
			Description: "Display name for the player",
			Required:    true,
		},
		&discord.UserOption{
			OptionName:  "user",
			Description: "(Optional) Link a Discord user to this player",
			Required:    false,
		},
	}
}

// Execute runs the command.
func (c *LadderAddCommand) Execute(ctx context.Context, s *session.Session, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) error {
	if !c.perms.RequireAdmin(s, e) {
		return nil
	}

	var name string
	var userID uint64
	for _, opt := range data.Options {
		switch opt.Name {
		case "name":
			name = opt.String()
		case "user":
			sf, err := opt.SnowflakeValue()
			if err != nil {
				c.logger.Warn("Failed to parse user option", zap.Error(err))

				continue
			}
			userID = uint64(sf)
		}
	}

	if name == "" {
		return respondEphemeral(s, e, "Player name cannot be empty.")
	}

	rank, err := c.svc.AddPlayer(name, userID)
	if err != nil {
		c.logger.Error("Failed to add player", zap.Error(err))

		return respondEphemeral(s, e, "Couldn't add the player. Please try again.")
	}

	return respondMessage(s, e, fmt.Sprintf("Added **%s** at rank **#%d**.", name, rank))
}
