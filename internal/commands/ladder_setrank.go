package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"go.uber.org/zap"

	"github.com/brookhaven-tennis/go-discord-ladder/internal/config"
	"github.com/brookhaven-tennis/go-discord-ladder/internal/ladder"
)

// LadderSetRankCommand handles /ladder_setrank.
type LadderSetRankCommand struct {
	logger *zap.Logger
	cfg    *config.Config
	svc    *ladder.Service
	perms  *Permissions
}

// NewLadderSetRankCommand creates a new LadderSetRankCommand.
func NewLadderSetRankCommand(logger *zap.Logger, cfg *config.Config, svc *ladder.Service, perms *Permissions) Command {
	return &LadderSetRankCommand{
		logger: logger.Named("ladder_setrank_command"),
		cfg:    cfg,
		svc:    svc,
		perms:  perms,
	}
}

// Name returns the name of the command.
func (c *LadderSetRankCommand) Name() string {
	return "ladder_setrank"
}

// Description returns the description of the command.
func (c *LadderSetRankCommand) Description() string {
	return "Set a player's rank (1 = top)"
}

// Options returns the command options.
func (c *LadderSetRankCommand) Options() []discord.CommandOption {
	return []discord.CommandOption{
		&discord.StringOption{
			OptionName:  "identifier",
			Description: "Rank number, exact name, @mention, or unique partial name",
			Required:    true,
		},
		&discord.IntegerOption{
			OptionName:  "new_rank",
			Description: "The new rank (1 = top)",
			Required:    true,
		},
	}
}

// Execute runs the command.
func (c *LadderSetRankCommand) Execute(ctx context.Context, s *session.Session, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) error {
	if !c.perms.RequireAdmin(s, e) {
		return nil
	}

	var identifier string
	var newRank int
	for _, opt := range data.Options {
		switch opt.Name {
		case "identifier":
			identifier = opt.String()
		case "new_rank":
			v, err := opt.IntValue()
			if err != nil {
				c.logger.Warn("Failed to parse new_rank option", zap.Error(err))

				continue
			}
			newRank = int(v)
		}
	}

	p, err := c.svc.SetRank(identifier, newRank)
	switch {
	case errors.Is(err, ladder.ErrEmptyLadder):
		return respondEphemeral(s, e, "No players on the ladder yet. Use /ladder_add first.")
	case errors.Is(err, ladder.ErrRankOutOfRange):
		return respondEphemeral(s, e, fmt.Sprintf("New rank must be between 1 and %d.", len(c.svc.Players())))
	case errors.Is(err, ladder.ErrUnknownPlayer):
		return respondEphemeral(s, e, fmt.Sprintf(
			"Couldn't identify **%s**. Try rank number, exact name, @mention, or a longer partial.",
			identifier,
		))
	case err != nil:
		c.logger.Error("Failed to set rank", zap.Error(err))

		return respondEphemeral(s, e, "Couldn't update rank. Please try again.")
	}

	if err := respondMessage(s, e, fmt.Sprintf("Moved **%s** to rank **#%d**.", p.Name, newRank)); err != nil {
		return err
	}

	return followUpEmbeds(s, e, LadderEmbed(c.cfg.Ladder.Name, c.svc.Players()))
}
