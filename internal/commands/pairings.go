package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"go.uber.org/zap"

	"github.com/brookhaven-tennis/go-discord-ladder/internal/config"
	"github.com/brookhaven-tennis/go-discord-ladder/internal/ladder"
)

// PairingsCommand handles /pairings.
type PairingsCommand struct {
	logger *zap.Logger
	cfg    *config.Config
	svc    *ladder.Service
	perms  *Permissions
}

// NewPairingsCommand creates a new PairingsCommand.
func NewPairingsCommand(logger *zap.Logger, cfg *config.Config, svc *ladder.Service, perms *Permissions) Command {
	return &PairingsCommand{
		logger: logger.Named("pairings_command"),
		cfg:    cfg,
		svc:    svc,
		perms:  perms,
	}
}

// Name returns the name of the command.
func (c *PairingsCommand) Name() string {
	return "pairings"
}

// Description returns the description of the command.
func (c *PairingsCommand) Description() string {
	return "Generate and show new round pairings (adjacent ranks)"
}

// Options returns the command options.
func (c *PairingsCommand) Options() []discord.CommandOption {
	return nil
}

// Execute runs the command.
func (c *PairingsCommand) Execute(ctx context.Context, s *session.Session, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) error {
	if !c.perms.RequireAdmin(s, e) {
		return nil
	}

	start, err := c.cfg.Ladder.Start()
	if err != nil {
		c.logger.Error("Invalid ladder start date in config", zap.Error(err))

		return respondEphemeral(s, e, "The ladder start date is misconfigured. Please contact an administrator.")
	}

	loc, err := c.cfg.Ladder.Location()
	if err != nil {
		loc = time.UTC
	}
	today := time.Now().In(loc)
	if !start.IsZero() && today.Before(start) {
		return respondEphemeral(s, e, fmt.Sprintf(
			"Pairings start on %s. Today is %s.",
			start.Format("2006-01-02"), today.Format("2006-01-02"),
		))
	}

	pairings, round, err := c.svc.GeneratePairings()
	if errors.Is(err, ladder.ErrEmptyLadder) {
		return respondEphemeral(s, e, "No players yet. Use /ladder_add to add players.")
	}
	if err != nil {
		c.logger.Error("Failed to generate pairings", zap.Error(err))

		return respondEphemeral(s, e, "Couldn't generate pairings. Please try again.")
	}

	return respondEmbeds(s, e, PairingsEmbed(round, pairings, c.svc.Players()))
}
