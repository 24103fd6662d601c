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

// ReportCommand handles /report.
type ReportCommand struct {
	logger *zap.Logger
	cfg    *config.Config
	svc    *ladder.Service
}

// NewReportCommand creates a new ReportCommand.
func NewReportCommand(logger *zap.Logger, cfg *config.Config, svc *ladder.Service) Command {
	return &ReportCommand{
		logger: logger.Named("report_command"),
		cfg:    cfg,
		svc:    svc,
	}
}

// Name returns the name of the command.
func (c *ReportCommand) Name() string {
	return "report"
}

// Description returns the description of the command.
func (c *ReportCommand) Description() string {
	return "Report a match result by rank numbers (winner, loser, score)"
}

// Options returns the command options.
func (c *ReportCommand) Options() []discord.CommandOption {
	return []discord.CommandOption{
		&discord.IntegerOption{
			OptionName:  "winner_rank",
			Description: "The winner's current rank",
			Required:    true,
		},
		&discord.IntegerOption{
			OptionName:  "loser_rank",
			Description: "The loser's current rank",
			Required:    true,
		},
		&discord.StringOption{
			OptionName:  "score",
			Description: "Match score, e.g. 6-4 3-6 10-7",
			Required:    true,
		},
	}
}

// Execute runs the command.
func (c *ReportCommand) Execute(ctx context.Context, s *session.Session, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) error {
	var winnerRank, loserRank int
	var score string
	for _, opt := range data.Options {
		switch opt.Name {
		case "winner_rank":
			if v, err := opt.IntValue(); err == nil {
				winnerRank = int(v)
			}
		case "loser_rank":
			if v, err := opt.IntValue(); err == nil {
				loserRank = int(v)
			}
		case "score":
			score = opt.String()
		}
	}

	reporter := EventUser(e)
	result, err := c.svc.ApplyResult(winnerRank, loserRank, score, uint64(reporter.ID))
	switch {
	case errors.Is(err, ladder.ErrRankOutOfRange):
		return respondEphemeral(s, e, fmt.Sprintf("Error: %v", err))
	case errors.Is(err, ladder.ErrSameRank):
		return respondEphemeral(s, e, "Winner and loser can't be the same rank.")
	case err != nil:
		c.logger.Error("Failed to apply match result", zap.Error(err))

		return respondEphemeral(s, e, "Couldn't record the result. Please try again.")
	}

	c.logger.Info("Match result reported",
		zap.String("resultID", result.ID),
		zap.Stringer("reporter", reporter.ID),
	)

	confirmation := fmt.Sprintf("Result recorded: **#%d beat #%d** (%s). Ladder updated.",
		winnerRank, loserRank, score)
	if err := respondMessage(s, e, confirmation); err != nil {
		return err
	}

	return followUpEmbeds(s, e, LadderEmbed(c.cfg.Ladder.Name, c.svc.Players()))
}
