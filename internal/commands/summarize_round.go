package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"go.uber.org/zap"

	"github.com/brookhaven-tennis/go-discord-ladder/internal/assistant"
	"github.com/brookhaven-tennis/go-discord-ladder/internal/config"
	"github.com/brookhaven-tennis/go-discord-ladder/internal/ladder"
)

// SummarizeRoundCommand handles /summarize_round.
type SummarizeRoundCommand struct {
	logger    *zap.Logger
	cfg       *config.Config
	svc       *ladder.Service
	assistant assistant.Assistant
}

// NewSummarizeRoundCommand creates a new SummarizeRoundCommand.
func NewSummarizeRoundCommand(logger *zap.Logger, cfg *config.Config, svc *ladder.Service, a assistant.Assistant) Command {
	return &SummarizeRoundCommand{
		logger:    logger.Named("summarize_round_command"),
		cfg:       cfg,
		svc:       svc,
		assistant: a,
	}
}

// Name returns the name of the command.
func (c *SummarizeRoundCommand) Name() string {
	return "summarize_round"
}

// Description returns the description of the command.
func (c *SummarizeRoundCommand) Description() string {
	return "Summarize the latest results with the assistant"
}

// Options returns the command options.
func (c *SummarizeRoundCommand) Options() []discord.CommandOption {
	return nil
}

// Execute runs the command.
func (c *SummarizeRoundCommand) Execute(ctx context.Context, s *session.Session, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) error {
	if !aiChannelAllowed(c.cfg, e.ChannelID) {
		return respondEphemeral(s, e, "AI is disabled in this channel.")
	}

	results := c.svc.RecentResults(historyLimit)
	if len(results) == 0 {
		return respondMessage(s, e, "No recent results to summarize.")
	}

	if err := respondDeferred(s, e); err != nil {
		return err
	}

	var sb strings.Builder
	for _, r := range results {
		fmt.Fprintf(&sb, "R%d: %s def %s %s\n", r.Round, r.Winner, r.Loser, r.Score)
	}
	prompt := "Summarize these junior ladder results in 2-3 sentences:\n" + sb.String()

	answer, err := c.assistant.Ask(ctx, prompt)
	if err != nil {
		c.logger.Error("Assistant request failed", zap.Error(err))

		return followUpMessage(s, e, "Sorry, I couldn't summarize the round right now. Please try again.")
	}

	return followUpMessage(s, e, truncate(answer, replyLimit))
}
