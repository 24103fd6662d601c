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

// ConfigRuleCommand handles /config_rule.
type ConfigRuleCommand struct {
	logger *zap.Logger
	svc    *ladder.Service
	perms  *Permissions
}

// NewConfigRuleCommand creates a new ConfigRuleCommand.
func NewConfigRuleCommand(logger *zap.Logger, svc *ladder.Service, perms *Permissions) Command {
	return &ConfigRuleCommand{
		logger: logger.Named("config_rule_command"),
		svc:    svc,
		perms:  perms,
	}
}

// Name returns the name of the command.
func (c *ConfigRuleCommand) Name() string {
	return "config_rule"
}

// Description returns the description of the command.
func (c *ConfigRuleCommand) Description() string {
	return "Set the promotion rule applied to reported results"
}

// Options returns the command options.
func (c *ConfigRuleCommand) Options() []discord.CommandOption {
	return []discord.CommandOption{
		&discord.StringOption{
			OptionName:  "rule",
			Description: "Promotion rule",
			Required:    true,
			Choices: []discord.StringChoice{
				{Name: "Swap only on upset", Value: string(ladder.RuleSwapOnly)},
				{Name: "Winner up, loser down one step", Value: string(ladder.RuleOneStepAlways)},
			},
		},
	}
}

// Execute runs the command.
func (c *ConfigRuleCommand) Execute(ctx context.Context, s *session.Session, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) error {
	if !c.perms.RequireAdmin(s, e) {
		return nil
	}

	var raw string
	for _, opt := range data.Options {
		if opt.Name == "rule" {
			raw = opt.String()
		}
	}

	rule, err := ladder.ParseRule(raw)
	if err != nil {
		return respondEphemeral(s, e, fmt.Sprintf(
			"Unknown rule **%s**. Valid rules: %s, %s.",
			raw, ladder.RuleSwapOnly, ladder.RuleOneStepAlways,
		))
	}

	if err := c.svc.SetRule(rule); err != nil {
		c.logger.Error("Failed to set promotion rule", zap.Error(err))

		return respondEphemeral(s, e, "Couldn't update the rule. Please try again.")
	}

	return respondMessage(s, e, fmt.Sprintf("Ladder rule set to **%s**.", rule))
}
