package bot

import (
	"context"
	"fmt"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/brookhaven-tennis/go-discord-ladder/internal/commands"
	"github.com/brookhaven-tennis/go-discord-ladder/internal/config"
)

// Bot represents the Discord bot.
type Bot struct {
	session    *session.Session
	config     *config.Config
	cmdManager *commands.CommandManager
	perms      *commands.Permissions
	logger     *zap.Logger
}

// NewBotParameters holds dependencies for NewBot.
type NewBotParameters struct {
	fx.In

	Cfg        *config.Config
	Session    *session.Session
	CmdManager *commands.CommandManager
	Perms      *commands.Permissions
	Logger     *zap.Logger
}

// NewBot creates and initializes a new Bot.
func NewBot(params NewBotParameters) (*Bot, error) {
	if params.Session == nil {
		return nil, fmt.Errorf("session provided to NewBot is nil")
	}
	if params.Cfg == nil {
		return nil, fmt.Errorf("config provided to NewBot is nil")
	}
	if params.CmdManager == nil {
		return nil, fmt.Errorf("command manager provided to NewBot is nil")
	}

	b := &Bot{
		session:    params.Session,
		config:     params.Cfg,
		cmdManager: params.CmdManager,
		perms:      params.Perms,
		logger:     params.Logger,
	}

	params.Session.AddHandler(func(e *gateway.InteractionCreateEvent) {
		b.handleInteraction(context.Background(), e)
	})

	return b, nil
}

// Start registers slash commands with the configured guilds. Session opening
// is handled by the Fx lifecycle.
func (b *Bot) Start(ctx context.Context) error {
	var guildIDs []discord.GuildID
	for _, idStr := range b.config.Discord.GuildIDs {
		sf, err := discord.ParseSnowflake(idStr)
		if err != nil {
			b.logger.Error("Failed to parse guild ID", zap.String("guildID", idStr), zap.Error(err))

			continue
		}
		guildIDs = append(guildIDs, discord.GuildID(sf))
	}
	if len(guildIDs) == 0 {
		return fmt.Errorf("no valid guild IDs configured")
	}

	if err := b.cmdManager.RegisterCommands(guildIDs); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	b.logger.Info("Bot started", zap.Int("guilds", len(guildIDs)))

	return nil
}

// Stop performs bot-specific shutdown. Session closing is handled by the
// Fx lifecycle.
func (b *Bot) Stop(ctx context.Context) error {
	b.logger.Info("Bot stopped")

	return nil
}
