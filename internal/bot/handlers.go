package bot

import (
	"context"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
	"go.uber.org/zap"

	"github.com/brookhaven-tennis/go-discord-ladder/internal/commands"
)

func (b *Bot) handleInteraction(ctx context.Context, e *gateway.InteractionCreateEvent) {
	data, ok := e.Data.(*discord.CommandInteraction)
	if !ok {
		b.logger.Debug("Received unhandled interaction type", zap.Any("type", e.Data))

		return
	}

	user := commands.EventUser(e)
	b.logger.Info("Received slash command",
		zap.String("commandName", data.Name),
		zap.Stringer("user", user.ID),
	)

	if !b.perms.AllowedUser(user.ID) {
		b.respondEphemeral(e, "This bot is private.")

		return
	}

	cmd, ok := b.cmdManager.GetCommand(data.Name)
	if !ok {
		b.logger.Warn("Unknown command", zap.String("commandName", data.Name))
		b.respondEphemeral(e, "Command not found.")

		return
	}

	if err := cmd.Execute(ctx, b.session, e, data); err != nil {
		b.logger.Error("Error executing command",
			zap.String("commandName", data.Name),
			zap.Error(err),
		)
		b.respondEphemeral(e, "An error occurred while executing the command.")

		return
	}

	b.logger.Debug("Command executed successfully", zap.String("commandName", data.Name))
}

func (b *Bot) respondEphemeral(e *gateway.InteractionCreateEvent, content string) {
	err := b.session.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Content: option.NewNullableString(content),
			Flags:   discord.EphemeralMessage,
		},
	})
	if err != nil {
		b.logger.Error("Failed to respond to interaction", zap.Error(err))
	}
}
