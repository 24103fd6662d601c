package commands

import (
	"unicode/utf8"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
)

// respondMessage sends a plain public response to the interaction.
func respondMessage(s *session.Session, e *gateway.InteractionCreateEvent, content string) error {
	return s.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Content: option.NewNullableString(content),
		},
	})
}

// respondEphemeral sends a response only the invoking user can see.
func respondEphemeral(s *session.Session, e *gateway.InteractionCreateEvent, content string) error {
	return s.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Content: option.NewNullableString(content),
			Flags:   discord.EphemeralMessage,
		},
	})
}

// respondEmbeds sends a public embed response to the interaction.
func respondEmbeds(s *session.Session, e *gateway.InteractionCreateEvent, embeds ...discord.Embed) error {
	return s.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Embeds: &embeds,
		},
	})
}

// respondDeferred acknowledges the interaction with a "thinking" state so a
// slow follow-up (an OpenAI call) does not hit the 3 second deadline.
func respondDeferred(s *session.Session, e *gateway.InteractionCreateEvent) error {
	return s.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.DeferredMessageInteractionWithSource,
	})
}

// followUpMessage sends a plain follow-up after a deferred or initial response.
func followUpMessage(s *session.Session, e *gateway.InteractionCreateEvent, content string) error {
	_, err := s.FollowUpInteraction(e.AppID, e.Token, api.InteractionResponseData{
		Content: option.NewNullableString(content),
	})

	return err
}

// followUpEmbeds sends an embed follow-up after a deferred or initial response.
func followUpEmbeds(s *session.Session, e *gateway.InteractionCreateEvent, embeds ...discord.Embed) error {
	_, err := s.FollowUpInteraction(e.AppID, e.Token, api.InteractionResponseData{
		Embeds: &embeds,
	})

	return err
}

// EventUser returns the invoking user, whether the interaction came from a
// guild (Member set) or a DM (User set).
func EventUser(e *gateway.InteractionCreateEvent) discord.User {
	if e.Member != nil {
		return e.Member.User
	}
	if e.User != nil {
		return *e.User
	}

	return discord.User{}
}

// truncate cuts a reply down to limit bytes on a rune boundary, appending an
// ellipsis when anything was dropped.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut] + "…"
}
