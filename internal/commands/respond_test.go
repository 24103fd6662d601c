package commands

import (
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/stretchr/testify/assert"
)

func TestEventUser(t *testing.T) {
	t.Run("GuildInteraction", func(t *testing.T) {
		e := &gateway.InteractionCreateEvent{
			InteractionEvent: discord.InteractionEvent{
				Member: &discord.Member{
					User: discord.User{ID: 42, Username: "alice"},
				},
			},
		}

		user := EventUser(e)
		assert.Equal(t, discord.UserID(42), user.ID)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("DirectMessageInteraction", func(t *testing.T) {
		e := &gateway.InteractionCreateEvent{
			InteractionEvent: discord.InteractionEvent{
				User: &discord.User{ID: 7, Username: "bob"},
			},
		}

		user := EventUser(e)
		assert.Equal(t, discord.UserID(7), user.ID)
	})

	t.Run("NeitherSet", func(t *testing.T) {
		e := &gateway.InteractionCreateEvent{}

		user := EventUser(e)
		assert.Equal(t, discord.UserID(0), user.ID)
	})
}
