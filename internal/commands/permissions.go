package commands

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"github.com/diamondburned/arikawa/v3/state"
	"go.uber.org/zap"

	"github.com/brookhaven-tennis/go-discord-ladder/internal/config"
)

// Permissions answers access-control questions for commands: the global user
// allowlist and the ladder-admin role gate.
type Permissions struct {
	state  *state.State
	cfg    *config.Config
	logger *zap.Logger
}

// NewPermissions creates a Permissions checker backed by the state role cache.
func NewPermissions(st *state.State, cfg *config.Config, logger *zap.Logger) *Permissions {
	return &Permissions{
		state:  st,
		cfg:    cfg,
		logger: logger.Named("permissions"),
	}
}

// AllowedUser reports whether the user may interact with the bot at all.
// An empty allowlist admits everyone.
func (p *Permissions) AllowedUser(userID discord.UserID) bool {
	if len(p.cfg.Discord.AllowedUserIDs) == 0 {
		return true
	}

	for _, id := range p.cfg.Discord.AllowedUserIDs {
		if uint64(userID) == id {
			return true
		}
	}

	return false
}

// IsAdmin reports whether the invoking member carries the configured admin
// role. An empty role name admits everyone. Role names are resolved through
// the state's role cache.
func (p *Permissions) IsAdmin(e *gateway.InteractionCreateEvent) bool {
	if p.cfg.Discord.AdminRole == "" {
		return true
	}
	if e.Member == nil || !e.GuildID.IsValid() {
		return false
	}

	roles, err := p.state.Roles(e.GuildID)
	if err != nil {
		p.logger.Error("Failed to resolve guild roles for admin check",
			zap.Error(err), zap.Stringer("guildID", e.GuildID))

		return false
	}

	adminRoleIDs := make(map[discord.RoleID]struct{})
	for _, role := range roles {
		if role.Name == p.cfg.Discord.AdminRole {
			adminRoleIDs[role.ID] = struct{}{}
		}
	}

	for _, roleID := range e.Member.RoleIDs {
		if _, ok := adminRoleIDs[roleID]; ok {
			return true
		}
	}

	return false
}

// RequireAdmin checks the admin gate and sends the ephemeral denial itself,
// so command handlers can bail out with a single call.
func (p *Permissions) RequireAdmin(s *session.Session, e *gateway.InteractionCreateEvent) bool {
	if p.IsAdmin(e) {
		return true
	}

	msg := "You need the " + p.cfg.Discord.AdminRole + " role to use this."
	if err := respondEphemeral(s, e, msg); err != nil {
		p.logger.Error("Failed to send admin denial response", zap.Error(err))
	}

	return false
}
