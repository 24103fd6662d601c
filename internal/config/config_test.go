package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

const validConfig = `
discord:
  bot_token: "token-123"
  application_id: 123456789
  guild_ids: ["111", "222"]
  admin_role: "Ladder Admin"
openai:
  api_key: "sk-test"
ladder:
  name: "Spring Ladder"
  start_date: "2026-03-01"
`

func TestLoadConfig(t *testing.T) {
	t.Run("ValidFile", func(t *testing.T) {
		cfg, err := LoadConfig(writeConfigFile(t, validConfig))
		require.NoError(t, err)

		assert.Equal(t, "token-123", cfg.Discord.BotToken)
		assert.Equal(t, []string{"111", "222"}, cfg.Discord.GuildIDs)
		assert.Equal(t, "Ladder Admin", cfg.Discord.AdminRole)
		assert.Equal(t, "Spring Ladder", cfg.Ladder.Name)
	})

	t.Run("DefaultsApplied", func(t *testing.T) {
		cfg, err := LoadConfig(writeConfigFile(t, validConfig))
		require.NoError(t, err)

		assert.Equal(t, DefaultModel, cfg.OpenAI.Model)
		assert.Equal(t, DefaultMaxTokens, cfg.OpenAI.MaxTokens)
		assert.Equal(t, DefaultTimezone, cfg.Ladder.Timezone)
		assert.Equal(t, DefaultPairingsCron, cfg.Ladder.PairingsCron)
		assert.Equal(t, DefaultDataFile, cfg.Ladder.DataFile)
	})

	t.Run("EnvOverridesFile", func(t *testing.T) {
		t.Setenv("DISCORD_BOT_TOKEN", "env-token")
		t.Setenv("OPENAI_API_KEY", "env-key")

		cfg, err := LoadConfig(writeConfigFile(t, validConfig))
		require.NoError(t, err)

		assert.Equal(t, "env-token", cfg.Discord.BotToken)
		assert.Equal(t, "env-key", cfg.OpenAI.APIKey)
	})

	t.Run("DataDirPrefixesDataFile", func(t *testing.T) {
		t.Setenv("DATA_DIR", "/var/lib/ladder")

		cfg, err := LoadConfig(writeConfigFile(t, validConfig))
		require.NoError(t, err)

		assert.Equal(t, filepath.Join("/var/lib/ladder", DefaultDataFile), cfg.Ladder.DataFile)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("MissingBotToken", func(t *testing.T) {
		_, err := LoadConfig(writeConfigFile(t, `
discord:
  application_id: 123456789
`))
		assert.ErrorContains(t, err, "bot token")
	})

	t.Run("MissingApplicationID", func(t *testing.T) {
		_, err := LoadConfig(writeConfigFile(t, `
discord:
  bot_token: "token-123"
`))
		assert.ErrorContains(t, err, "application ID")
	})

	t.Run("InvalidStartDate", func(t *testing.T) {
		_, err := LoadConfig(writeConfigFile(t, `
discord:
  bot_token: "token-123"
  application_id: 123456789
ladder:
  start_date: "March 1st"
`))
		assert.ErrorContains(t, err, "start_date")
	})

	t.Run("InvalidTimezone", func(t *testing.T) {
		_, err := LoadConfig(writeConfigFile(t, `
discord:
  bot_token: "token-123"
  application_id: 123456789
ladder:
  timezone: "Mars/Olympus"
`))
		assert.ErrorContains(t, err, "timezone")
	})
}

func TestLadderConfigStart(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		start, err := LadderConfig{}.Start()
		require.NoError(t, err)
		assert.True(t, start.IsZero())
	})

	t.Run("Parsed", func(t *testing.T) {
		start, err := LadderConfig{StartDate: "2026-03-01"}.Start()
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), start)
	})

	t.Run("ParsedInConfiguredTimezone", func(t *testing.T) {
		tokyo, err := time.LoadLocation("Asia/Tokyo")
		require.NoError(t, err)

		start, err := LadderConfig{StartDate: "2026-03-01", Timezone: "Asia/Tokyo"}.Start()
		require.NoError(t, err)
		assert.True(t, start.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, tokyo)))
	})

	t.Run("InvalidTimezone", func(t *testing.T) {
		_, err := LadderConfig{StartDate: "2026-03-01", Timezone: "Mars/Olympus"}.Start()
		assert.Error(t, err)
	})
}
