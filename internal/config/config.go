package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults applied when the corresponding config values are absent.
const (
	DefaultModel        = "gpt-4o-mini"
	DefaultMaxTokens    = 500
	DefaultTimezone     = "America/Chicago"
	DefaultPairingsCron = "0 9 * * 1"
	DefaultDataFile     = "ladder_data.json"
)

// DiscordConfig stores Discord specific configurations.
type DiscordConfig struct {
	BotToken      string             `yaml:"bot_token"`
	ApplicationID *discord.Snowflake `yaml:"application_id"`
	GuildIDs      []string           `yaml:"guild_ids"`

	// AdminRole is the role name required for ladder administration
	// commands. Empty means anyone may administer the ladder.
	AdminRole string `yaml:"admin_role"`

	// AllowedUserIDs restricts every command to the listed users when
	// non-empty.
	AllowedUserIDs []uint64 `yaml:"allowed_user_ids"`

	// AIChannelIDs restricts the /ai command to the listed channels when
	// non-empty.
	AIChannelIDs []uint64 `yaml:"ai_channel_ids"`

	// AnnounceChannelID is where the scheduler posts weekly pairings.
	// Zero disables announcements.
	AnnounceChannelID uint64 `yaml:"announce_channel_id"`
}

// OpenAIConfig stores OpenAI specific configurations.
type OpenAIConfig struct {
	APIKey          string `yaml:"api_key"`
	Model           string `yaml:"model"`
	MaxTokens       int    `yaml:"max_tokens"`
	AnswerCacheSize int    `yaml:"answer_cache_size"`
}

// LadderConfig stores ladder specific configurations.
type LadderConfig struct {
	Name         string `yaml:"name"`
	DataFile     string `yaml:"data_file"`
	StartDate    string `yaml:"start_date"`
	Timezone     string `yaml:"timezone"`
	PairingsCron string `yaml:"pairings_cron"`
}

// Start parses the configured start date as midnight in the configured
// timezone, so the gate opens on the local calendar date rather than the UTC
// one. A zero time is returned when no start date is configured, meaning
// pairings may begin immediately.
func (lc LadderConfig) Start() (time.Time, error) {
	if lc.StartDate == "" {
		return time.Time{}, nil
	}

	loc, err := lc.Location()
	if err != nil {
		return time.Time{}, err
	}

	return time.ParseInLocation("2006-01-02", lc.StartDate, loc)
}

// Location loads the configured timezone.
func (lc LadderConfig) Location() (*time.Location, error) {
	return time.LoadLocation(lc.Timezone)
}

// Config stores the application configuration.
type Config struct {
	Discord  DiscordConfig `yaml:"discord"`
	OpenAI   OpenAIConfig  `yaml:"openai"`
	Ladder   LadderConfig  `yaml:"ladder"`
	LogLevel string        `yaml:"log_level"`
}

// LoadConfig loads the configuration from the given file path.
// A .env file, when present, is loaded first; the DISCORD_BOT_TOKEN and
// OPENAI_API_KEY environment variables override the file values so secrets
// can stay out of config.yaml.
func LoadConfig(filePath string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if token := os.Getenv("DISCORD_BOT_TOKEN"); token != "" {
		cfg.Discord.BotToken = token
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.OpenAI.APIKey = key
	}

	applyDefaults(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = DefaultModel
	}
	if cfg.OpenAI.MaxTokens <= 0 {
		cfg.OpenAI.MaxTokens = DefaultMaxTokens
	}
	if cfg.Ladder.Timezone == "" {
		cfg.Ladder.Timezone = DefaultTimezone
	}
	if cfg.Ladder.PairingsCron == "" {
		cfg.Ladder.PairingsCron = DefaultPairingsCron
	}
	if cfg.Ladder.DataFile == "" {
		// DATA_DIR points at the persistent volume in hosted deployments.
		cfg.Ladder.DataFile = filepath.Join(os.Getenv("DATA_DIR"), DefaultDataFile)
	}
}

func (cfg *Config) validate() error {
	if cfg.Discord.BotToken == "" {
		return errors.New("discord bot token is not set in config")
	}
	if cfg.Discord.ApplicationID == nil || *cfg.Discord.ApplicationID == 0 {
		return errors.New("application ID is not set in config")
	}
	if _, err := cfg.Ladder.Start(); err != nil {
		return fmt.Errorf("invalid ladder start_date %q: %w", cfg.Ladder.StartDate, err)
	}
	if _, err := cfg.Ladder.Location(); err != nil {
		return fmt.Errorf("invalid ladder timezone %q: %w", cfg.Ladder.Timezone, err)
	}

	return nil
}
