// Package scheduler posts automatic round pairings on a cron schedule.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/brookhaven-tennis/go-discord-ladder/internal/commands"
	"github.com/brookhaven-tennis/go-discord-ladder/internal/config"
	"github.com/brookhaven-tennis/go-discord-ladder/internal/ladder"
)

// Announcer sends scheduled messages to a channel. *session.Session satisfies it.
type Announcer interface {
	SendMessageComplex(channelID discord.ChannelID, data api.SendMessageData) (*discord.Message, error)
}

// Scheduler runs the weekly pairings announcement.
type Scheduler struct {
	logger    *zap.Logger
	cfg       *config.Config
	svc       *ladder.Service
	announcer Announcer
	cron      *cron.Cron
	now       func() time.Time
}

// NewScheduler creates a Scheduler with the configured cron spec and timezone.
func NewScheduler(logger *zap.Logger, cfg *config.Config, svc *ladder.Service, announcer Announcer) (*Scheduler, error) {
	loc, err := cfg.Ladder.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Ladder.Timezone, err)
	}

	s := &Scheduler{
		logger:    logger.Named("scheduler"),
		cfg:       cfg,
		svc:       svc,
		announcer: announcer,
		cron:      cron.New(cron.WithLocation(loc)),
		now:       func() time.Time { return time.Now().In(loc) },
	}

	if _, err := s.cron.AddFunc(cfg.Ladder.PairingsCron, s.announcePairings); err != nil {
		return nil, fmt.Errorf("invalid pairings cron spec %q: %w", cfg.Ladder.PairingsCron, err)
	}

	return s, nil
}

// Start begins the cron loop.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.cfg.Discord.AnnounceChannelID == 0 {
		s.logger.Info("No announce channel configured, scheduled pairings disabled")

		return nil
	}

	s.cron.Start()
	s.logger.Info("Scheduler started",
		zap.String("cron", s.cfg.Ladder.PairingsCron),
		zap.String("timezone", s.cfg.Ladder.Timezone),
	)

	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop(ctx context.Context) error {
	stopped := s.cron.Stop()
	select {
	case <-stopped.Done():
	case <-ctx.Done():
		return ctx.Err()
	}

	s.logger.Info("Scheduler stopped")

	return nil
}

func (s *Scheduler) announcePairings() {
	chID := discord.ChannelID(s.cfg.Discord.AnnounceChannelID)
	if chID == 0 {
		return
	}

	start, err := s.cfg.Ladder.Start()
	if err != nil {
		s.logger.Error("Invalid ladder start date", zap.Error(err))

		return
	}
	if !start.IsZero() && s.now().Before(start) {
		s.logger.Info("Skipping scheduled pairings, ladder has not started",
			zap.Time("start", start))

		return
	}

	pairings, round, err := s.svc.GeneratePairings()
	if errors.Is(err, ladder.ErrEmptyLadder) {
		s.logger.Info("Skipping scheduled pairings, ladder is empty")

		return
	}
	if err != nil {
		s.logger.Error("Failed to generate scheduled pairings", zap.Error(err))

		return
	}

	embed := commands.PairingsEmbed(round, pairings, s.svc.Players())
	if _, err := s.announcer.SendMessageComplex(chID, api.SendMessageData{
		Embeds: []discord.Embed{embed},
	}); err != nil {
		s.logger.Error("Failed to announce pairings",
			zap.Int("round", round),
			zap.Error(err),
		)

		return
	}

	s.logger.Info("Announced scheduled pairings", zap.Int("round", round))
}
