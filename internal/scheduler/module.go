package scheduler

import (
	"context"

	"github.com/diamondburned/arikawa/v3/session"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/brookhaven-tennis/go-discord-ladder/internal/config"
	"github.com/brookhaven-tennis/go-discord-ladder/internal/ladder"
)

// Module provides the pairings scheduler and ties it to the app lifecycle.
var Module = fx.Module("scheduler",
	fx.Provide(NewSchedulerProvider),
	fx.Invoke(registerLifecycle),
)

// NewSchedulerProvider builds the Scheduler on top of the shared Discord session.
func NewSchedulerProvider(logger *zap.Logger, cfg *config.Config, svc *ladder.Service, s *session.Session) (*Scheduler, error) {
	return NewScheduler(logger, cfg, svc, s)
}

func registerLifecycle(lc fx.Lifecycle, s *Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return s.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}
