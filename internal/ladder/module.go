// Package ladder provides the ladder domain service and its Fx module.
package ladder

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/brookhaven-tennis/go-discord-ladder/internal/config"
)

// Module provides ladder domain dependencies.
var Module = fx.Module("ladder",
	fx.Provide(
		NewStoreProvider,
		NewService,
	),
)

// NewStoreProvider creates the JSON file store at the configured path.
func NewStoreProvider(cfg *config.Config, logger *zap.Logger) *Store {
	logger.Info("Creating ladder store", zap.String("path", cfg.Ladder.DataFile))

	return NewStore(cfg.Ladder.DataFile, logger)
}
