// Package assistant provides assistant service infrastructure and Fx modules.
package assistant

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/brookhaven-tennis/go-discord-ladder/internal/config"
)

// Module provides assistant dependencies.
var Module = fx.Module("assistant",
	fx.Provide(
		NewAnswerCacheProvider,
		NewAssistant,
	),
)

const defaultAnswerCacheSize = 256

// NewAnswerCacheProvider creates an AnswerCache with config-derived size.
func NewAnswerCacheProvider(cfg *config.Config, logger *zap.Logger) (*AnswerCache, error) {
	size := cfg.OpenAI.AnswerCacheSize
	if size <= 0 {
		logger.Warn("OpenAI AnswerCacheSize is not configured or is invalid, defaulting",
			zap.Int("configuredSize", size),
			zap.Int("defaultSize", defaultAnswerCacheSize))
		size = defaultAnswerCacheSize
	}
	logger.Info("Creating AnswerCache", zap.Int("size", size))

	return NewAnswerCache(size)
}
