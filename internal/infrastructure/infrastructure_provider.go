package infrastructure

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"brandforge/services/content-api/internal/config"
	"brandforge/services/content-api/internal/domain/generation"
	"brandforge/services/content-api/internal/infrastructure/crontab"
	"brandforge/services/content-api/internal/infrastructure/logger"
	"brandforge/services/content-api/internal/infrastructure/provider"
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

// ProvideProviders constructs the provider adapters in configuration order.
func ProvideProviders(cfg *config.Config, log zerolog.Logger) ([]generation.Provider, error) {
	return provider.Build(cfg.ProviderEntries(), log)
}

// Infrastructure holds cross-cutting infrastructure dependencies
type Infrastructure struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewInfrastructure creates a new infrastructure instance
func NewInfrastructure(cfg *config.Config, log zerolog.Logger) *Infrastructure {
	return &Infrastructure{
		Config: cfg,
		Logger: log,
	}
}

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// Config
	ProvideConfig,

	// Logger
	logger.GetLogger,

	// Provider registry
	ProvideProviders,

	// Crontab for the availability sweep
	crontab.NewCrontab,

	// Infrastructure struct
	NewInfrastructure,
)
