package crontab

import (
	"context"
	"fmt"
	"time"

	"github.com/mileusna/crontab"

	"brandforge/services/content-api/internal/config"
	"brandforge/services/content-api/internal/domain/generation"
	"brandforge/services/content-api/internal/infrastructure/logger"
	"brandforge/services/content-api/internal/utils/platformerrors"
)

const (
	DefaultSweepInterval = 5               // in minutes
	sweepTimeout         = 1 * time.Minute // timeout for one full availability sweep
)

// Crontab owns the periodic provider availability sweep. Each sweep probes
// every configured provider and refreshes the availability gauges.
type Crontab struct {
	ctab    *crontab.Crontab
	cfg     *config.Config
	service *generation.Service
}

func NewCrontab(cfg *config.Config, service *generation.Service) *Crontab {
	return &Crontab{
		ctab:    crontab.New(),
		cfg:     cfg,
		service: service,
	}
}

func (c *Crontab) Run(ctx context.Context) error {
	log := logger.GetLogger()

	// execute once on server start
	c.sweep(ctx)

	if c.cfg.AvailabilitySweepEnabled {
		interval := c.cfg.AvailabilitySweepIntervalMinutes
		if interval <= 0 {
			interval = DefaultSweepInterval
		}

		cronExpr := fmt.Sprintf("*/%d * * * *", interval)
		if err := c.ctab.AddJob(cronExpr, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
			defer cancel()
			c.sweep(jobCtx)
		}); err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "failed to add availability sweep job")
		}
		log.Info().Msgf("Availability sweep scheduled: every %d minute(s)", interval)
	}

	<-ctx.Done()
	c.ctab.Shutdown()
	return nil
}

// sweep probes every configured provider; the adapters refresh the provider_up
// gauge as a side effect of the probe.
func (c *Crontab) sweep(ctx context.Context) {
	log := logger.GetLogger()

	kinds := c.service.AvailableProviderKinds(ctx)
	log.Debug().
		Int("configured", c.service.ConfiguredProviderCount()).
		Int("available", len(kinds)).
		Msg("provider availability sweep complete")
}
