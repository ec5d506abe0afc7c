// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Salama Project Authors

package workers

import (
	"context"
	"time"

	"github.com/salamaline/salama/internal/config"
	"github.com/salamaline/salama/internal/logger"
	"github.com/salamaline/salama/internal/service"
)

// retentionSweeper periodically deletes cases whose retention window has
// elapsed. It always sweeps with the configured default window; one-off
// windows are only available through the retention endpoint.
type retentionSweeper struct {
	ctx       context.Context
	retention service.RetentionService
	interval  time.Duration
	logger    *logger.Logger
}

func newRetentionSweeper(ctx context.Context, retention service.RetentionService, cfg config.Retention, logger *logger.Logger) *retentionSweeper {
	return &retentionSweeper{
		ctx:       ctx,
		retention: retention,
		interval:  cfg.SweepInterval,
		logger:    logger,
	}
}

// Run starts the sweep loop in its own goroutine and returns immediately.
func (s *retentionSweeper) Run() {
	go s.loop()
}

func (s *retentionSweeper) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// one sweep at startup so a long interval does not delay the first purge
	s.sweep()

	for {
		select {
		case <-s.ctx.Done():
			s.logger.Info().Msg("retention sweeper stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *retentionSweeper) sweep() {
	deleted, err := s.retention.Cleanup(s.ctx, 0)
	if err != nil {
		s.logger.Error().Err(err).Msg("retention sweep failed")
		return
	}

	if deleted > 0 {
		s.logger.Info().Int("deleted", deleted).Msg("retention sweep removed expired cases")
	}
}
