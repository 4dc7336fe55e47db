// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/shahparag-spring2021/webapp/internal/config"
	"github.com/shahparag-spring2021/webapp/internal/logger"
)

// OrphanSweeper periodically removes blobs left behind by partially failed
// uploads and deletions.
type OrphanSweeper struct {
	reconciler BlobReconciler
	interval   time.Duration
	grace      time.Duration

	logger *logger.Logger
}

func NewOrphanSweeper(reconciler BlobReconciler, cfg config.Workers, logger *logger.Logger) *OrphanSweeper {
	return &OrphanSweeper{
		reconciler: reconciler,
		interval:   cfg.SweepInterval,
		grace:      cfg.SweepGracePeriod,
		logger:     logger,
	}
}

// Run sweeps once per interval until ctx is cancelled.
func (s *OrphanSweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Dur("grace", s.grace).Msg("orphan sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("orphan sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *OrphanSweeper) sweep(ctx context.Context) {
	ctx = s.logger.WithContext(ctx)

	removed, err := s.reconciler.ReconcileBlobs(ctx, s.grace)
	if err != nil {
		s.logger.Error().Err(err).Int("removed", removed).Msg("orphan sweep finished with errors")
		return
	}
	if removed > 0 {
		s.logger.Info().Int("removed", removed).Msg("orphan sweep finished")
	}
}
