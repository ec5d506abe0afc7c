package workers

import (
	"context"

	"github.com/salamaline/salama/internal/config"
	"github.com/salamaline/salama/internal/logger"
	"github.com/salamaline/salama/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the server's background workers: currently a single
// retention sweeper that purges expired cases on a fixed interval.
func NewWorkers(ctx context.Context, services *service.Services, cfg config.Retention, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newRetentionSweeper(ctx, services.RetentionService, cfg, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
