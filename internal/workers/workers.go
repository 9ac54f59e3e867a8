package workers

import (
	"context"

	"github.com/MKhiriev/go-upload-keeper/internal/config"
	"github.com/MKhiriev/go-upload-keeper/internal/logger"
	"github.com/MKhiriev/go-upload-keeper/internal/metrics"
	"github.com/MKhiriev/go-upload-keeper/internal/store"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
	group   errgroup.Group
}

func NewWorkers(storages *store.Storages, m *metrics.Metrics, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewUploadCleanupWorker(storages.UploadRepository, cfg.CleanupInterval, m, logger),
		},
	}
}

// Run starts every worker in its own goroutine and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.group.Go(func() error {
			worker.Run(ctx)
			return nil
		})
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	_ = w.group.Wait()
}
