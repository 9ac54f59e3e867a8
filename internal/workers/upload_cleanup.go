package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-upload-keeper/internal/config"
	"github.com/MKhiriev/go-upload-keeper/internal/logger"
	"github.com/MKhiriev/go-upload-keeper/internal/metrics"
)

// UploadCleanupWorker periodically evicts expired uploads.
type UploadCleanupWorker struct {
	cleaner  Cleaner
	interval time.Duration
	metrics  *metrics.Metrics

	logger *logger.Logger
}

// NewUploadCleanupWorker returns a worker calling cleaner every interval.
// A non-positive interval selects config.DefaultUploadCleanupInterval.
func NewUploadCleanupWorker(cleaner Cleaner, interval time.Duration, m *metrics.Metrics, logger *logger.Logger) *UploadCleanupWorker {
	if interval <= 0 {
		interval = config.DefaultUploadCleanupInterval
	}

	return &UploadCleanupWorker{
		cleaner:  cleaner,
		interval: interval,
		metrics:  m,
		logger:   logger,
	}
}

func (w *UploadCleanupWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("upload cleanup worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("upload cleanup worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *UploadCleanupWorker) sweep(ctx context.Context) {
	removed, err := w.cleaner.Cleanup(ctx)
	if ctx.Err() != nil {
		return
	}

	w.metrics.ObserveCleanup(removed, err)
	if err != nil {
		w.logger.Err(err).Int("removed", removed).Msg("upload cleanup failed")
		return
	}

	if removed > 0 {
		w.logger.Info().Int("removed", removed).Msg("expired uploads removed")
	}
}
