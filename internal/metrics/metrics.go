// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exports upload and cleanup counters in the Prometheus
// text format. All methods are safe to call on a nil *Metrics, which turns
// them into no-ops.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "upload_keeper"

const (
	resultStored = "stored"
	resultFailed = "failed"
)

type Metrics struct {
	registry *prometheus.Registry

	uploads        *prometheus.CounterVec
	uploadDuration prometheus.Histogram
	uploadedBytes  prometheus.Counter

	cleanupRemoved prometheus.Counter
	cleanupErrors  prometheus.Counter
}

// New creates the collectors on a private registry together with the Go
// runtime and process collectors.
func New() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploads_total",
			Help:      "Uploads handed to the upload repository, by result.",
		}, []string{"result"}),
		uploadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upload_duration_seconds",
			Help:      "Time spent storing an upload.",
			Buckets:   prometheus.DefBuckets,
		}),
		uploadedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploaded_bytes_total",
			Help:      "Bytes of successfully stored uploads.",
		}),
		cleanupRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cleanup_removed_total",
			Help:      "Expired uploads removed by the cleanup worker.",
		}),
		cleanupErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cleanup_errors_total",
			Help:      "Cleanup sweeps that ended with an error.",
		}),
	}

	var errs []error
	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.uploads,
		m.uploadDuration,
		m.uploadedBytes,
		m.cleanupRemoved,
		m.cleanupErrors,
	} {
		errs = append(errs, m.registry.Register(c))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	// expose both result series from the first scrape
	m.uploads.WithLabelValues(resultStored)
	m.uploads.WithLabelValues(resultFailed)

	return m, nil
}

// ObserveUpload records one call to the upload repository.
func (m *Metrics) ObserveUpload(duration time.Duration, size int64, err error) {
	if m == nil {
		return
	}

	m.uploadDuration.Observe(duration.Seconds())
	if err != nil {
		m.uploads.WithLabelValues(resultFailed).Inc()
		return
	}

	m.uploads.WithLabelValues(resultStored).Inc()
	m.uploadedBytes.Add(float64(size))
}

// ObserveCleanup records one cleanup sweep.
func (m *Metrics) ObserveCleanup(removed int, err error) {
	if m == nil {
		return
	}

	if removed > 0 {
		m.cleanupRemoved.Add(float64(removed))
	}
	if err != nil {
		m.cleanupErrors.Inc()
	}
}

// Gatherer exposes the private registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// Handler serves the registry. A nil *Metrics serves 404.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
