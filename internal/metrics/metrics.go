// Package metrics exposes Prometheus counters for exports, layout
// generation and AI content fills. A nil *Metrics records nothing.
package metrics

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all the application metrics
type Metrics struct {
	// Export metrics
	ExportTotal    *prometheus.CounterVec
	ExportDuration *prometheus.HistogramVec

	// Layout generation metrics
	LayoutTotal *prometheus.CounterVec

	// AI content metrics
	ContentFillTotal    *prometheus.CounterVec
	ContentFillDuration prometheus.Histogram
}

var (
	defaultMetrics *Metrics
	defaultOnce    sync.Once
)

// Default returns the process-wide instance registered with the default
// Prometheus registry.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = New(prometheus.DefaultRegisterer)
	})
	return defaultMetrics
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ExportTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "proprofile_exports_total",
			Help: "Total number of exports",
		}, []string{"format", "status"}),

		ExportDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "proprofile_export_duration_seconds",
			Help:    "Export duration in seconds, rendering and storing included",
			Buckets: prometheus.DefBuckets,
		}, []string{"format"}),

		LayoutTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "proprofile_layout_generations_total",
			Help: "Total number of layouts and templates applied",
		}, []string{"kind", "status"}),

		ContentFillTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "proprofile_content_fills_total",
			Help: "Total number of AI content fills by outcome",
		}, []string{"status"}),

		ContentFillDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "proprofile_content_fill_duration_seconds",
			Help:    "AI content generation duration in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 60},
		}),
	}
	reg.MustRegister(m.ExportTotal, m.ExportDuration, m.LayoutTotal, m.ContentFillTotal, m.ContentFillDuration)
	return m
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObserveExport records one export of the given format ("pdf" or "png").
func (m *Metrics) ObserveExport(format string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.ExportTotal.WithLabelValues(format, status(err)).Inc()
	if err == nil {
		m.ExportDuration.WithLabelValues(format).Observe(d.Seconds())
	}
}

// ObserveLayout records one layout or template application.
func (m *Metrics) ObserveLayout(kind string, err error) {
	if m == nil {
		return
	}
	m.LayoutTotal.WithLabelValues(kind, status(err)).Inc()
}

// ObserveContentFill records one AI fill. outcome is "ok", "error" or
// "stale".
func (m *Metrics) ObserveContentFill(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.ContentFillTotal.WithLabelValues(outcome).Inc()
	if outcome != "error" {
		m.ContentFillDuration.Observe(d.Seconds())
	}
}

// Serve exposes /metrics for the default registry on addr until ctx ends.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("[METRICS] Serving /metrics on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
