// Package metrics exports per-unit benchmark timings as Prometheus metrics.
//
// A Collector is a harness.Observer: plug it into a run with
// harness.WithObserver and dump the collected series in the Prometheus text
// exposition format once the run finishes.
package metrics

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// ErrInvalidConfig is returned when the collector configuration is invalid.
var ErrInvalidConfig = errors.New("invalid metrics configuration")

// Config configures a Collector.
type Config struct {
	// Namespace is the metrics namespace. Required.
	Namespace string

	// Subsystem is the metrics subsystem. Required.
	Subsystem string

	// DurationBuckets defines histogram buckets for invocation time (seconds).
	// If nil, DefaultConfig's buckets are used.
	DurationBuckets []float64
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Namespace: "benchmocker",
		Subsystem: "unit",
		DurationBuckets: []float64{
			0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0,
		},
	}
}

// Validate checks that required fields are set.
func (c *Config) Validate() error {
	if c.Namespace == "" {
		return fmt.Errorf("%w: namespace is required", ErrInvalidConfig)
	}
	if c.Subsystem == "" {
		return fmt.Errorf("%w: subsystem is required", ErrInvalidConfig)
	}
	return nil
}

// Collector records invocation durations and counts per unit on its own
// registry, so several collectors can coexist in one process.
//
// Thread Safety: Safe for concurrent use.
type Collector struct {
	registry    *prometheus.Registry
	duration    *prometheus.HistogramVec
	invocations *prometheus.CounterVec

	mu    sync.Mutex
	total map[string]time.Duration
}

// New creates a Collector. A nil config uses DefaultConfig.
func New(cfg *Config) (*Collector, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	buckets := cfg.DurationBuckets
	if buckets == nil {
		buckets = DefaultConfig().DurationBuckets
	}

	c := &Collector{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "duration_seconds",
			Help:      "Elapsed time of one work unit invocation.",
			Buckets:   buckets,
		}, []string{"unit"}),
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "invocations_total",
			Help:      "Completed work unit invocations.",
		}, []string{"unit"}),
		total: make(map[string]time.Duration),
	}

	for _, col := range []prometheus.Collector{c.duration, c.invocations} {
		if err := c.registry.Register(col); err != nil {
			return nil, fmt.Errorf("register metric: %w", err)
		}
	}
	return c, nil
}

// Observe records one completed invocation of unit.
func (c *Collector) Observe(unit string, elapsed time.Duration) {
	c.duration.WithLabelValues(unit).Observe(elapsed.Seconds())
	c.invocations.WithLabelValues(unit).Inc()

	c.mu.Lock()
	c.total[unit] += elapsed
	c.mu.Unlock()
}

// Total returns the summed elapsed time observed for unit.
func (c *Collector) Total(unit string) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total[unit]
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteText writes every collected metric family in the Prometheus text
// exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
