// ABOUTME: Prometheus collectors for routing decisions, file actions and model calls
// ABOUTME: Nil-safe recording methods; optional export in node_exporter textfile format

package telemetry

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pi_assist"

// Metrics exposes Prometheus collectors that report assistant activity.
// A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	routes       *prometheus.CounterVec
	fileActions  *prometheus.CounterVec
	validations  *prometheus.CounterVec
	modelCalls   *prometheus.CounterVec
	modelTokens  *prometheus.CounterVec
	modelCost    prometheus.Counter
	modelLatency *prometheus.HistogramVec
}

// NewMetrics builds the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		routes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "router",
			Name:      "decisions_total",
			Help:      "Routing decisions by action and by how they were reached (prefix, model, fallback, error).",
		}, []string{"action", "source"}),
		fileActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "file_agent",
			Name:      "runs_total",
			Help:      "File agent runs by mode and outcome.",
		}, []string{"mode", "outcome"}),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "validator",
			Name:      "cross_checks_total",
			Help:      "Heuristic cross-checks of model classifications by agreement.",
		}, []string{"agreement"}),
		modelCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "model",
			Name:      "calls_total",
			Help:      "Model calls by prompt purpose and status.",
		}, []string{"purpose", "status"}),
		modelTokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "model",
			Name:      "tokens_total",
			Help:      "Tokens consumed by prompt purpose and direction.",
		}, []string{"purpose", "direction"}),
		modelCost: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "model",
			Name:      "estimated_cost_usd_total",
			Help:      "Estimated spend in USD based on the built-in pricing table.",
		}),
		modelLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "model",
			Name:      "call_duration_seconds",
			Help:      "Wall time of model calls by prompt purpose.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"purpose"}),
	}

	m.registry.MustRegister(
		m.routes, m.fileActions, m.validations,
		m.modelCalls, m.modelTokens, m.modelCost, m.modelLatency,
	)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordRoute counts a routing decision.
func (m *Metrics) RecordRoute(action, source string) {
	if m == nil {
		return
	}
	m.routes.WithLabelValues(action, source).Inc()
}

// RecordFileAction counts a file agent run. outcome is "result" or "error".
func (m *Metrics) RecordFileAction(mode, outcome string) {
	if m == nil {
		return
	}
	m.fileActions.WithLabelValues(mode, outcome).Inc()
}

// RecordValidation counts a cross-check; agree reports label agreement.
func (m *Metrics) RecordValidation(agree bool) {
	if m == nil {
		return
	}
	label := "disagree"
	if agree {
		label = "agree"
	}
	m.validations.WithLabelValues(label).Inc()
}

// ModelCall describes one finished model call.
type ModelCall struct {
	Purpose      string
	ModelID      string
	Err          error
	Duration     time.Duration
	InputTokens  int
	OutputTokens int
}

// RecordModelCall counts the call, its tokens, estimated cost and latency.
func (m *Metrics) RecordModelCall(c ModelCall) {
	if m == nil {
		return
	}
	status := "ok"
	if c.Err != nil {
		status = "error"
	}
	m.modelCalls.WithLabelValues(c.Purpose, status).Inc()
	m.modelLatency.WithLabelValues(c.Purpose).Observe(c.Duration.Seconds())
	if c.InputTokens > 0 {
		m.modelTokens.WithLabelValues(c.Purpose, "input").Add(float64(c.InputTokens))
	}
	if c.OutputTokens > 0 {
		m.modelTokens.WithLabelValues(c.Purpose, "output").Add(float64(c.OutputTokens))
	}
	m.modelCost.Add(EstimateCost(c.ModelID, c.InputTokens, c.OutputTokens))
}

// WriteTextfile writes all collected metrics to path in the Prometheus text
// format, atomically (temp file + rename).
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
