// Package metrics exposes Prometheus metrics for pipeline runs.
package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

var defaultStageBuckets = []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600}

// Manager owns the pipeline metrics. A nil or disabled Manager is a no-op.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	constLabels      map[string]string
	registry         *prometheus.Registry

	stageDuration  *prometheus.HistogramVec
	stageRows      *prometheus.GaugeVec
	stageFailures  *prometheus.CounterVec
	bronzeUnits    *prometheus.CounterVec
	tableRows      *prometheus.GaugeVec
	xtIterations   prometheus.Gauge
	xtConverged    prometheus.Gauge
	xgCVROCAUC     prometheus.Gauge
	xgCVLogLoss    prometheus.Gauge
	lastSuccessRun *prometheus.GaugeVec
}

// NewManager creates a manager on its own registry unless WithRegistry is given.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "football",
		subsystem:        "pipeline",
		histogramBuckets: defaultStageBuckets,
		enabled:          true,
		constLabels:      map[string]string{},
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.constLabels)

	m.stageDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "stage_duration_seconds",
		Help:        "Wall time of a pipeline stage",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	}, []string{"stage", "status"})

	m.stageRows = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "stage_rows",
		Help:        "Rows written by the last run of a stage",
		ConstLabels: labels,
	}, []string{"stage"})

	m.stageFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "stage_failures_total",
		Help:        "Stage executions that ended in error",
		ConstLabels: labels,
	}, []string{"stage"})

	m.bronzeUnits = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "bronze_units_total",
		Help:        "Bronze snapshot units by layer and outcome",
		ConstLabels: labels,
	}, []string{"layer", "status"})

	m.tableRows = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "table_rows",
		Help:        "Row count of a warehouse table after its last rebuild",
		ConstLabels: labels,
	}, []string{"table"})

	m.xtIterations = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "xt_iterations",
		Help:        "Value iteration rounds used by the last xT solve",
		ConstLabels: labels,
	})

	m.xtConverged = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "xt_converged",
		Help:        "1 when the last xT solve reached its tolerance",
		ConstLabels: labels,
	})

	m.xgCVROCAUC = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "xg_cv_roc_auc",
		Help:        "Mean cross-validated ROC-AUC of the last xG training",
		ConstLabels: labels,
	})

	m.xgCVLogLoss = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "xg_cv_log_loss",
		Help:        "Mean cross-validated log-loss of the last xG training",
		ConstLabels: labels,
	})

	m.lastSuccessRun = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "stage_last_success_timestamp_seconds",
		Help:        "Unix time of the last successful stage run",
		ConstLabels: labels,
	}, []string{"stage"})
}

func (m *Manager) active() bool {
	return m != nil && m.enabled
}

// Registry exposes the underlying registry for scraping or tests.
func (m *Manager) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveStage records one stage execution.
func (m *Manager) ObserveStage(stage, status string, elapsed time.Duration, rows int64) {
	if !m.active() {
		return
	}
	m.stageDuration.WithLabelValues(stage, status).Observe(elapsed.Seconds())
	if status == "failed" {
		m.stageFailures.WithLabelValues(stage).Inc()
		return
	}
	m.stageRows.WithLabelValues(stage).Set(float64(rows))
	m.lastSuccessRun.WithLabelValues(stage).SetToCurrentTime()
}

func (m *Manager) IncBronzeUnit(layer, status string) {
	if !m.active() {
		return
	}
	m.bronzeUnits.WithLabelValues(layer, status).Inc()
}

func (m *Manager) SetTableRows(table string, rows int64) {
	if !m.active() {
		return
	}
	m.tableRows.WithLabelValues(table).Set(float64(rows))
}

func (m *Manager) SetXTSolve(iterations int, converged bool) {
	if !m.active() {
		return
	}
	m.xtIterations.Set(float64(iterations))
	if converged {
		m.xtConverged.Set(1)
		return
	}
	m.xtConverged.Set(0)
}

func (m *Manager) SetXGCrossValidation(rocAUC, logLoss float64) {
	if !m.active() {
		return
	}
	m.xgCVROCAUC.Set(rocAUC)
	m.xgCVLogLoss.Set(logLoss)
}

// Push sends the registry to a Prometheus Pushgateway. Batch runs exit before
// a scrape could happen, so this is the delivery path for cmd/pipeline.
func (m *Manager) Push(ctx context.Context, gatewayURL, job string) error {
	if !m.active() || strings.TrimSpace(gatewayURL) == "" {
		return nil
	}
	if strings.TrimSpace(job) == "" {
		job = m.namespace + "_" + m.subsystem
	}
	if err := push.New(gatewayURL, job).Gatherer(m.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics to %s: %w", gatewayURL, err)
	}
	return nil
}
