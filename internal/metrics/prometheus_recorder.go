package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "devdocs"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	runDuration     *prom.HistogramVec
	runOutcome      *prom.CounterVec
	filesDiscovered prom.Gauge
	stubsCreated    prom.Counter
	indexResults    *prom.CounterVec
	substitutions   prom.Counter
}

// NewPrometheusRecorder constructs the metrics and registers them with reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		runDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of tool runs",
			Buckets:   prom.DefBuckets,
		}, []string{"tool"}),
		runOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "run_outcomes_total",
			Help:      "Tool runs by final status",
		}, []string{"tool", "outcome"}),
		filesDiscovered: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "source_files",
			Help:      "Source files listed in the last generated index",
		}),
		stubsCreated: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "stubs_created_total",
			Help:      "Stub pages created for new source files",
		}),
		indexResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "index_results_total",
			Help:      "Index writes by result",
		}, []string{"result"}),
		substitutions: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "substitutions_total",
			Help:      "Version placeholders replaced in markdown pages",
		}),
	}
	reg.MustRegister(pr.runDuration, pr.runOutcome, pr.filesDiscovered, pr.stubsCreated, pr.indexResults, pr.substitutions)
	return pr
}

func (p *PrometheusRecorder) ObserveRunDuration(tool string, d time.Duration) {
	if p == nil {
		return
	}
	p.runDuration.WithLabelValues(tool).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(tool string, outcome OutcomeLabel) {
	if p == nil {
		return
	}
	p.runOutcome.WithLabelValues(tool, string(outcome)).Inc()
}

func (p *PrometheusRecorder) SetFilesDiscovered(n int) {
	if p == nil {
		return
	}
	p.filesDiscovered.Set(float64(n))
}

func (p *PrometheusRecorder) AddStubsCreated(n int) {
	if p == nil {
		return
	}
	p.stubsCreated.Add(float64(n))
}

func (p *PrometheusRecorder) IncIndexResult(result IndexResult) {
	if p == nil {
		return
	}
	p.indexResults.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) AddSubstitutions(n int) {
	if p == nil {
		return
	}
	p.substitutions.Add(float64(n))
}
