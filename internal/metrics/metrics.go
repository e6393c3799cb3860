// Package metrics registers the Prometheus collectors the HTTP front end
// updates around every compile call. The core package itself
// (compile.Compile) stays metrics-free, per §5: it is a pure function with
// no observability side effects of its own; instrumentation lives entirely
// at the outer layers that call it.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collectors bundles the counters/histograms one compile server instance
// registers. Construct once per process with NewCollectors and register it
// with a prometheus.Registerer (promauto-style, but explicit so callers can
// choose a non-default registry in tests).
type Collectors struct {
	CompileTotal    *prometheus.CounterVec
	CompileDuration prometheus.Histogram
	RungsEmitted    prometheus.Histogram
	DiagnosticTotal *prometheus.CounterVec
}

// NewCollectors builds an unregistered Collectors set.
func NewCollectors() *Collectors {
	return &Collectors{
		CompileTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ladderc",
			Name:      "compile_total",
			Help:      "Number of compile calls, labeled by outcome.",
		}, []string{"outcome"}),
		CompileDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ladderc",
			Name:      "compile_duration_seconds",
			Help:      "Wall-clock duration of a single compile call.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		RungsEmitted: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ladderc",
			Name:      "rungs_emitted",
			Help:      "Number of rungs a compile call produced.",
			Buckets:   prometheus.LinearBuckets(0, 5, 10),
		}),
		DiagnosticTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ladderc",
			Name:      "diagnostic_total",
			Help:      "Number of diagnostics produced, labeled by severity.",
		}, []string{"severity"}),
	}
}

// Register registers every collector with reg.
func (c *Collectors) Register(reg prometheus.Registerer) error {
	for _, coll := range []prometheus.Collector{c.CompileTotal, c.CompileDuration, c.RungsEmitted, c.DiagnosticTotal} {
		if err := reg.Register(coll); err != nil {
			return err
		}
	}
	return nil
}

// Observe records the outcome of one compile call: duration, rung count,
// and a diagnostic tally split by severity.
func (c *Collectors) Observe(seconds float64, rungCount int, errors, warnings int) {
	outcome := "ok"
	if errors > 0 {
		outcome = "error"
	}
	c.CompileTotal.WithLabelValues(outcome).Inc()
	c.CompileDuration.Observe(seconds)
	c.RungsEmitted.Observe(float64(rungCount))
	c.DiagnosticTotal.WithLabelValues("error").Add(float64(errors))
	c.DiagnosticTotal.WithLabelValues("warning").Add(float64(warnings))
}
