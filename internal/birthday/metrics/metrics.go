package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels.
const (
	ResultOK          = "ok"
	ResultAlreadyGone = "already_gone"
	ResultFailed      = "failed"
	ResultSkipped     = "skipped"
)

// Metrics provides observability for birthday reconciliation.
type Metrics struct {
	Operations      *prometheus.CounterVec
	Passes          *prometheus.CounterVec
	MalformedEvents prometheus.Counter
	PassDuration    prometheus.Histogram
}

// New registers the birthday sync metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Operations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "birthday_sync_operations_total",
			Help: "Calendar operations applied by reconciliation, by kind and result",
		}, []string{"kind", "result"}),
		Passes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "birthday_sync_passes_total",
			Help: "Reconciliation passes, by result",
		}, []string{"result"}),
		MalformedEvents: f.NewCounter(prometheus.CounterOpts{
			Name: "birthday_sync_malformed_events_total",
			Help: "Tagged events skipped because their metadata was incomplete",
		}),
		PassDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "birthday_sync_pass_duration_seconds",
			Help:    "Duration of one calendar reconciliation pass",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
	}
}

// ObserveOperation counts one applied operation.
func (m *Metrics) ObserveOperation(kind, result string) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(kind, result).Inc()
}

// ObservePass records the duration and outcome of a pass.
// Call with time.Now() at the start of the pass.
func (m *Metrics) ObservePass(start time.Time, result string) {
	if m == nil {
		return
	}
	m.PassDuration.Observe(time.Since(start).Seconds())
	m.Passes.WithLabelValues(result).Inc()
}

// AddMalformed counts skipped malformed events.
func (m *Metrics) AddMalformed(n int) {
	if m == nil || n == 0 {
		return
	}
	m.MalformedEvents.Add(float64(n))
}
