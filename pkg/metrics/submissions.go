package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "summarizer_console"

// Submissions records the lifecycle of summarization submissions.
type Submissions struct {
	outcomes *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

// NewSubmissions registers the submission collectors on reg.
func NewSubmissions(reg prometheus.Registerer) *Submissions {
	s := &Submissions{
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "submissions_total",
				Help:      "Total number of summarization submissions by outcome kind",
			},
			[]string{"outcome", "model"}, // outcome: success, validation, application, transport, timeout
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "Duration of backend summarization calls in seconds",
				Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 90},
			},
			[]string{"outcome"},
		),
		inFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "requests_in_flight",
				Help:      "Number of summarization calls currently in flight",
			},
		),
	}
	reg.MustRegister(s.outcomes, s.duration, s.inFlight)
	return s
}

// Begin marks a backend call as started.
func (s *Submissions) Begin() {
	s.inFlight.Inc()
}

// Finish records a settled backend call.
func (s *Submissions) Finish(outcome, model string, elapsed time.Duration) {
	s.inFlight.Dec()
	s.outcomes.WithLabelValues(outcome, model).Inc()
	s.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// Rejected records a submission that never reached the backend.
func (s *Submissions) Rejected(outcome, model string) {
	s.outcomes.WithLabelValues(outcome, model).Inc()
}
