package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/trraform/crontrigger/pkg/trigger"
)

const namespace = "crontrigger"

// Recorder records dispatch reports as Prometheus series.
type Recorder struct {
	invocations        *prometheus.CounterVec
	invocationDuration *prometheus.HistogramVec
	requests           *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
}

// New creates a recorder and registers its collectors on reg.
// A nil reg uses prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	r := &Recorder{
		invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "invocations_total",
				Help:      "Total number of dispatches, by what fired them.",
			},
			[]string{"source"},
		),
		invocationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "invocation_duration_seconds",
				Help:      "Time from dispatch start until every request settled.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"source"},
		),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Outbound requests, by endpoint and result (ok, http_error, transport_error).",
			},
			[]string{"endpoint", "result"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "Duration of outbound requests.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
	}

	for _, c := range []prometheus.Collector{r.invocations, r.invocationDuration, r.requests, r.requestDuration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register collector: %w", err)
		}
	}

	return r, nil
}

// ObserveReport implements trigger.Observer.
func (r *Recorder) ObserveReport(rep trigger.Report) {
	r.invocations.WithLabelValues(rep.Source).Inc()
	r.invocationDuration.WithLabelValues(rep.Source).Observe(rep.Duration.Seconds())

	for _, o := range rep.Outcomes {
		r.requests.WithLabelValues(o.Endpoint, o.Result()).Inc()
		r.requestDuration.WithLabelValues(o.Endpoint).Observe(o.Duration.Seconds())
	}
}

// Handler serves the series gathered by g in the Prometheus exposition format.
func Handler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
