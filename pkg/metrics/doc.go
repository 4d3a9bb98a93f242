// Package metrics exposes dispatch metrics to Prometheus.
//
// A [Recorder] implements trigger.Observer. Register it on a dispatcher and
// serve [Handler] on /metrics:
//
//	reg := prometheus.NewRegistry()
//	rec, err := metrics.New(reg)
//	d, err := trigger.New(baseURL, trigger.WithObserver(rec))
//	r.Handle("/metrics", metrics.Handler(reg))
//
// Series:
//
//	crontrigger_invocations_total{source}
//	crontrigger_invocation_duration_seconds{source}
//	crontrigger_requests_total{endpoint,result}
//	crontrigger_request_duration_seconds{endpoint}
package metrics
