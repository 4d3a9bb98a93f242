// Package health provides liveness and readiness HTTP handlers.
//
// [LivenessHandler] always answers OK while the process serves HTTP.
// [ReadinessHandler] runs named [Checks] in parallel under a timeout and answers
// 503 when any of them fails. Checks use the func(context.Context) error shape
// returned by job.Healthcheck.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "scheduler": job.Healthcheck(manager),
//	}, health.WithTimeout(3*time.Second)))
//
// Responses are plain text unless the client sends Accept: application/json or
// ?format=json. A failing plain text body lists one "name: error" line per
// failed check after "Service Unavailable". JSON carries every check with its
// latency:
//
//	{"status":"unhealthy","checks":{"scheduler":{"status":"unhealthy","error":"...","duration_ns":1200}}}
//
// Failed checks are reported with [ErrCheckFailed]; checks that outlive the
// timeout with [ErrCheckTimeout].
package health
