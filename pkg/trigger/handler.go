package trigger

import "net/http"

// Handler returns an http.HandlerFunc that runs one dispatch per request.
// The response is always 200 with an empty body, whatever the downstream outcomes.
// Requests without a source on their context are recorded as manual.
func (d *Dispatcher) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if SourceFromContext(ctx) == sourceUnspecified {
			ctx = WithSource(ctx, SourceManual)
		}
		d.Dispatch(ctx)
		w.WriteHeader(http.StatusOK)
	}
}
