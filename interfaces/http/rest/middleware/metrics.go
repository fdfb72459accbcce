package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"rootline-backend/pkg/observability"
)

// Metrics records per-request counters and latency histograms. The chi
// route pattern is used as the label rather than the raw path so that
// parameterized routes do not explode metric cardinality.
func Metrics(m *observability.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = "unmatched"
			}
			m.RecordHTTPRequest(r.Method, route, strconv.Itoa(ww.Status()), time.Since(start))
		})
	}
}
