package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Logger logs each request with zap: method, path, status, bytes, and
// duration. The chi request ID is attached when present.
func Logger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				fields := []zap.Field{
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
					zap.String("remoteAddr", r.RemoteAddr),
				}
				if reqID := chimiddleware.GetReqID(r.Context()); reqID != "" {
					fields = append(fields, zap.String("requestID", reqID))
				}

				switch {
				case ww.Status() >= 500:
					logger.Error("Request failed", fields...)
				case ww.Status() >= 400:
					logger.Warn("Request error", fields...)
				default:
					logger.Info("Request completed", fields...)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
