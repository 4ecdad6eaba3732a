package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
)

// TraceMiddleware gives every request a trace ID, echoes it in the
// X-Trace-ID header and stores a logger tagged with it in the context.
// It must run before any middleware that logs.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		w.Header().Set(shared.TraceIDHeader, traceID)

		log := logger.FromContext(ctx).With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
