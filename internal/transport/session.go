package transport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// SessionHeader carries the MCP session id on streamable HTTP requests.
const SessionHeader = "Mcp-Session-Id"

// SessionLogging logs each request at debug level with its MCP session id.
// Initialize requests have no id yet; the one the server assigns is logged instead.
func SessionLogging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			sessionID := r.Header.Get(SessionHeader)
			if sessionID == "" {
				sessionID = ww.Header().Get(SessionHeader)
			}
			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"session_id", sessionID,
				"duration", time.Since(start),
			)
		})
	}
}
