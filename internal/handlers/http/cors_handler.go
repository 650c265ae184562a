// internal/handlers/http/cors_handler.go
package http

import "net/http"

// PreflightHandler menjawab OPTIONS: 204 untuk origin yang diizinkan (atau
// tanpa Origin), 403 untuk origin lain. Header CORS dipasang oleh middleware.
func PreflightHandler(allowedOrigins []string) http.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if _, ok := allowed[origin]; origin != "" && !ok {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
