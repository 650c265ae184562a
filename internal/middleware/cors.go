package middleware

import "net/http"

// CORS allows browser-based MCP clients from the given origins. It only sets
// headers; preflight requests are answered by the OPTIONS route.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	originsSet := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		originsSet[o] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if _, ok := originsSet[origin]; ok {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
				h.Set("Access-Control-Allow-Headers", "Content-Type, Mcp-Session-Id, Last-Event-ID, X-Request-ID")
				h.Set("Access-Control-Expose-Headers", "Mcp-Session-Id, X-Request-ID")
				h.Set("Access-Control-Max-Age", "86400")
				h.Add("Vary", "Origin")
			}
			next.ServeHTTP(w, r)
		})
	}
}
