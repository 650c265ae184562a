// internal/app/routes.go
package app

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"mcp-sample-server/internal/config"
	hh "mcp-sample-server/internal/handlers/http"
	"mcp-sample-server/internal/mcp"
	"mcp-sample-server/internal/middleware"
)

// RegisterDeps carries what RegisterRoutes mounts. A nil Transport mounts
// only the operational routes.
type RegisterDeps struct {
	Config    *config.Config
	Transport *mcp.Transport
	Logger    zerolog.Logger
}

// RegisterRoutes memasang middleware, route operasional, lalu endpoint MCP.
// The MCP transport is registered last because the SSE variant is a prefix
// route that would shadow everything after it.
func RegisterRoutes(r *mux.Router, deps RegisterDeps) {
	if deps.Config.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(
		middleware.RequestID,
		middleware.AccessLog(deps.Logger),
		chimw.Recoverer,
		middleware.CORS(deps.Config.CORSAllowedOrigins),
	)

	info := hh.ServerInfo{
		ID:        deps.Config.ServerID,
		Version:   deps.Config.ServerVersion,
		Transport: deps.Config.Transport,
	}
	r.HandleFunc("/healthz", hh.HealthHandler(info)).Methods(http.MethodGet)
	r.HandleFunc("/readyz", hh.HealthHandler(info)).Methods(http.MethodGet)
	r.Handle("/metrics", hh.MetricsHandler()).Methods(http.MethodGet)

	// Preflight catch-all
	r.Methods(http.MethodOptions).HandlerFunc(hh.PreflightHandler(deps.Config.CORSAllowedOrigins))

	t := deps.Transport
	if t == nil {
		return
	}
	if t.Prefix {
		r.PathPrefix(t.Pattern).Handler(t.Handler)
	} else {
		r.Handle(t.Pattern, t.Handler)
	}
}
