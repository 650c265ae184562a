// internal/handlers/http/health_handler.go
// Handler sederhana untuk health check

package http

import (
	"encoding/json"
	"net/http"
)

// ServerInfo is echoed by the health endpoints.
type ServerInfo struct {
	ID        string `json:"server_id"`
	Version   string `json:"version"`
	Transport string `json:"transport"`
}

// HealthHandler reports status "ok" together with info.
func HealthHandler(info ServerInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := struct {
			Status string `json:"status"`
			ServerInfo
		}{"ok", info}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
