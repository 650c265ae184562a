// Package metrics provides Prometheus metrics for the tool server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Tool call outcomes.
const (
	OutcomeOK     = "ok"
	OutcomeDenied = "denied"
	OutcomeError  = "error"
)

// Labels stay low-cardinality: never the client address or the code.
var (
	// AuthDecisionsTotal counts gate decisions by kind.
	AuthDecisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mcp_auth_decisions_total",
		Help: "Total number of authorization decisions, by decision.",
	}, []string{"decision"})

	// ToolCallsTotal counts tool invocations by tool and outcome.
	ToolCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mcp_tool_calls_total",
		Help: "Total number of tool calls, by tool and outcome.",
	}, []string{"tool", "outcome"})

	// BuildInfo is always 1 and carries the server id and version.
	BuildInfo = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "mcp_server_build_info",
		Help: "Build information of the running server.",
	}, []string{"server_id", "version", "transport"})
)

// RecordAuthDecision increments the decision counter.
func RecordAuthDecision(decision string) {
	AuthDecisionsTotal.WithLabelValues(decision).Inc()
}

// RecordToolCall increments the tool call counter.
func RecordToolCall(tool, outcome string) {
	ToolCallsTotal.WithLabelValues(tool, outcome).Inc()
}

// SetBuildInfo publishes the build info gauge.
func SetBuildInfo(serverID, version, transport string) {
	BuildInfo.WithLabelValues(serverID, version, transport).Set(1)
}
