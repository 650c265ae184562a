package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-sample-server/internal/mcp"
)

var testInfo = ServerInfo{ID: "SAMPLE_SERVER", Name: "Sample Server", Version: "1.0.1"}

func TestSampleServerVersion(t *testing.T) {
	t.Parallel()

	out, err := SampleServerVersion(testInfo)(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# Sample MCP Server"))
	assert.Contains(t, out, "**Version**: 1.0.1")
	assert.Contains(t, out, "**Server ID**: SAMPLE_SERVER")
	assert.Contains(t, out, "**Status**: ✅ Active")
}

func TestGetLogs(t *testing.T) {
	t.Parallel()

	out, err := GetLogs(ServerInfo{Version: "2.3.4"})(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# Network Switch Logs\n\n"))
	assert.Contains(t, out, "Port 1/0/24 link up")
	assert.Contains(t, out, "ERROR: Port 1/0/5 link down")
	assert.Contains(t, out, "68°C")
	assert.True(t, strings.HasSuffix(out, "<!-- Server Version: 2.3.4 -->"))
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 12)
}

func TestOperationsAreDeterministic(t *testing.T) {
	t.Parallel()

	for _, op := range []mcp.Operation{SampleServerVersion(testInfo), GetLogs(testInfo)} {
		first, err := op(context.Background())
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := op(context.Background())
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	reg := mcp.NewRegistry()
	Register(reg, testInfo)

	assert.Equal(t, []string{GetLogsTool, SampleServerVersionTool}, reg.List())

	// descriptions come from the embedded catalog
	tool := reg.MustGet(GetLogsTool)
	assert.Contains(t, tool.Description, "network switch")
}
