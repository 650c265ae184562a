package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"SERVER_ID", "TRANSPORT", "HOST", "PORT", "MCP_PATH", "PER_SERVER_AUTH", "ALLOW_UNBOUND_CONTEXT"} {
		t.Setenv(k, "")
	}

	c := Load()
	assert.Equal(t, "SAMPLE_SERVER", c.ServerID)
	assert.Equal(t, "1.0.1", c.ServerVersion)
	assert.Equal(t, TransportSSE, c.Transport)
	assert.Equal(t, "127.0.0.1", c.Host)
	assert.Equal(t, 8080, c.Port)
	assert.Equal(t, "/", c.Path)
	assert.False(t, c.AllowUnboundContext)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
	assert.Equal(t, "127.0.0.1:8080", c.Addr())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TRANSPORT", "streamable-http")
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOW_UNBOUND_CONTEXT", "true")

	c := Load()
	assert.Equal(t, TransportStreamableHTTP, c.Transport)
	assert.Equal(t, "0.0.0.0:9090", c.Addr())
	assert.True(t, c.AllowUnboundContext)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("PORT", "eighty")
	t.Setenv("PER_SERVER_AUTH", "maybe")

	c := Load()
	assert.Equal(t, 8080, c.Port)
	assert.False(t, c.PerServerAuth)
}

func TestParseFlagsOverrideEnv(t *testing.T) {
	t.Setenv("HOST", "10.0.0.1")
	t.Setenv("TRANSPORT", "sse")

	c, err := Parse("sample-server", []string{"--host", "localhost", "--transport=stdio", "--per-server-auth"})
	require.NoError(t, err)
	assert.Equal(t, "localhost", c.Host)
	assert.Equal(t, TransportStdio, c.Transport)
	assert.True(t, c.PerServerAuth)
}

func TestParseRejectsInvalid(t *testing.T) {
	t.Setenv("TRANSPORT", "")

	_, err := Parse("sample-server", []string{"--transport", "websocket"})
	require.ErrorIs(t, err, ErrUnknownTransport)

	_, err = Parse("sample-server", []string{"--port", "70000"})
	require.ErrorIs(t, err, ErrInvalidPort)

	_, err = Parse("sample-server", []string{"--server-id", " "})
	require.ErrorIs(t, err, ErrEmptyServerID)

	_, err = Parse("sample-server", []string{"--no-such-flag"})
	require.Error(t, err)
}

func TestAuthEnvKey(t *testing.T) {
	c := &Config{ServerID: "SAMPLE_SERVER"}
	assert.Equal(t, "AUTH_CODE", c.AuthEnvKey())

	c.PerServerAuth = true
	assert.Equal(t, "SAMPLE_SERVER_AUTH_CODE", c.AuthEnvKey())
}

func TestCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://localhost:6274, ,https://inspector.example ")

	c := Load()
	assert.Equal(t, []string{"http://localhost:6274", "https://inspector.example"}, c.CORSAllowedOrigins)

	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	c, err := Parse("sample-server", []string{"--cors-origin", "http://a", "--cors-origin", "http://b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"http://a", "http://b"}, c.CORSAllowedOrigins)
}
