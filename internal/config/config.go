// internal/config/config.go
// Loader konfigurasi dari environment variables, bisa ditimpa lewat flag CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"mcp-sample-server/internal/auth"
)

// Supported transports.
const (
	TransportSSE            = "sse"
	TransportStreamableHTTP = "streamable-http"
	TransportStdio          = "stdio"
)

var (
	ErrUnknownTransport = errors.New("config: unknown transport")
	ErrInvalidPort      = errors.New("config: invalid port")
	ErrEmptyServerID    = errors.New("config: server id is empty")
)

// Config holds the server settings. The shared secret is not part of it.
type Config struct {
	ServerID      string
	ServerName    string
	ServerVersion string

	// PerServerAuth switches the secret key from AUTH_CODE to <SERVER_ID>_AUTH_CODE.
	PerServerAuth bool

	Transport string
	Host      string
	Port      int
	Path      string
	BaseURL   string

	// AllowUnboundContext lets tool calls without an HTTP request (stdio, tests) through the gate.
	AllowUnboundContext bool
	TrustProxyHeaders   bool
	CORSAllowedOrigins  []string

	LogLevel  string
	LogFormat string

	ShutdownTimeout time.Duration
}

// Load reads the environment, falling back to built-in defaults.
func Load() *Config {
	c := &Config{}
	c.ServerID = getEnv("SERVER_ID", "SAMPLE_SERVER")
	c.ServerName = getEnv("SERVER_NAME", "Sample Server")
	c.ServerVersion = getEnv("SERVER_VERSION", "1.0.1")
	c.PerServerAuth = getEnvBool("PER_SERVER_AUTH", false)

	c.Transport = getEnv("TRANSPORT", TransportSSE)
	c.Host = getEnv("HOST", "127.0.0.1")
	c.Port = getEnvInt("PORT", 8080)
	c.Path = getEnv("MCP_PATH", "/")
	c.BaseURL = getEnv("BASE_URL", "")

	c.AllowUnboundContext = getEnvBool("ALLOW_UNBOUND_CONTEXT", false)
	c.TrustProxyHeaders = getEnvBool("TRUST_PROXY_HEADERS", false)
	c.CORSAllowedOrigins = getEnvList("CORS_ALLOWED_ORIGINS")

	c.LogLevel = getEnv("LOG_LEVEL", "info")
	c.LogFormat = getEnv("LOG_FORMAT", "json")

	c.ShutdownTimeout = time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second
	return c
}

// BindFlags registers flags on fs using the current values as defaults,
// so flags win over environment and environment wins over built-ins.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.ServerID, "server-id", c.ServerID, "server identifier, also prefixes the per-server auth variable")
	fs.StringVar(&c.ServerName, "server-name", c.ServerName, "name announced to MCP clients")
	fs.StringVar(&c.ServerVersion, "server-version", c.ServerVersion, "version reported by sample_server_version")
	fs.BoolVar(&c.PerServerAuth, "per-server-auth", c.PerServerAuth, "read the secret from <SERVER_ID>_AUTH_CODE instead of AUTH_CODE")
	fs.StringVar(&c.Transport, "transport", c.Transport, "transport: sse, streamable-http or stdio")
	fs.StringVar(&c.Host, "host", c.Host, "bind host")
	fs.IntVar(&c.Port, "port", c.Port, "bind port")
	fs.StringVar(&c.Path, "path", c.Path, "mount path of the MCP endpoint")
	fs.StringVar(&c.BaseURL, "base-url", c.BaseURL, "public base URL advertised in the SSE endpoint event")
	fs.BoolVar(&c.AllowUnboundContext, "allow-unbound-context", c.AllowUnboundContext, "authorize tool calls that carry no HTTP request (local testing only)")
	fs.BoolVar(&c.TrustProxyHeaders, "trust-proxy-headers", c.TrustProxyHeaders, "take the client address from X-Forwarded-For / X-Real-IP")
	fs.StringSliceVar(&c.CORSAllowedOrigins, "cors-origin", c.CORSAllowedOrigins, "origin allowed to call the MCP endpoint from a browser (repeatable)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: json or console")
	fs.DurationVar(&c.ShutdownTimeout, "shutdown-timeout", c.ShutdownTimeout, "graceful shutdown timeout")
}

// Parse loads the environment and applies command-line overrides from args.
func Parse(name string, args []string) (*Config, error) {
	c := Load()
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	c.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects an empty server id, an unknown transport and, for HTTP
// transports, a port outside 1-65535.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ServerID) == "" {
		return ErrEmptyServerID
	}
	switch c.Transport {
	case TransportSSE, TransportStreamableHTTP, TransportStdio:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTransport, c.Transport)
	}
	if c.Transport != TransportStdio && (c.Port <= 0 || c.Port > 65535) {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}
	return nil
}

// AuthEnvKey is the name of the environment variable holding the shared secret.
func (c *Config) AuthEnvKey() string {
	if c.PerServerAuth {
		return auth.EnvKey(c.ServerID)
	}
	return "AUTH_CODE"
}

// Addr is the host:port the HTTP transports listen on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
