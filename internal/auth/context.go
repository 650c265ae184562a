package auth

import (
	"context"
	"net"
	"net/http"
	"net/url"
)

// CodeParam is the query parameter carrying the shared secret.
const CodeParam = "code"

// RequestContext is the part of an inbound request a tool call may see.
type RequestContext struct {
	Query      url.Values
	ClientAddr string
}

// Code returns the code query parameter and whether it was present at all.
// When the parameter is repeated the last value wins.
func (rc *RequestContext) Code() (string, bool) {
	if rc == nil || rc.Query == nil {
		return "", false
	}
	vs := rc.Query[CodeParam]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// FromHTTPRequest captures query parameters and the client host of r.
func FromHTTPRequest(r *http.Request) *RequestContext {
	if r == nil {
		return nil
	}
	rc := &RequestContext{ClientAddr: r.RemoteAddr}
	if r.URL != nil {
		rc.Query = r.URL.Query()
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		rc.ClientAddr = host
	}
	return rc
}

type ctxKey struct{}

// WithRequestContext attaches rc to ctx.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// FromContext returns the RequestContext bound to ctx, or nil when the call
// is not running on behalf of an HTTP request.
func FromContext(ctx context.Context) *RequestContext {
	if ctx == nil {
		return nil
	}
	rc, _ := ctx.Value(ctxKey{}).(*RequestContext)
	return rc
}

// HTTPContextFunc binds the inbound request to the tool call context. Its
// signature matches the SSE and streamable HTTP context hooks of mcp-go.
func HTTPContextFunc(ctx context.Context, r *http.Request) context.Context {
	return WithRequestContext(ctx, FromHTTPRequest(r))
}
