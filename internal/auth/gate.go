package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/blake2b"

	"mcp-sample-server/internal/metrics"
)

// ErrEmptySecret is returned by NewGate for an empty secret.
var ErrEmptySecret = errors.New("auth: secret must not be empty")

// Decision is the outcome of a single authorization check.
type Decision string

// Decisions, also used as the metric label.
const (
	Allowed        Decision = "allowed"         // code matches the secret
	AllowedUnbound Decision = "allowed_unbound" // no request bound, bypass enabled
	MissingCode    Decision = "missing_code"
	Mismatch       Decision = "mismatch"
	NoContext      Decision = "no_context" // no request bound, fail-closed
	Fault          Decision = "fault"      // panic while reading the request
)

// codeOf reads the code from a bound request; replaced in tests.
var codeOf = (*RequestContext).Code

// Allowed reports whether the decision lets the call through.
func (d Decision) Allowed() bool {
	return d == Allowed || d == AllowedUnbound
}

// Gate compares the code query parameter against the shared secret.
// It is immutable after construction and safe for concurrent use.
type Gate struct {
	digest       [blake2b.Size256]byte
	log          zerolog.Logger
	allowUnbound bool
}

// Option configures a Gate.
type Option func(*Gate)

// WithLogger sets the logger used for rejected calls.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Gate) { g.log = l }
}

// WithUnboundContext authorizes calls that carry no request context at all
// (stdio transport, in-process callers). Bound requests are still checked.
func WithUnboundContext(allow bool) Option {
	return func(g *Gate) { g.allowUnbound = allow }
}

// NewGate returns a gate for secret. Only a digest of the secret is kept.
func NewGate(secret string, opts ...Option) (*Gate, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	g := &Gate{
		digest: blake2b.Sum256([]byte(secret)),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Authorized reports whether rc carries the shared secret.
func (g *Gate) Authorized(rc *RequestContext) bool {
	return g.Check(rc).Allowed()
}

// Check decides a single call. A nil rc means no request is bound.
func (g *Gate) Check(rc *RequestContext) (d Decision) {
	defer func() {
		if r := recover(); r != nil {
			g.log.Error().Str("event", "auth.fault").Str("panic", fmt.Sprint(r)).Msg("auth error")
			d = Fault
		}
		metrics.RecordAuthDecision(string(d))
	}()

	if rc == nil {
		if g.allowUnbound {
			return AllowedUnbound
		}
		g.log.Debug().Str("event", "auth.no_context").Msg("auth failed - no request context")
		return NoContext
	}

	code, ok := codeOf(rc)
	// Digests have a fixed length, so the comparison time does not depend on
	// how much of the code matches or how long it is.
	sum := blake2b.Sum256([]byte(code))
	if ok && subtle.ConstantTimeCompare(sum[:], g.digest[:]) == 1 {
		return Allowed
	}

	addr := rc.ClientAddr
	if addr == "" {
		addr = "unknown"
	}
	if !ok {
		g.log.Warn().Str("event", "auth.failed").Str("ip", addr).Msg("auth failed - missing code")
		return MissingCode
	}
	g.log.Warn().Str("event", "auth.failed").Str("ip", addr).Str("code", code).Msg("auth failed")
	return Mismatch
}
