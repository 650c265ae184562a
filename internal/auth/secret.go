// Package auth holds the shared-secret gate that protects every tool.
//
// The secret is loaded once at startup from the environment and captured by
// a Gate value; handlers receive the caller's query parameters and address
// through a RequestContext attached to the call's context.Context.
package auth

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrSecretMissing is returned when the secret variable is unset or empty.
var ErrSecretMissing = errors.New("auth: secret environment variable is not set")

// EnvKey names the per-server secret variable, e.g. SAMPLE_SERVER_AUTH_CODE.
func EnvKey(serverID string) string {
	return serverID + "_AUTH_CODE"
}

// LoadSecret reads the secret from the environment variable key.
func LoadSecret(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("%w: %s", ErrSecretMissing, key)
	}
	return v, nil
}

// exit is swapped in tests.
var exit = os.Exit

// MustLoadSecret is LoadSecret for process startup: on failure it writes a
// diagnostic to stderr and exits with status 1.
func MustLoadSecret(key string) string {
	return mustLoadSecret(key, os.Stderr)
}

func mustLoadSecret(key string, stderr io.Writer) string {
	secret, err := LoadSecret(key)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s environment variable is required\n", key)
		fmt.Fprintf(stderr, "Set it before starting the server, e.g. export %s=your_secret_code\n", key)
		exit(1)
	}
	return secret
}
