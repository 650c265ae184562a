package app

import "io"

// SetStdio swaps the streams used by the stdio transport.
func SetStdio(a *App, in io.Reader, out io.Writer) {
	a.stdin = in
	a.stdout = out
}
