package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// Identifiers for values shared with commands through [kong.Vars].
const (
	// ConfigIdentifier keys the configuration file path.
	ConfigIdentifier = "config"
	// CacheIdentifier keys the cache directory path.
	CacheIdentifier = "cache"
)

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// openSource opens the script source at path, or stdin when path is "-".
// The returned done function is a no-op for stdin.
func openSource(path string) (r io.Reader, name string, done func(), err error) {
	if path == stdinSource {
		return os.Stdin, "stdin", func() {}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, "", nil, ErrReadScript.Wrap(err)
	}

	return file, path, func() { _ = file.Close() }, nil
}
