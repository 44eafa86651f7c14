package lang

import (
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"
)

// compileCache stores compiled byte blocks keyed by source hash, so that
// repeated runs of the same script (or the same REPL input) skip compilation.
//
//nolint:gochecknoglobals
var compileCache sync.Map

// cacheEntry holds the one-time compilation result for a source hash.
type cacheEntry struct {
	once  sync.Once
	block *ByteBlock
	err   error
}

// CompileReader reads all of r through an asynchronous read-ahead buffer and
// compiles the result with caching. Intended for script files, where the
// read-ahead overlaps disk I/O with hashing.
func CompileReader(r io.Reader, logger *slog.Logger) (*ByteBlock, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadSource.Wrap(err)
	}

	if logger != nil {
		logger.Debug("read source",
			slog.Int("source_bytes", len(data)),
			slog.Bool("read_ahead", true),
		)
	}

	return CompileCached(string(data), logger)
}

// CompileCached compiles source text, returning a previously compiled block
// when the identical text has been seen before. Compiled blocks are immutable
// after compilation, so sharing them between callers is safe as long as each
// caller executes on its own VM.
func CompileCached(source string, logger *slog.Logger) (*ByteBlock, error) {
	key := strconv.FormatUint(xxh3.HashString(source), 36)

	entry := new(cacheEntry)
	cached, hit := compileCache.LoadOrStore(key, entry)

	state, ok := cached.(*cacheEntry)
	if !ok {
		// Unreachable unless something else writes to the map.
		return Compile(source)
	}

	if logger != nil {
		logger.Debug("cache lookup",
			slog.String("source_hash", key),
			slog.Bool("cache_hit", hit),
		)
	}

	state.once.Do(func() {
		state.block, state.err = Compile(source)
	})

	return state.block, state.err
}

// ClearCache drops every cached compilation. Primarily useful for tests and
// for reclaiming memory in long-lived hosts.
func ClearCache() {
	compileCache = sync.Map{}
}
