// Package log provides a leveled, structured logging interface based on
// [log/slog], extended with a Trace level below Debug.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("interpreter started", slog.String("script", path))
//	logger.Error("run failed", slog.Any("error", err))
//
// # Configuration
//
// Configure the logger using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithTimeLayout("StampMilli"),
//		log.WithCaller(true))
//
// # Default Logger
//
// The package maintains a default logger writing to standard error, used by
// the package-level functions. Reconfigure it with [Config]:
//
//	log.Config(log.WithLevel(log.LevelDebug), log.WithFormat(log.FormatJSON))
//	log.Debug("visible now")
//
// # Output Formats
//
// Two output formats are supported: [FormatText] (default, colorized unless
// disabled with WithPretty(false)) and [FormatJSON].
package log
