package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		logFn   func(Logger, string, ...slog.Attr)
		label   string
		visible bool
	}{
		{
			name:    "trace visible at trace level",
			level:   LevelTrace,
			logFn:   Logger.Trace,
			label:   "TRACE",
			visible: true,
		},
		{
			name:    "trace hidden at debug level",
			level:   LevelDebug,
			logFn:   Logger.Trace,
			label:   "TRACE",
			visible: false,
		},
		{
			name:    "debug hidden at info level",
			level:   LevelInfo,
			logFn:   Logger.Debug,
			label:   "DEBUG",
			visible: false,
		},
		{
			name:    "info visible at info level",
			level:   LevelInfo,
			logFn:   Logger.Info,
			label:   "INFO",
			visible: true,
		},
		{
			name:    "error visible at warn level",
			level:   LevelWarn,
			logFn:   Logger.Error,
			label:   "ERROR",
			visible: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			l := Make(&buf, WithLevel(tt.level), WithPretty(false))
			tt.logFn(l, "message")

			got := buf.String()

			if tt.visible && !strings.Contains(got, tt.label) {
				t.Errorf("expected %q in output %q", tt.label, got)
			}

			if !tt.visible && got != "" {
				t.Errorf("expected no output, got %q", got)
			}
		})
	}
}

func TestLogger_Attributes(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithFormat(FormatJSON))
	l.Info("with attrs", slog.String("script", "main.dyn"), slog.Int("line", 3))

	got := buf.String()

	for _, want := range []string{`"script":"main.dyn"`, `"line":3`} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output %q", want, got)
		}
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithFormat(FormatJSON)).With(slog.String("component", "vm"))
	l.Info("attached")

	if !strings.Contains(buf.String(), `"component":"vm"`) {
		t.Errorf("expected component attribute in %q", buf.String())
	}
}

func TestLogger_Wrap(t *testing.T) {
	var first, second bytes.Buffer

	l := Make(&first, WithLevel(LevelError))
	w := l.Wrap(WithOutput(&second), WithLevel(LevelDebug))

	w.Debug("rerouted")

	if first.Len() != 0 {
		t.Errorf("original writer received output: %q", first.String())
	}

	if !strings.Contains(second.String(), "rerouted") {
		t.Errorf("wrapped writer missing output: %q", second.String())
	}

	if l.Level() != LevelError {
		t.Errorf("wrap mutated original level: %s", l.Level())
	}
}

func TestLogger_ZeroValue(t *testing.T) {
	var l Logger

	// Must not panic.
	l.Info("discarded")
	l.Error("discarded")

	if l.Level() != DefaultLevel {
		t.Errorf("zero logger level: %s", l.Level())
	}
}

func TestLogger_PrettyOutput(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithPretty(true), WithFormat(FormatText))
	l.Info("colorized", slog.Bool("ok", true))

	got := buf.String()

	if !strings.Contains(got, "\033[") {
		t.Errorf("expected ANSI escapes in %q", got)
	}

	if !strings.Contains(got, "colorized") {
		t.Errorf("expected message in %q", got)
	}
}

func TestLogger_TimeLayoutNone(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithPretty(false), WithTimeLayout("none"))
	l.Info("timeless")

	if strings.Contains(buf.String(), "time=") {
		t.Errorf("expected no timestamp in %q", buf.String())
	}
}
