package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrReadSource   = NewError("failed to read source")
	ErrCompile      = NewError("compilation failed")
	ErrRuntime      = NewError("runtime error")
	ErrTooManyConst = NewError("too many constants in one block")
	ErrJumpTooLarge = NewError("jump distance exceeds 16 bits")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// UnboundNameError is the runtime failure raised when a name reference or an
// explicit pop targets an identifier with no live binding. A name that was
// declared and later popped is indistinguishable from one that was never
// declared.
type UnboundNameError struct {
	Name string
}

// Error implements the error interface.
func (e *UnboundNameError) Error() string {
	return "unbound name " + strconv.Quote(e.Name)
}

// LogValue implements slog.LogValuer.
func (e *UnboundNameError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", "unbound name"),
		slog.String("name", e.Name),
	)
}

// CompileError reports one or more compilation failures with source context.
type CompileError struct {
	Line    int    // 1-based source line of the first failure
	Column  int    // 1-based column, 0 when unknown
	Message string // Description of the failure
	Source  string // The original source input
}

// Error implements the error interface, formatting the failure with a source
// snippet and caret marker when the source is available.
func (e *CompileError) Error() string {
	if e.Source == "" {
		return "compile error at line " + strconv.Itoa(e.Line) + ": " + e.Message
	}

	msg, snippet := e.formatWithContext()

	return msg + snippet
}

// LogValue implements slog.LogValuer.
func (e *CompileError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", e.Message),
		slog.Int("line", e.Line),
	)
}

// formatWithContext formats the compile error with source code context.
func (e *CompileError) formatWithContext() (string, string) {
	lines := strings.Split(e.Source, "\n")

	var buf, src strings.Builder

	// Write error location and description
	buf.WriteString("compile error at line ")
	buf.WriteString(strconv.Itoa(e.Line))
	buf.WriteString(": ")
	buf.WriteString(e.Message)
	buf.WriteString("\n")

	// Show the offending line if within bounds
	if e.Line > 0 && e.Line <= len(lines) {
		line := lines[e.Line-1]

		// Print the line with line number
		src.WriteString("  ")
		src.WriteString(strconv.Itoa(e.Line))
		src.WriteString(" | ")
		src.WriteString(line)
		src.WriteRune('\n')

		// Print marker pointing to the column
		// Calculate the width needed for line number display
		lineNumWidth := len(strconv.Itoa(e.Line))
		// +5 accounts for: 2 leading spaces + " | " (3 chars)
		padding := strings.Repeat(" ", lineNumWidth+5)

		// Add spaces to reach the error column
		if e.Column > 0 {
			padding += strings.Repeat(" ", e.Column-1)
		}

		src.WriteString(padding + "^\n")
	}

	return buf.String(), src.String()
}

// RuntimeError reports a failure raised while the virtual machine executes a
// byte block. It wraps the underlying cause (for example UnboundNameError)
// and records the source line of the failing instruction.
type RuntimeError struct {
	Line int
	Err  error
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	return "runtime error at line " + strconv.Itoa(e.Line) + ": " + e.Err.Error()
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *RuntimeError) Unwrap() error { return e.Err }

// LogValue implements slog.LogValuer.
func (e *RuntimeError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", e.Err.Error()),
		slog.Int("line", e.Line),
	)
}
