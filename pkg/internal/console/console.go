// Package console writes marker-prefixed lines to the standard streams. It is
// the console API the sinks build on and applies no level filtering itself.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Markers prefixed to console lines.
const (
	MarkerError = "❌"
	MarkerWarn  = "⚠️"
	MarkerInfo  = "ℹ️"
	MarkerDebug = "🐞"
	MarkerClear = "🧹"
)

// Console writes to an output and an error stream.
type Console struct {
	out zapcore.WriteSyncer
	err zapcore.WriteSyncer
}

// Option configures a Console.
type Option func(*Console)

// WithOutput sets the stream used for info, debug and plain lines.
func WithOutput(w io.Writer) Option {
	return func(c *Console) {
		if w != nil {
			c.out = writeSyncer(w)
		}
	}
}

// WithErrorOutput sets the stream used for error and warning lines.
func WithErrorOutput(w io.Writer) Option {
	return func(c *Console) {
		if w != nil {
			c.err = writeSyncer(w)
		}
	}
}

// New creates a Console on stdout and stderr unless configured otherwise.
func New(options ...Option) *Console {
	c := &Console{
		out: zapcore.Lock(os.Stdout),
		err: zapcore.Lock(os.Stderr),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func writeSyncer(w io.Writer) zapcore.WriteSyncer {
	if ws, ok := w.(zapcore.WriteSyncer); ok {
		return zapcore.Lock(ws)
	}
	return zapcore.Lock(zapcore.AddSync(w))
}

// Error writes an error line.
func (c *Console) Error(args ...interface{}) {
	c.write(c.err, MarkerError, args)
}

// Warn writes a warning line.
func (c *Console) Warn(args ...interface{}) {
	c.write(c.err, MarkerWarn, args)
}

// Info writes an informational line.
func (c *Console) Info(args ...interface{}) {
	c.write(c.out, MarkerInfo, args)
}

// Debug writes a debug line.
func (c *Console) Debug(args ...interface{}) {
	c.write(c.out, MarkerDebug, args)
}

// Print writes a line without a marker.
func (c *Console) Print(args ...interface{}) {
	c.write(c.out, "", args)
}

// Sync flushes both streams. Errors terminals report for sync are ignored.
func (c *Console) Sync() error {
	if err := ignoreTerminalSync(c.out.Sync()); err != nil {
		return err
	}
	return ignoreTerminalSync(c.err.Sync())
}

func (c *Console) write(ws zapcore.WriteSyncer, marker string, args []interface{}) {
	var b strings.Builder
	if marker != "" {
		b.WriteString(marker)
		b.WriteByte(' ')
	}
	b.WriteString(Join(args...))
	b.WriteByte('\n')
	_, _ = ws.Write([]byte(b.String()))
}

// Join renders args separated by single spaces.
func Join(args ...interface{}) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}

func ignoreTerminalSync(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "inappropriate ioctl for device") ||
		strings.Contains(msg, "bad file descriptor") ||
		strings.Contains(msg, "invalid argument") {
		return nil
	}
	return err
}
