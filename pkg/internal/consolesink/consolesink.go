// Package consolesink provides the level-filtered console sink.
package consolesink

import (
	"io"

	"github.com/joeydtaylor/logkit/pkg/internal/console"
	"github.com/joeydtaylor/logkit/pkg/internal/level"
	"github.com/joeydtaylor/logkit/pkg/internal/types"
)

// ConsoleSink emits to the console when the threshold allows. The threshold is
// read on every call.
type ConsoleSink struct {
	console   *console.Console
	threshold *level.Threshold
}

// Option configures a ConsoleSink.
type Option func(*sinkConfig)

type sinkConfig struct {
	threshold *level.Threshold
	console   *console.Console
	consoleOp []console.Option
}

// WithThreshold sets the threshold consulted on each call. Defaults to level.Default.
func WithThreshold(t *level.Threshold) Option {
	return func(c *sinkConfig) {
		if t != nil {
			c.threshold = t
		}
	}
}

// WithConsole writes through an existing Console.
func WithConsole(con *console.Console) Option {
	return func(c *sinkConfig) {
		c.console = con
	}
}

// WithOutput sets the stream for info, debug and log lines.
func WithOutput(w io.Writer) Option {
	return func(c *sinkConfig) {
		c.consoleOp = append(c.consoleOp, console.WithOutput(w))
	}
}

// WithErrorOutput sets the stream for error and warning lines.
func WithErrorOutput(w io.Writer) Option {
	return func(c *sinkConfig) {
		c.consoleOp = append(c.consoleOp, console.WithErrorOutput(w))
	}
}

// New creates a ConsoleSink.
func New(options ...Option) *ConsoleSink {
	cfg := &sinkConfig{threshold: level.Default}
	for _, option := range options {
		option(cfg)
	}
	con := cfg.console
	if con == nil {
		con = console.New(cfg.consoleOp...)
	}
	return &ConsoleSink{console: con, threshold: cfg.threshold}
}

// Error emits an error when the threshold allows it.
func (s *ConsoleSink) Error(args ...interface{}) {
	if s.threshold.Allows(types.SeverityError) {
		s.console.Error(args...)
	}
}

// Warn emits a warning when the threshold allows it.
func (s *ConsoleSink) Warn(args ...interface{}) {
	if s.threshold.Allows(types.SeverityWarn) {
		s.console.Warn(args...)
	}
}

// Info emits an informational message when the threshold allows it.
func (s *ConsoleSink) Info(args ...interface{}) {
	if s.threshold.Allows(types.SeverityInfo) {
		s.console.Info(args...)
	}
}

// Debug emits a debug message when the threshold allows it.
func (s *ConsoleSink) Debug(args ...interface{}) {
	if s.threshold.Allows(types.SeverityDebug) {
		s.console.Debug(args...)
	}
}

// Log emits args unprefixed, gated at info.
func (s *ConsoleSink) Log(args ...interface{}) {
	if s.threshold.Allows(types.SeverityInfo) {
		s.console.Print(args...)
	}
}

// ClearLogs is a no-op; console output cannot be retracted.
func (s *ConsoleSink) ClearLogs() {}

// Close flushes the console streams.
func (s *ConsoleSink) Close() {
	_ = s.console.Sync()
}

// WasClearedOnInit always reports false.
func (s *ConsoleSink) WasClearedOnInit() bool {
	return false
}

// Flush syncs the console streams.
func (s *ConsoleSink) Flush() error {
	return s.console.Sync()
}

// Threshold returns the threshold consulted by the sink.
func (s *ConsoleSink) Threshold() *level.Threshold {
	return s.threshold
}

var _ types.Sink = (*ConsoleSink)(nil)
