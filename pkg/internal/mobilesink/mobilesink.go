// Package mobilesink provides a console-backed sink with the FileSink contract
// for platforms without persistent file storage.
package mobilesink

import (
	"github.com/joeydtaylor/logkit/pkg/internal/console"
	"github.com/joeydtaylor/logkit/pkg/internal/level"
	"github.com/joeydtaylor/logkit/pkg/internal/platform"
	"github.com/joeydtaylor/logkit/pkg/internal/types"
)

// Messages printed by the sink itself.
const (
	PlatformWarning = "MobileSink is designed for React Native/Expo environments. Consider using FileSink on server runtimes."
	ClearNotice     = "Console logs cannot be cleared on mobile"
)

// MobileSink writes to the console, filtered by its own minimum level.
type MobileSink struct {
	enabled  bool
	minLevel types.Severity
	console  *console.Console
	detector *platform.Detector
}

// Option configures a MobileSink.
type Option func(*MobileSink)

// WithConsoleLogging enables or disables output. Enabled by default.
func WithConsoleLogging(enabled bool) Option {
	return func(m *MobileSink) {
		m.enabled = enabled
	}
}

// WithLevel sets the minimum level. Defaults to info; invalid values are ignored.
func WithLevel(s types.Severity) Option {
	return func(m *MobileSink) {
		if level.Valid(s) {
			m.minLevel = s
		}
	}
}

// WithLevelName sets the minimum level by name; unknown names mean info.
func WithLevelName(name string) Option {
	return func(m *MobileSink) {
		m.minLevel, _ = level.ParseSeverity(name)
	}
}

// WithConsole sets the console written to.
func WithConsole(c *console.Console) Option {
	return func(m *MobileSink) {
		if c != nil {
			m.console = c
		}
	}
}

// WithDetector sets the detector used for the platform advisory.
func WithDetector(d *platform.Detector) Option {
	return func(m *MobileSink) {
		if d != nil {
			m.detector = d
		}
	}
}

// New creates a MobileSink. Outside a mobile platform it prints a warning
// suggesting FileSink but still returns a working sink.
func New(options ...Option) *MobileSink {
	m := &MobileSink{
		enabled:  true,
		minLevel: types.SeverityInfo,
		detector: platform.Default(),
	}
	for _, option := range options {
		option(m)
	}
	if m.console == nil {
		m.console = console.New()
	}

	if !m.detector.Detect().IsMobile() {
		m.console.Warn(PlatformWarning)
	}
	return m
}

func (m *MobileSink) allows(s types.Severity) bool {
	return m.enabled && level.ShouldEmit(s, m.minLevel)
}

// Info prints an informational message.
func (m *MobileSink) Info(args ...interface{}) {
	if m.allows(types.SeverityInfo) {
		m.console.Info(args...)
	}
}

// Error prints an error.
func (m *MobileSink) Error(args ...interface{}) {
	if m.allows(types.SeverityError) {
		m.console.Error(args...)
	}
}

// Warn prints a warning.
func (m *MobileSink) Warn(args ...interface{}) {
	if m.allows(types.SeverityWarn) {
		m.console.Warn(args...)
	}
}

// Debug prints a debug message.
func (m *MobileSink) Debug(args ...interface{}) {
	if m.allows(types.SeverityDebug) {
		m.console.Debug(args...)
	}
}

// Log prints args unprefixed, gated at info.
func (m *MobileSink) Log(args ...interface{}) {
	if m.allows(types.SeverityInfo) {
		m.console.Print(args...)
	}
}

// ClearLogs prints a notice; there is no persisted output to clear.
func (m *MobileSink) ClearLogs() {
	if m.enabled {
		m.console.Print(console.MarkerClear, ClearNotice)
	}
}

// Close does nothing.
func (m *MobileSink) Close() {}

// WasClearedOnInit always reports false.
func (m *MobileSink) WasClearedOnInit() bool {
	return false
}

// Level returns the minimum level.
func (m *MobileSink) Level() types.Severity {
	return m.minLevel
}

var _ types.Sink = (*MobileSink)(nil)
