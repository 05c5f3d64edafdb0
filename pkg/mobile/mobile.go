// Package mobile is the entry surface for React Native and Expo hosts. Like the
// browser surface it leaves out the file sink.
package mobile

import (
	"io"

	"github.com/joeydtaylor/logkit/pkg/internal/consolesink"
	"github.com/joeydtaylor/logkit/pkg/internal/level"
	"github.com/joeydtaylor/logkit/pkg/internal/mobilesink"
	"github.com/joeydtaylor/logkit/pkg/internal/platform"
	"github.com/joeydtaylor/logkit/pkg/internal/types"
)

type Sink = types.Sink

type Severity = types.Severity

type ConsoleSink = consolesink.ConsoleSink

type ConsoleSinkOption = consolesink.Option

type MobileSink = mobilesink.MobileSink

type MobileSinkOption = mobilesink.Option

type PlatformInfo = platform.Info

const (
	ErrorLevel = types.SeverityError
	WarnLevel  = types.SeverityWarn
	InfoLevel  = types.SeverityInfo
	DebugLevel = types.SeverityDebug
)

// NewSink returns the sink suited to a mobile host: a MobileSink at info.
func NewSink() Sink {
	return mobilesink.New()
}

// NewConsoleSink creates a console sink.
func NewConsoleSink(options ...ConsoleSinkOption) *ConsoleSink {
	return consolesink.New(options...)
}

// ConsoleSinkWithOutput sets the stream for info, debug and log lines.
func ConsoleSinkWithOutput(w io.Writer) ConsoleSinkOption {
	return consolesink.WithOutput(w)
}

// ConsoleSinkWithErrorOutput sets the stream for error and warning lines.
func ConsoleSinkWithErrorOutput(w io.Writer) ConsoleSinkOption {
	return consolesink.WithErrorOutput(w)
}

// NewMobileSink creates a console-backed sink with the FileSink contract.
func NewMobileSink(options ...MobileSinkOption) *MobileSink {
	return mobilesink.New(options...)
}

// MobileSinkWithConsoleLogging enables or disables output.
func MobileSinkWithConsoleLogging(enabled bool) MobileSinkOption {
	return mobilesink.WithConsoleLogging(enabled)
}

// MobileSinkWithLevel sets the minimum level.
func MobileSinkWithLevel(s Severity) MobileSinkOption {
	return mobilesink.WithLevel(s)
}

// MobileSinkWithLevelName sets the minimum level by name; unknown names mean info.
func MobileSinkWithLevelName(name string) MobileSinkOption {
	return mobilesink.WithLevelName(name)
}

// IsMobile reports whether the current runtime is React Native or Expo.
func IsMobile() bool {
	return platform.DetectCurrent().IsMobile()
}

// SetThreshold overrides the process-wide threshold.
func SetThreshold(s Severity) {
	level.SetThreshold(s)
}

// SetThresholdName overrides the process-wide threshold from a level name.
func SetThresholdName(name string) error {
	return level.SetThresholdName(name)
}

// ResetThreshold drops the override.
func ResetThreshold() {
	level.Default.Reset()
}

// Detect classifies the current runtime.
func Detect() PlatformInfo {
	return platform.DetectCurrent()
}

// IsFileLoggingAvailable reports whether the runtime is a server runtime.
func IsFileLoggingAvailable() bool {
	return platform.IsFileLoggingAvailable()
}

// PlatformName returns the diagnostic name of the current runtime.
func PlatformName() string {
	return platform.PlatformName()
}
