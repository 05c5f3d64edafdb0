package builder

import (
	internalLogger "github.com/joeydtaylor/logkit/pkg/internal/internallogger"
	"github.com/joeydtaylor/logkit/pkg/internal/types"
)

type Logger = internalLogger.Logger

type LoggerOption = internalLogger.LoggerOption

type SinkConfig = types.SinkConfig

type SinkType = types.SinkType

type Sink = types.Sink

const (
	SinkTypeConsole SinkType = types.ConsoleSink
	SinkTypeFile    SinkType = types.FileSink
	SinkTypeMobile  SinkType = types.MobileSink
)

// NewLogger creates a multi-sink logger. Register sinks with AddSink or AttachSink.
func NewLogger(options ...LoggerOption) *Logger {
	return internalLogger.NewLogger(options...)
}

// LoggerWithLevel configures the logger to use the specified log level.
func LoggerWithLevel(levelStr string) LoggerOption {
	return internalLogger.LoggerWithLevel(levelStr)
}

// LoggerWithThreshold shares a threshold with the logger.
func LoggerWithThreshold(t *Threshold) LoggerOption {
	return internalLogger.LoggerWithThreshold(t)
}

// LoggerWithFields attaches fields to every log line.
func LoggerWithFields(fields map[string]interface{}) LoggerOption {
	return internalLogger.LoggerWithFields(fields)
}

// LoggerWithDetector sets the detector used when file and mobile sinks are added.
func LoggerWithDetector(d *Detector) LoggerOption {
	return internalLogger.LoggerWithDetector(d)
}

// LoggerWithCaller appends the calling file and line to every message.
func LoggerWithCaller(enabled bool) LoggerOption {
	return internalLogger.LoggerWithCaller(enabled)
}
