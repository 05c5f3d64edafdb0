package internallogger

import (
	"github.com/joeydtaylor/logkit/pkg/internal/level"
	"github.com/joeydtaylor/logkit/pkg/internal/types"
)

// Log emits a message with structured fields to every sink the threshold allows.
func (z *Logger) Log(s types.Severity, msg string, keysAndValues ...interface{}) {
	z.log(s, msg, keysAndValues)
}

func (z *Logger) log(s types.Severity, msg string, keysAndValues []interface{}) {
	z.mu.Lock()
	logger := z.logger
	z.mu.Unlock()

	if logger == nil {
		return
	}
	if ce := logger.Check(level.ConvertLevel(s), msg); ce != nil {
		ce.Write(fieldsFromPairs(keysAndValues)...)
	}
}

// Debug logs a debug message.
func (z *Logger) Debug(msg string, keysAndValues ...interface{}) {
	z.log(types.SeverityDebug, msg, keysAndValues)
}

// Info logs an informational message.
func (z *Logger) Info(msg string, keysAndValues ...interface{}) {
	z.log(types.SeverityInfo, msg, keysAndValues)
}

// Warn logs a warning message.
func (z *Logger) Warn(msg string, keysAndValues ...interface{}) {
	z.log(types.SeverityWarn, msg, keysAndValues)
}

// Error logs an error message.
func (z *Logger) Error(msg string, keysAndValues ...interface{}) {
	z.log(types.SeverityError, msg, keysAndValues)
}

// ClearLogs clears every sink.
func (z *Logger) ClearLogs() {
	z.mu.Lock()
	defer z.mu.Unlock()
	for _, entry := range z.sinks {
		entry.sink.ClearLogs()
	}
}

// Flush syncs every sink that buffers output.
func (z *Logger) Flush() error {
	z.mu.Lock()
	logger := z.logger
	z.mu.Unlock()

	if logger == nil {
		return nil
	}
	return logger.Sync()
}

// Close flushes and closes every sink, leaving the logger with none.
func (z *Logger) Close() error {
	err := z.Flush()

	z.mu.Lock()
	defer z.mu.Unlock()
	for id, entry := range z.sinks {
		entry.sink.Close()
		delete(z.sinks, id)
	}
	z.rebuildLoggerLocked()
	return err
}
