package internallogger

import (
	"github.com/joeydtaylor/logkit/pkg/internal/level"
	"github.com/joeydtaylor/logkit/pkg/internal/types"
)

// parseLogLevel converts a level name, defaulting to info.
func parseLogLevel(levelStr string) types.Severity {
	s, _ := level.ParseSeverity(levelStr)
	return s
}

// GetLevel returns the effective level.
func (z *Logger) GetLevel() types.Severity {
	return z.threshold.Effective()
}

// SetLevel updates the logger's minimum level. Sinks already attached see the
// change on their next message.
func (z *Logger) SetLevel(s types.Severity) {
	z.threshold.Set(s)
}
