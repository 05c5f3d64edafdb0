package level

import (
	"github.com/joeydtaylor/logkit/pkg/internal/types"
	"go.uber.org/zap/zapcore"
)

// ConvertLevel converts a Severity to a zap level.
func ConvertLevel(s types.Severity) zapcore.Level {
	switch s {
	case types.SeverityDebug:
		return zapcore.DebugLevel
	case types.SeverityInfo:
		return zapcore.InfoLevel
	case types.SeverityWarn:
		return zapcore.WarnLevel
	case types.SeverityError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// FromZapLevel converts a zap level to a Severity. Levels above error collapse
// onto error.
func FromZapLevel(l zapcore.Level) types.Severity {
	switch {
	case l <= zapcore.DebugLevel:
		return types.SeverityDebug
	case l == zapcore.InfoLevel:
		return types.SeverityInfo
	case l == zapcore.WarnLevel:
		return types.SeverityWarn
	default:
		return types.SeverityError
	}
}
