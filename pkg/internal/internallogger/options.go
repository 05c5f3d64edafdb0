package internallogger

import (
	"github.com/joeydtaylor/logkit/pkg/internal/level"
	"github.com/joeydtaylor/logkit/pkg/internal/platform"
)

// LoggerWithLevel sets the logger's level by name. Unknown names mean info.
func LoggerWithLevel(levelStr string) LoggerOption {
	return func(z *Logger) {
		z.threshold = level.NewThreshold(level.ThresholdWithLevel(parseLogLevel(levelStr)))
	}
}

// LoggerWithThreshold shares an existing threshold, such as level.Default.
func LoggerWithThreshold(t *level.Threshold) LoggerOption {
	return func(z *Logger) {
		if t != nil {
			z.threshold = t
		}
	}
}

// LoggerWithFields attaches fields to every log line.
func LoggerWithFields(fields map[string]interface{}) LoggerOption {
	return func(z *Logger) {
		z.baseFields = append(z.baseFields, fieldsFromMap(fields)...)
	}
}

// LoggerWithDetector sets the detector handed to file and mobile sinks.
func LoggerWithDetector(d *platform.Detector) LoggerOption {
	return func(z *Logger) {
		if d != nil {
			z.detector = d
		}
	}
}

// LoggerWithCaller appends the calling file and line to every message.
func LoggerWithCaller(enabled bool) LoggerOption {
	return func(z *Logger) {
		z.callerOn = enabled
	}
}
