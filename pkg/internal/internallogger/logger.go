// Package internallogger fans structured log calls out to a set of named sinks.
//
// Each registered sink is wrapped in a zapcore.Core and the cores are teed into
// one zap.Logger, so a single call reaches every sink that the threshold allows.
package internallogger

import (
	"sync"

	"github.com/joeydtaylor/logkit/pkg/internal/level"
	"github.com/joeydtaylor/logkit/pkg/internal/platform"
	"github.com/joeydtaylor/logkit/pkg/internal/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOption configures a Logger.
type LoggerOption func(*Logger)

// Logger dispatches messages to its sinks.
type Logger struct {
	mu         sync.Mutex
	logger     *zap.Logger
	threshold  *level.Threshold
	detector   *platform.Detector
	baseFields []zap.Field
	callerOn   bool
	sinks      map[string]sinkEntry
}

type sinkEntry struct {
	sink types.Sink
	core zapcore.Core
}

// NewLogger creates a Logger with no sinks. Its threshold reads CONSOLE_LEVEL
// unless one is supplied.
func NewLogger(options ...LoggerOption) *Logger {
	z := &Logger{
		detector: platform.Default(),
		sinks:    make(map[string]sinkEntry),
	}
	for _, option := range options {
		option(z)
	}
	if z.threshold == nil {
		z.threshold = level.NewThreshold()
	}

	z.mu.Lock()
	z.rebuildLoggerLocked()
	z.mu.Unlock()
	return z
}

// Threshold returns the threshold gating every sink.
func (z *Logger) Threshold() *level.Threshold {
	return z.threshold
}
