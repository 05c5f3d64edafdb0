package internallogger

import (
	"fmt"
	"sort"

	"github.com/joeydtaylor/logkit/pkg/internal/consolesink"
	"github.com/joeydtaylor/logkit/pkg/internal/filesink"
	"github.com/joeydtaylor/logkit/pkg/internal/mobilesink"
	"github.com/joeydtaylor/logkit/pkg/internal/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AddSink builds a sink from its config and registers it under identifier.
func (z *Logger) AddSink(identifier string, config types.SinkConfig) error {
	sink, err := z.buildSink(config)
	if err != nil {
		return fmt.Errorf("sink %s: %w", identifier, err)
	}
	if err := z.AttachSink(identifier, sink); err != nil {
		sink.Close()
		return err
	}
	return nil
}

// AttachSink registers an already constructed sink.
func (z *Logger) AttachSink(identifier string, sink types.Sink) error {
	if identifier == "" {
		return fmt.Errorf("sink identifier is required")
	}
	if sink == nil {
		return fmt.Errorf("sink %s is nil", identifier)
	}

	z.mu.Lock()
	defer z.mu.Unlock()

	if _, exists := z.sinks[identifier]; exists {
		return fmt.Errorf("sink already registered: %s", identifier)
	}
	z.sinks[identifier] = sinkEntry{sink: sink, core: newSinkCore(z.threshold, sink)}

	z.rebuildLoggerLocked()
	return nil
}

func (z *Logger) buildSink(config types.SinkConfig) (types.Sink, error) {
	cfg := config.Config
	if cfg == nil {
		cfg = map[string]interface{}{}
	}

	switch types.SinkType(config.Type) {
	case types.ConsoleSink:
		return consolesink.New(consolesink.WithThreshold(z.threshold)), nil
	case types.FileSink:
		fileCfg, err := fileConfig(cfg)
		if err != nil {
			return nil, err
		}
		return filesink.New(fileCfg, filesink.WithDetector(z.detector))
	case types.MobileSink:
		opts, err := mobileOptions(cfg)
		if err != nil {
			return nil, err
		}
		opts = append(opts, mobilesink.WithDetector(z.detector))
		return mobilesink.New(opts...), nil
	default:
		return nil, fmt.Errorf("unsupported sink type: %s", config.Type)
	}
}

// RemoveSink unregisters a sink and closes it.
func (z *Logger) RemoveSink(identifier string) error {
	z.mu.Lock()
	defer z.mu.Unlock()

	entry, ok := z.sinks[identifier]
	if !ok {
		return fmt.Errorf("sink not found: %s", identifier)
	}
	delete(z.sinks, identifier)
	entry.sink.Close()

	z.rebuildLoggerLocked()
	return nil
}

// ListSinks lists registered sink identifiers in sorted order.
func (z *Logger) ListSinks() ([]string, error) {
	z.mu.Lock()
	defer z.mu.Unlock()

	identifiers := make([]string, 0, len(z.sinks))
	for id := range z.sinks {
		identifiers = append(identifiers, id)
	}
	sort.Strings(identifiers)
	return identifiers, nil
}

func (z *Logger) rebuildLoggerLocked() {
	ids := make([]string, 0, len(z.sinks))
	for id := range z.sinks {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	cores := make([]zapcore.Core, 0, len(ids))
	for _, id := range ids {
		cores = append(cores, z.sinks[id].core)
	}
	opts := []zap.Option{zap.AddCallerSkip(2)}
	if z.callerOn {
		opts = append(opts, zap.AddCaller())
	}
	logger := zap.New(zapcore.NewTee(cores...), opts...)
	if len(z.baseFields) > 0 {
		logger = logger.With(z.baseFields...)
	}
	z.logger = logger
}
