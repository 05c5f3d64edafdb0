package internallogger

import (
	"github.com/joeydtaylor/logkit/pkg/internal/level"
	"github.com/joeydtaylor/logkit/pkg/internal/types"
	"go.uber.org/zap/zapcore"
)

// sinkCore adapts a types.Sink to zapcore.Core. The rendered line is handed to
// the sink method matching the entry's severity.
type sinkCore struct {
	zapcore.LevelEnabler
	sink   types.Sink
	fields []zapcore.Field
}

func newSinkCore(enab zapcore.LevelEnabler, sink types.Sink) *sinkCore {
	return &sinkCore{LevelEnabler: enab, sink: sink}
}

func (c *sinkCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = make([]zapcore.Field, 0, len(c.fields)+len(fields))
	clone.fields = append(clone.fields, c.fields...)
	clone.fields = append(clone.fields, fields...)
	return &clone
}

func (c *sinkCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *sinkCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	all := fields
	if len(c.fields) > 0 {
		all = make([]zapcore.Field, 0, len(c.fields)+len(fields))
		all = append(all, c.fields...)
		all = append(all, fields...)
	}
	dispatch(c.sink, level.FromZapLevel(ent.Level), renderLine(ent, all))
	return nil
}

func (c *sinkCore) Sync() error {
	if f, ok := c.sink.(types.Flusher); ok {
		return f.Flush()
	}
	return nil
}

func dispatch(sink types.Sink, s types.Severity, line string) {
	switch s {
	case types.SeverityError:
		sink.Error(line)
	case types.SeverityWarn:
		sink.Warn(line)
	case types.SeverityDebug:
		sink.Debug(line)
	default:
		sink.Info(line)
	}
}
