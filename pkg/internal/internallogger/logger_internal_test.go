package internallogger

import (
	"testing"
	"time"

	"github.com/joeydtaylor/logkit/pkg/internal/level"
	"github.com/joeydtaylor/logkit/pkg/internal/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLog_WritesFields(t *testing.T) {
	logger := NewLogger()
	core, obs := observer.New(zapcore.DebugLevel)

	logger.mu.Lock()
	logger.logger = zap.New(core)
	logger.mu.Unlock()

	logger.Log(types.SeverityInfo, "msg", "a", "b", "c", 3, "orphan")

	entries := obs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].Context
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Key != "a" || fields[1].Key != "c" {
		t.Fatalf("unexpected field keys: %v, %v", fields[0].Key, fields[1].Key)
	}
}

func TestLog_IgnoresNonStringKeys(t *testing.T) {
	logger := NewLogger()
	core, obs := observer.New(zapcore.DebugLevel)

	logger.mu.Lock()
	logger.logger = zap.New(core)
	logger.mu.Unlock()

	logger.Log(types.SeverityInfo, "msg", 123, "skip", "", "empty", "k", "v")

	entries := obs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].Context
	if len(fields) != 1 || fields[0].Key != "k" {
		t.Fatalf("expected only field 'k', got %v", fields)
	}
}

func TestLog_MapsSeverityToZapLevel(t *testing.T) {
	logger := NewLogger()
	core, obs := observer.New(zapcore.WarnLevel)

	logger.mu.Lock()
	logger.logger = zap.New(core)
	logger.mu.Unlock()

	logger.Log(types.SeverityInfo, "info")
	logger.Log(types.SeverityWarn, "warn")
	logger.Log(types.SeverityError, "error")

	entries := obs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Entry.Level != zapcore.WarnLevel || entries[1].Entry.Level != zapcore.ErrorLevel {
		t.Fatalf("unexpected levels %v %v", entries[0].Entry.Level, entries[1].Entry.Level)
	}
}

func TestLog_NilLoggerNoPanic(t *testing.T) {
	logger := NewLogger()
	logger.mu.Lock()
	logger.logger = nil
	logger.mu.Unlock()

	logger.Log(types.SeverityInfo, "msg")
	if err := logger.Flush(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestRenderLine(t *testing.T) {
	ent := zapcore.Entry{Message: "request"}
	fields := []zapcore.Field{
		zap.String("path", "/health"),
		zap.Int("status", 200),
		zap.Duration("took", 1500*time.Millisecond),
		zap.Bool("cached", false),
	}

	got := renderLine(ent, fields)
	want := "request cached=false path=/health status=200 took=1.5s"
	if got != want {
		t.Fatalf("renderLine = %q, expected %q", got, want)
	}
	if got := renderLine(ent, nil); got != "request" {
		t.Fatalf("renderLine without fields = %q", got)
	}
}

func TestRenderLine_LaterFieldWins(t *testing.T) {
	got := renderLine(zapcore.Entry{Message: "m"}, []zapcore.Field{zap.String("k", "base"), zap.String("k", "call")})
	if got != "m k=call" {
		t.Fatalf("unexpected %q", got)
	}
}

type captureSink struct {
	method string
	line   string
}

func (c *captureSink) set(method string, args []interface{}) {
	c.method = method
	if len(args) > 0 {
		c.line, _ = args[0].(string)
	}
}

func (c *captureSink) Error(args ...interface{}) { c.set("error", args) }
func (c *captureSink) Warn(args ...interface{})  { c.set("warn", args) }
func (c *captureSink) Info(args ...interface{})  { c.set("info", args) }
func (c *captureSink) Debug(args ...interface{}) { c.set("debug", args) }
func (c *captureSink) Log(args ...interface{})   { c.set("log", args) }
func (c *captureSink) ClearLogs()                {}
func (c *captureSink) Close()                    {}
func (c *captureSink) WasClearedOnInit() bool    { return false }

func TestSinkCore_WithAndCheck(t *testing.T) {
	sink := &captureSink{}
	th := level.NewThreshold(level.ThresholdWithLevel(types.SeverityWarn))
	core := newSinkCore(th, sink).With([]zapcore.Field{zap.String("svc", "api")})

	if ce := core.Check(zapcore.Entry{Level: zapcore.InfoLevel}, nil); ce != nil {
		t.Fatalf("info must not pass a warn threshold")
	}

	ent := zapcore.Entry{Level: zapcore.WarnLevel, Message: "slow"}
	ce := core.Check(ent, nil)
	if ce == nil {
		t.Fatalf("warn must pass a warn threshold")
	}
	ce.Write(zap.Int("ms", 900))

	if sink.method != "warn" || sink.line != "slow ms=900 svc=api" {
		t.Fatalf("unexpected dispatch %s %q", sink.method, sink.line)
	}
	if err := core.Sync(); err != nil {
		t.Fatalf("Sync error: %v", err)
	}
}

func TestDispatch_CollapsesHighLevels(t *testing.T) {
	sink := &captureSink{}
	core := newSinkCore(zapcore.DebugLevel, sink)
	if err := core.Write(zapcore.Entry{Level: zapcore.DPanicLevel, Message: "x"}, nil); err != nil {
		t.Fatal(err)
	}
	if sink.method != "error" {
		t.Fatalf("expected error dispatch, got %s", sink.method)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]types.Severity{
		"debug":   types.SeverityDebug,
		"info":    types.SeverityInfo,
		"warn":    types.SeverityWarn,
		"WARNING": types.SeverityWarn,
		"error":   types.SeverityError,
		"bogus":   types.SeverityInfo,
		"":        types.SeverityInfo,
	}

	for input, expect := range cases {
		if got := parseLogLevel(input); got != expect {
			t.Fatalf("parseLogLevel(%q) = %v, expected %v", input, got, expect)
		}
	}
}
