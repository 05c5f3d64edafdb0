package level

import (
	"os"
	"sync/atomic"

	"github.com/joeydtaylor/logkit/pkg/internal/types"
	"go.uber.org/zap/zapcore"
)

// EnvKey is the environment variable consulted when no override is set.
const EnvKey = "CONSOLE_LEVEL"

// Threshold is the minimum importance a message needs to be emitted. A
// programmatic override wins over the configuration source; an absent or
// unrecognised source value means info. Sinks read it at emit time, so a change
// affects sinks that already exist. The zero value has no override and no
// source, so it resolves to info.
type Threshold struct {
	override atomic.Int32 // severity+1; 0 means unset
	source   func() string
}

// ThresholdOption configures a Threshold.
type ThresholdOption func(*Threshold)

// ThresholdWithSource sets the function that supplies the configured level name.
func ThresholdWithSource(source func() string) ThresholdOption {
	return func(t *Threshold) {
		t.source = source
	}
}

// ThresholdWithEnv reads the configured level name from the given environment variable.
func ThresholdWithEnv(key string) ThresholdOption {
	return ThresholdWithSource(func() string { return os.Getenv(key) })
}

// ThresholdWithLevel starts the threshold with an override already set.
func ThresholdWithLevel(s types.Severity) ThresholdOption {
	return func(t *Threshold) {
		t.Set(s)
	}
}

// NewThreshold creates a Threshold reading CONSOLE_LEVEL unless configured otherwise.
func NewThreshold(options ...ThresholdOption) *Threshold {
	t := &Threshold{source: func() string { return os.Getenv(EnvKey) }}
	for _, option := range options {
		option(t)
	}
	return t
}

// Default is the process-wide threshold used by sinks that are not given one.
var Default = NewThreshold()

// Set installs an override. Invalid severities are ignored.
func (t *Threshold) Set(s types.Severity) {
	if !Valid(s) {
		return
	}
	t.override.Store(int32(s) + 1)
}

// SetName installs an override from a level name.
func (t *Threshold) SetName(name string) error {
	s, ok := ParseSeverity(name)
	if !ok {
		return ErrUnknownLevel
	}
	t.Set(s)
	return nil
}

// Reset drops the override so the configuration source applies again.
func (t *Threshold) Reset() {
	t.override.Store(0)
}

// Overridden reports whether a programmatic override is active.
func (t *Threshold) Overridden() bool {
	return t.override.Load() != 0
}

// Effective resolves the active severity.
func (t *Threshold) Effective() types.Severity {
	if v := t.override.Load(); v != 0 {
		return types.Severity(v - 1)
	}
	if t.source == nil {
		return types.SeverityInfo
	}
	return parseOrInfo(t.source())
}

// Allows reports whether a message at s should be emitted now.
func (t *Threshold) Allows(s types.Severity) bool {
	return ShouldEmit(s, t.Effective())
}

// Enabled implements zapcore.LevelEnabler.
func (t *Threshold) Enabled(l zapcore.Level) bool {
	return t.Allows(FromZapLevel(l))
}

// SetThreshold overrides the process-wide threshold.
func SetThreshold(s types.Severity) {
	Default.Set(s)
}

// SetThresholdName overrides the process-wide threshold from a level name.
func SetThresholdName(name string) error {
	return Default.SetName(name)
}
