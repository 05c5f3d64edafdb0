package builder

import (
	"github.com/joeydtaylor/logkit/pkg/internal/level"
	"github.com/joeydtaylor/logkit/pkg/internal/types"
)

// Severity is exported from the internal types package.
type Severity = types.Severity

type Threshold = level.Threshold

type ThresholdOption = level.ThresholdOption

// Export severities to be accessible under the builder package
const (
	ErrorLevel = types.SeverityError
	WarnLevel  = types.SeverityWarn
	InfoLevel  = types.SeverityInfo
	DebugLevel = types.SeverityDebug
)

// ErrUnknownLevel is returned by SetThresholdName for unrecognised names.
var ErrUnknownLevel = level.ErrUnknownLevel

// SetThreshold overrides the process-wide threshold. It affects sinks that
// already exist.
func SetThreshold(s Severity) {
	level.SetThreshold(s)
}

// SetThresholdName overrides the process-wide threshold from a level name.
func SetThresholdName(name string) error {
	return level.SetThresholdName(name)
}

// ResetThreshold drops the override so CONSOLE_LEVEL applies again.
func ResetThreshold() {
	level.Default.Reset()
}

// ShouldEmit reports whether a message at candidate passes threshold.
func ShouldEmit(candidate, threshold Severity) bool {
	return level.ShouldEmit(candidate, threshold)
}

// ParseSeverity converts a level name; ok is false for unknown names.
func ParseSeverity(name string) (s Severity, ok bool) {
	return level.ParseSeverity(name)
}

// NewThreshold creates a threshold independent of the process-wide one.
func NewThreshold(options ...ThresholdOption) *Threshold {
	return level.NewThreshold(options...)
}

// ThresholdWithLevel starts a threshold with an override already set.
func ThresholdWithLevel(s Severity) ThresholdOption {
	return level.ThresholdWithLevel(s)
}

// ThresholdWithEnv reads the configured level from key instead of CONSOLE_LEVEL.
func ThresholdWithEnv(key string) ThresholdOption {
	return level.ThresholdWithEnv(key)
}
