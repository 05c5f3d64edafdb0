// Package level holds the severity policy shared by every sink: the fixed
// ordering, string parsing and the runtime-adjustable threshold.
package level

import (
	"errors"
	"strings"

	"github.com/joeydtaylor/logkit/pkg/internal/types"
)

// ErrUnknownLevel is returned when a level name cannot be parsed.
var ErrUnknownLevel = errors.New("unknown log level")

// ShouldEmit reports whether a message at candidate passes threshold.
func ShouldEmit(candidate, threshold types.Severity) bool {
	return candidate <= threshold
}

// ParseSeverity converts a level name to a Severity. Matching ignores case and
// surrounding whitespace.
func ParseSeverity(name string) (types.Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "error":
		return types.SeverityError, true
	case "warn", "warning":
		return types.SeverityWarn, true
	case "info":
		return types.SeverityInfo, true
	case "debug":
		return types.SeverityDebug, true
	default:
		return types.SeverityInfo, false
	}
}

// parseOrInfo converts a level name to a Severity, falling back to info.
func parseOrInfo(name string) types.Severity {
	s, _ := ParseSeverity(name)
	return s
}

// Valid reports whether s is one of the four defined severities.
func Valid(s types.Severity) bool {
	return s >= types.SeverityError && s <= types.SeverityDebug
}
