package types

// Severity is the importance of a log message. Lower values are more important;
// the order is fixed and only thresholds are configurable.
type Severity int

const (
	SeverityError Severity = iota // SeverityError indicates failures.
	SeverityWarn                  // SeverityWarn indicates potential problems.
	SeverityInfo                  // SeverityInfo indicates normal operational messages.
	SeverityDebug                 // SeverityDebug indicates development diagnostics.
)

// String returns the lowercase level name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarn:
		return "warn"
	case SeverityInfo:
		return "info"
	case SeverityDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// SinkType defines the type of logger sink.
type SinkType string

// Define constants for SinkType
const (
	ConsoleSink SinkType = "console"
	FileSink    SinkType = "file"
	MobileSink  SinkType = "mobile"
)

// SinkConfig defines the configuration for a logging sink.
type SinkConfig struct {
	Type   string                 // Type of sink, e.g., "console", "file", "mobile"
	Config map[string]interface{} // Detailed configuration specific to the sink type
}

// Sink is the capability shared by every sink variant. Callers can swap a console,
// file or mobile sink without code changes.
type Sink interface {
	Error(args ...interface{}) // Error emits an error message.
	Warn(args ...interface{})  // Warn emits a warning.
	Info(args ...interface{})  // Info emits an informational message.
	Debug(args ...interface{}) // Debug emits a debug message.
	Log(args ...interface{})   // Log emits an unprefixed message at info importance.
	ClearLogs()                // ClearLogs discards persisted output where the sink has any.
	Close()                    // Close releases resources; later writes are dropped.
	WasClearedOnInit() bool    // WasClearedOnInit reports whether output was truncated at construction.
}

// Flusher is implemented by sinks that buffer or own OS handles.
type Flusher interface {
	Flush() error
}

// Reporter receives diagnostics that must not be raised to the caller,
// such as a log file that could not be opened.
type Reporter interface {
	Error(args ...interface{})
}
