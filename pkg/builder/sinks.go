package builder

import (
	"io"
	"time"

	"github.com/joeydtaylor/logkit/pkg/internal/consolesink"
	"github.com/joeydtaylor/logkit/pkg/internal/filesink"
	"github.com/joeydtaylor/logkit/pkg/internal/mobilesink"
	"github.com/joeydtaylor/logkit/pkg/internal/rotation"
	"github.com/joeydtaylor/logkit/pkg/internal/types"
)

type ConsoleSink = consolesink.ConsoleSink

type ConsoleSinkOption = consolesink.Option

type FileSink = filesink.FileSink

type FileSinkConfig = filesink.Config

type FileSinkOption = filesink.Option

type MobileSink = mobilesink.MobileSink

type MobileSinkOption = mobilesink.Option

type Compression = rotation.Algorithm

// Archive compression for rotated files.
const (
	CompressionNone   = rotation.None
	CompressionGzip   = rotation.Gzip
	CompressionSnappy = rotation.Snappy
	CompressionZstd   = rotation.Zstd
	CompressionBrotli = rotation.Brotli
	CompressionLZ4    = rotation.LZ4
)

// ErrEnvironmentMismatch is returned by NewFileSink outside a server runtime.
var ErrEnvironmentMismatch = filesink.ErrEnvironmentMismatch

// NewConsoleSink creates a console sink gated by the process-wide threshold
// unless ConsoleSinkWithThreshold is given.
func NewConsoleSink(options ...ConsoleSinkOption) *ConsoleSink {
	return consolesink.New(options...)
}

// ConsoleSinkWithThreshold gates the sink with t instead of the process-wide threshold.
func ConsoleSinkWithThreshold(t *Threshold) ConsoleSinkOption {
	return consolesink.WithThreshold(t)
}

// ConsoleSinkWithOutput sets the stream for info, debug and log lines.
func ConsoleSinkWithOutput(w io.Writer) ConsoleSinkOption {
	return consolesink.WithOutput(w)
}

// ConsoleSinkWithErrorOutput sets the stream for error and warning lines.
func ConsoleSinkWithErrorOutput(w io.Writer) ConsoleSinkOption {
	return consolesink.WithErrorOutput(w)
}

// NewFileSink opens the info and error files under cfg.LogDir. It fails only
// with ErrEnvironmentMismatch.
func NewFileSink(cfg FileSinkConfig, options ...FileSinkOption) (*FileSink, error) {
	return filesink.New(cfg, options...)
}

// FileSinkWithDetector sets the detector consulted at construction.
func FileSinkWithDetector(d *Detector) FileSinkOption {
	return filesink.WithDetector(d)
}

// FileSinkWithReporter routes initialization and I/O failures to r.
func FileSinkWithReporter(r types.Reporter) FileSinkOption {
	return filesink.WithReporter(r)
}

// FileSinkWithClock sets the clock used for line timestamps.
func FileSinkWithClock(now func() time.Time) FileSinkOption {
	return filesink.WithClock(now)
}

// NewMobileSink creates a console-backed sink with the FileSink contract.
func NewMobileSink(options ...MobileSinkOption) *MobileSink {
	return mobilesink.New(options...)
}

// MobileSinkWithConsoleLogging enables or disables output.
func MobileSinkWithConsoleLogging(enabled bool) MobileSinkOption {
	return mobilesink.WithConsoleLogging(enabled)
}

// MobileSinkWithLevel sets the minimum level.
func MobileSinkWithLevel(s Severity) MobileSinkOption {
	return mobilesink.WithLevel(s)
}

// MobileSinkWithDetector sets the detector used for the platform advisory.
func MobileSinkWithDetector(d *Detector) MobileSinkOption {
	return mobilesink.WithDetector(d)
}

// ErrUnknownCompression is returned by ParseCompression for unsupported names.
var ErrUnknownCompression = rotation.ErrUnknownAlgorithm

// ParseCompression converts a name such as "gzip" or "zstd". The empty string
// and "none" mean no compression.
func ParseCompression(name string) (Compression, error) {
	return rotation.ParseAlgorithm(name)
}

// OpenLogFile opens a log file or rotated archive, decompressing according to
// its extension.
func OpenLogFile(path string) (io.ReadCloser, error) {
	return rotation.Open(path)
}
