package filesink

import (
	"time"

	"github.com/joeydtaylor/logkit/pkg/internal/platform"
	"github.com/joeydtaylor/logkit/pkg/internal/rotation"
	"github.com/joeydtaylor/logkit/pkg/internal/types"
)

// Defaults applied to zero-valued Config fields.
const (
	DefaultInfoLogFile  = "info.log"
	DefaultErrorLogFile = "error.log"
	DefaultMaxFileSize  = 10 * 1024 * 1024
	DefaultMaxFiles     = 5
)

// Config describes the file pair a FileSink owns. It is copied at construction.
//
// MaxFileSize and MaxFiles are only enforced when Rotate is set; otherwise they
// are recorded for callers and tooling.
type Config struct {
	LogDir       string
	InfoLogFile  string
	ErrorLogFile string
	MaxFileSize  int64
	MaxFiles     int
	ClearOnInit  bool
	Rotate       bool
	Compression  rotation.Algorithm
}

func (c Config) withDefaults() Config {
	if c.InfoLogFile == "" {
		c.InfoLogFile = DefaultInfoLogFile
	}
	if c.ErrorLogFile == "" {
		c.ErrorLogFile = DefaultErrorLogFile
	}
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = DefaultMaxFileSize
	}
	if c.MaxFiles <= 0 {
		c.MaxFiles = DefaultMaxFiles
	}
	return c
}

// Option configures a FileSink.
type Option func(*FileSink)

// WithReporter sets where initialization failures are reported. Defaults to
// the console error stream.
func WithReporter(r types.Reporter) Option {
	return func(s *FileSink) {
		if r != nil {
			s.reporter = r
		}
	}
}

// WithDetector sets the detector used for the server runtime check.
func WithDetector(d *platform.Detector) Option {
	return func(s *FileSink) {
		if d != nil {
			s.detector = d
		}
	}
}

// WithClock sets the time source for line timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *FileSink) {
		if now != nil {
			s.now = now
		}
	}
}
