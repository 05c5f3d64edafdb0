// Package filesink persists log lines to an info file and an error file.
//
// A FileSink never raises I/O failures to the caller: a directory or file that
// cannot be opened is reported through the console error path and the sink
// keeps running with writes dropped.
package filesink

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joeydtaylor/logkit/pkg/internal/console"
	"github.com/joeydtaylor/logkit/pkg/internal/platform"
	"github.com/joeydtaylor/logkit/pkg/internal/rotation"
	"github.com/joeydtaylor/logkit/pkg/internal/types"
	"go.uber.org/multierr"
)

// Startup markers written whenever the streams are (re)opened.
const (
	StartMarker      = "=== File Logger Started ==="
	ErrorStartMarker = "=== File Logger Error Log Started ==="
)

// TimestampLayout formats line timestamps in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// ErrEnvironmentMismatch is returned by New outside a server runtime.
var ErrEnvironmentMismatch = errors.New("file sink is only available on server runtimes; use the console sink or the mobile sink on browser and mobile platforms")

var errMissingLogDir = errors.New("log directory is required")

// FileSink writes info, warn, debug and log lines to the info file and error
// lines to the error file. Writes to the same file keep call order.
type FileSink struct {
	mu       sync.Mutex
	cfg      Config
	info     *stream
	errs     *stream
	reporter types.Reporter
	detector *platform.Detector
	now      func() time.Time
}

// New validates the runtime and opens both files. It only fails with
// ErrEnvironmentMismatch; any later failure leaves a degraded sink.
func New(cfg Config, options ...Option) (*FileSink, error) {
	s := &FileSink{
		cfg:      cfg.withDefaults(),
		reporter: console.New(),
		detector: platform.Default(),
		now:      time.Now,
	}
	for _, option := range options {
		option(s)
	}

	if !s.detector.IsFileLoggingAvailable() {
		return nil, ErrEnvironmentMismatch
	}

	s.mu.Lock()
	s.initializeLocked()
	s.mu.Unlock()
	return s, nil
}

// InfoPath returns the path of the info file.
func (s *FileSink) InfoPath() string {
	return filepath.Join(s.cfg.LogDir, s.cfg.InfoLogFile)
}

// ErrorPath returns the path of the error file.
func (s *FileSink) ErrorPath() string {
	return filepath.Join(s.cfg.LogDir, s.cfg.ErrorLogFile)
}

// Config returns the configuration with defaults applied.
func (s *FileSink) Config() Config {
	return s.cfg
}

// WasClearedOnInit reports whether the files were truncated at construction.
func (s *FileSink) WasClearedOnInit() bool {
	return s.cfg.ClearOnInit
}

func (s *FileSink) initializeLocked() {
	if err := s.openLocked(); err != nil {
		s.reporter.Error("Failed to initialize file logging:", multierr.Append(err, s.closeLocked()))
		return
	}
	s.writeLocked(s.info, "", StartMarker)
	s.writeLocked(s.errs, console.MarkerError+" ", ErrorStartMarker)
}

func (s *FileSink) openLocked() error {
	if s.cfg.LogDir == "" {
		return errMissingLogDir
	}
	if err := os.MkdirAll(s.cfg.LogDir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", s.cfg.LogDir, err)
	}

	var err error
	if s.info, err = openStream(s.InfoPath(), s.cfg.ClearOnInit); err != nil {
		return fmt.Errorf("open %s: %w", s.InfoPath(), err)
	}
	if s.errs, err = openStream(s.ErrorPath(), s.cfg.ClearOnInit); err != nil {
		return fmt.Errorf("open %s: %w", s.ErrorPath(), err)
	}
	return nil
}

func (s *FileSink) writeLocked(st *stream, marker, message string) {
	if st == nil {
		return
	}

	var b strings.Builder
	b.WriteString(s.now().UTC().Format(TimestampLayout))
	b.WriteString(" - ")
	b.WriteString(marker)
	b.WriteString(message)
	b.WriteByte('\n')
	line := b.String()

	if s.cfg.Rotate && st.size > 0 && st.size+int64(len(line)) > s.cfg.MaxFileSize {
		s.rotateLocked(st)
	}
	st.write([]byte(line))
}

func (s *FileSink) rotateLocked(st *stream) {
	if err := st.close(); err != nil {
		s.reporter.Error("Failed to close log file for rotation:", err)
	}
	if err := rotation.Roll(st.path, s.cfg.MaxFiles, s.cfg.Compression); err != nil {
		s.reporter.Error("Failed to rotate log file:", err)
	}
	if err := st.open(false); err != nil {
		s.reporter.Error("Failed to reopen log file after rotation:", err)
	}
}

func (s *FileSink) emit(errorStream bool, marker string, args []interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.info
	if errorStream {
		st = s.errs
	}
	s.writeLocked(st, marker, console.Join(args...))
}

// Info appends a line to the info file.
func (s *FileSink) Info(args ...interface{}) {
	s.emit(false, "", args)
}

// Warn appends a warning line to the info file.
func (s *FileSink) Warn(args ...interface{}) {
	s.emit(false, console.MarkerWarn+" ", args)
}

// Debug appends a debug line to the info file.
func (s *FileSink) Debug(args ...interface{}) {
	s.emit(false, console.MarkerDebug+" ", args)
}

// Log appends a line to the info file.
func (s *FileSink) Log(args ...interface{}) {
	s.emit(false, "", args)
}

// Error appends a line to the error file.
func (s *FileSink) Error(args ...interface{}) {
	s.emit(true, console.MarkerError+" ", args)
}

// ClearLogs closes both files, empties them and reopens them with fresh
// startup markers.
func (s *FileSink) ClearLogs() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.closeLocked(); err != nil {
		s.reporter.Error("Failed to clear log files:", err)
		return
	}
	for _, path := range []string{s.InfoPath(), s.ErrorPath()} {
		if err := os.Truncate(path, 0); err != nil && !os.IsNotExist(err) {
			s.reporter.Error("Failed to clear log files:", err)
			return
		}
	}
	s.initializeLocked()
}

// Close releases both files. It is safe to call more than once; later writes
// are dropped.
func (s *FileSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.closeLocked(); err != nil {
		s.reporter.Error("Failed to close log files:", err)
	}
}

func (s *FileSink) closeLocked() error {
	err := multierr.Combine(s.info.close(), s.errs.close())
	s.info = nil
	s.errs = nil
	return err
}

// Flush syncs both files to stable storage.
func (s *FileSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return multierr.Combine(s.info.sync(), s.errs.sync())
}

var _ types.Sink = (*FileSink)(nil)
