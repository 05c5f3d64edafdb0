package cmd_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joeydtaylor/logkit/cmd/logkit/cmd"
	"github.com/joeydtaylor/logkit/pkg/builder"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestWriteCmd(t *testing.T) {
	dir := t.TempDir()
	if err := newCommand(t,
		cmd.WithArgs("write", "--dir", dir, "--level", "warn", "--field", "user=ada", "disk", "almost", "full"),
	).Execute(); err != nil {
		t.Fatal(err)
	}

	info := readFile(t, filepath.Join(dir, "info.log"))
	if !strings.Contains(info, " - === File Logger Started ===\n") {
		t.Errorf("missing start marker in %q", info)
	}
	if !strings.HasSuffix(info, " - ⚠️ disk almost full user=ada\n") {
		t.Errorf("unexpected info file %q", info)
	}
}

func TestWriteCmd_ErrorGoesToErrorFile(t *testing.T) {
	dir := t.TempDir()
	if err := newCommand(t,
		cmd.WithArgs("write", "--dir", dir, "--level", "error", "boom"),
	).Execute(); err != nil {
		t.Fatal(err)
	}

	if got := readFile(t, filepath.Join(dir, "error.log")); !strings.HasSuffix(got, " - ❌ boom\n") {
		t.Errorf("unexpected error file %q", got)
	}
	if got := readFile(t, filepath.Join(dir, "info.log")); strings.Contains(got, "boom") {
		t.Errorf("error line leaked into info file %q", got)
	}
}

func TestWriteCmd_Echo(t *testing.T) {
	var outputBuf bytes.Buffer
	if err := newCommand(t,
		cmd.WithArgs("write", "--dir", t.TempDir(), "--echo", "hi"),
		cmd.WithOutput(&outputBuf),
	).Execute(); err != nil {
		t.Fatal(err)
	}
	if got := outputBuf.String(); got != "ℹ️ hi\n" {
		t.Errorf("got output %q", got)
	}
}

func TestWriteCmd_DirFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LOGKIT_DIR", dir)
	t.Setenv("LOGKIT_INFO_FILE", "app.log")

	if err := newCommand(t, cmd.WithArgs("write", "from", "env")).Execute(); err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, filepath.Join(dir, "app.log")); !strings.HasSuffix(got, " - from env\n") {
		t.Errorf("unexpected info file %q", got)
	}
}

func TestWriteCmd_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(t.TempDir(), "logkit.yaml")
	if err := os.WriteFile(cfgFile, []byte("dir: "+dir+"\nlevel: debug\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := newCommand(t, cmd.WithArgs("--config", cfgFile, "write", "configured")).Execute(); err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, filepath.Join(dir, "info.log")); !strings.HasSuffix(got, " - 🐞 configured\n") {
		t.Errorf("unexpected info file %q", got)
	}
}

func TestWriteCmd_Rejects(t *testing.T) {
	browser := builder.NewDetector(builder.DetectorWithEnvironment(builder.Environment{Window: true, Document: true}))

	err := newCommand(t, cmd.WithArgs("write", "--dir", t.TempDir(), "--level", "loud", "x")).Execute()
	if !errors.Is(err, builder.ErrUnknownLevel) {
		t.Errorf("expected ErrUnknownLevel, got %v", err)
	}

	err = newCommand(t, cmd.WithArgs("write", "--dir", t.TempDir(), "--field", "novalue", "x")).Execute()
	if err == nil {
		t.Errorf("expected error for malformed field")
	}

	err = newCommand(t, cmd.WithArgs("write", "--dir", t.TempDir(), "--compression", "rar", "x")).Execute()
	if !errors.Is(err, builder.ErrUnknownCompression) {
		t.Errorf("expected ErrUnknownCompression, got %v", err)
	}

	err = newCommand(t, cmd.WithArgs("write", "--dir", t.TempDir(), "x"), cmd.WithDetector(browser)).Execute()
	if !errors.Is(err, builder.ErrEnvironmentMismatch) {
		t.Errorf("expected ErrEnvironmentMismatch, got %v", err)
	}

	if err := newCommand(t, cmd.WithArgs("write")).Execute(); err == nil {
		t.Errorf("expected error without a message")
	}
}

func TestWriteCmd_UnusableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	var errBuf bytes.Buffer
	err := newCommand(t,
		cmd.WithArgs("write", "--dir", filepath.Join(blocker, "logs"), "x"),
		cmd.WithErrorOutput(&errBuf),
	).Execute()
	if err == nil {
		t.Fatalf("expected failure")
	}
	if !strings.Contains(errBuf.String(), "Failed to initialize file logging:") {
		t.Errorf("expected initialization report, got %q", errBuf.String())
	}
}
