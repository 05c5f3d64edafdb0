package console_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/joeydtaylor/logkit/pkg/internal/console"
)

func TestConsole_RoutesStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	c := console.New(console.WithOutput(&out), console.WithErrorOutput(&errOut))

	c.Error("boom", 1)
	c.Warn("careful")
	c.Info("hello", "world")
	c.Debug("trace")
	c.Print("plain")

	wantErr := "❌ boom 1\n⚠️ careful\n"
	if got := errOut.String(); got != wantErr {
		t.Fatalf("error stream = %q, expected %q", got, wantErr)
	}
	wantOut := "ℹ️ hello world\n🐞 trace\nplain\n"
	if got := out.String(); got != wantOut {
		t.Fatalf("output stream = %q, expected %q", got, wantOut)
	}
}

func TestJoin(t *testing.T) {
	if got := console.Join("a", 2, true); got != "a 2 true" {
		t.Fatalf("Join = %q", got)
	}
	if got := console.Join(); got != "" {
		t.Fatalf("Join() = %q", got)
	}
	if got := console.Join(errors.New("x")); got != "x" {
		t.Fatalf("Join(error) = %q", got)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestConsole_WriteFailureIsSwallowed(t *testing.T) {
	c := console.New(console.WithOutput(failingWriter{}), console.WithErrorOutput(failingWriter{}))
	c.Error("still fine")
	c.Info("still fine")
	if err := c.Sync(); err != nil {
		t.Fatalf("Sync error: %v", err)
	}
}
