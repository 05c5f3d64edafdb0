package cmd_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/joeydtaylor/logkit/cmd/logkit/cmd"
	"github.com/joeydtaylor/logkit/pkg/builder"
)

func TestPlatformCmd(t *testing.T) {
	var outputBuf bytes.Buffer
	if err := newCommand(t,
		cmd.WithArgs("platform"),
		cmd.WithOutput(&outputBuf),
	).Execute(); err != nil {
		t.Fatal(err)
	}

	want := "platform: Node.js\n" +
		"server: true\n" +
		"browser: false\n" +
		"mobile-native: false\n" +
		"managed-mobile: false\n" +
		"file-logging: true\n"
	if got := outputBuf.String(); got != want {
		t.Errorf("got output %q, want %q", got, want)
	}
}

func TestPlatformCmd_Mobile(t *testing.T) {
	var outputBuf bytes.Buffer
	mobile := builder.NewDetector(builder.DetectorWithEnvironment(builder.Environment{
		Navigator: &builder.Navigator{Product: "ReactNative"},
		Process:   &builder.Process{Versions: map[string]string{"node": "18"}},
	}))
	if err := newCommand(t,
		cmd.WithArgs("platform"),
		cmd.WithDetector(mobile),
		cmd.WithOutput(&outputBuf),
	).Execute(); err != nil {
		t.Fatal(err)
	}

	got := outputBuf.String()
	for _, line := range []string{"platform: React Native\n", "server: false\n", "mobile-native: true\n", "file-logging: false\n"} {
		if !strings.Contains(got, line) {
			t.Errorf("output %q missing %q", got, line)
		}
	}
}

func TestPlatformCmd_Host(t *testing.T) {
	var outputBuf bytes.Buffer
	if err := newCommand(t,
		cmd.WithArgs("platform", "--host"),
		cmd.WithOutput(&outputBuf),
	).Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(outputBuf.String(), "\nhostname: ") {
		t.Errorf("expected host description, got %q", outputBuf.String())
	}
}
