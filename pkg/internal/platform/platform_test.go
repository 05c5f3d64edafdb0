package platform_test

import (
	"testing"

	"github.com/joeydtaylor/logkit/pkg/internal/platform"
)

func TestDetect_EmptyEnvironment(t *testing.T) {
	info := platform.Detect(platform.Environment{})
	if info != (platform.Info{}) {
		t.Fatalf("expected all flags false, got %+v", info)
	}
	if got := platform.Name(info); got != platform.NameUnknown {
		t.Fatalf("expected %q, got %q", platform.NameUnknown, got)
	}
}

func TestDetect_PartialGlobalsNeverPanic(t *testing.T) {
	envs := []platform.Environment{
		{Navigator: &platform.Navigator{}},
		{Expo: &platform.Expo{}},
		{Process: &platform.Process{}},
		{Process: &platform.Process{Versions: map[string]string{}}},
		{Window: true},
		{Document: true},
	}
	for _, env := range envs {
		info := platform.Detect(env)
		if info != (platform.Info{}) {
			t.Fatalf("expected no classification for %+v, got %+v", env, info)
		}
	}
}

func TestDetect_Server(t *testing.T) {
	for _, runtime := range []string{"node", "go"} {
		env := platform.Environment{Process: &platform.Process{Versions: map[string]string{runtime: "1.0"}}}
		info := platform.Detect(env)
		if !info.IsServer || info.IsBrowser || info.IsMobile() {
			t.Fatalf("expected server only for %s, got %+v", runtime, info)
		}
		if got := platform.Name(info); got != platform.NameServer {
			t.Fatalf("expected %q, got %q", platform.NameServer, got)
		}
	}
}

func TestDetect_ServerRequiresNoWindow(t *testing.T) {
	env := platform.Environment{
		Process: &platform.Process{Versions: map[string]string{"node": "20.0.0"}},
		Window:  true,
	}
	if platform.Detect(env).IsServer {
		t.Fatalf("a window global must rule out a server runtime")
	}
}

func TestDetect_ReactNative(t *testing.T) {
	env := platform.Environment{
		Navigator: &platform.Navigator{Product: platform.ReactNativeProduct},
		Process:   &platform.Process{Versions: map[string]string{"node": "18"}},
		Window:    true,
		Document:  true,
	}
	info := platform.Detect(env)
	if !info.IsMobileNative {
		t.Fatalf("expected mobile-native, got %+v", info)
	}
	if info.IsServer || info.IsBrowser {
		t.Fatalf("mobile-native must exclude server and browser, got %+v", info)
	}
	if got := platform.Name(info); got != platform.NameReactNative {
		t.Fatalf("expected %q, got %q", platform.NameReactNative, got)
	}
}

func TestDetect_Expo(t *testing.T) {
	env := platform.Environment{
		Expo:     &platform.Expo{Constants: map[string]interface{}{"appOwnership": "expo"}},
		Window:   true,
		Document: true,
	}
	info := platform.Detect(env)
	if !info.IsManagedMobile || info.IsBrowser {
		t.Fatalf("expected managed mobile without browser, got %+v", info)
	}
	if got := platform.Name(info); got != platform.NameExpo {
		t.Fatalf("expected %q, got %q", platform.NameExpo, got)
	}
}

func TestDetect_Browser(t *testing.T) {
	env := platform.Environment{
		Navigator: &platform.Navigator{Product: "Gecko"},
		Window:    true,
		Document:  true,
	}
	info := platform.Detect(env)
	if !info.IsBrowser || info.IsServer {
		t.Fatalf("expected browser, got %+v", info)
	}
	if got := platform.Name(info); got != platform.NameBrowser {
		t.Fatalf("expected %q, got %q", platform.NameBrowser, got)
	}
}

func TestDetector_RecomputesEachCall(t *testing.T) {
	calls := 0
	envs := []platform.Environment{
		{},
		{Process: &platform.Process{Versions: map[string]string{"go": "go1.24"}}},
	}
	d := platform.NewDetector(platform.WithProbe(func() platform.Environment {
		env := envs[calls%len(envs)]
		calls++
		return env
	}))

	if d.IsFileLoggingAvailable() {
		t.Fatalf("first probe should not be a server")
	}
	if !d.IsFileLoggingAvailable() {
		t.Fatalf("second probe should be a server")
	}
	if calls != 2 {
		t.Fatalf("expected probe to run twice, ran %d times", calls)
	}
}

func TestDetector_WithEnvironment(t *testing.T) {
	d := platform.NewDetector(platform.WithEnvironment(platform.Environment{}))
	if got := d.PlatformName(); got != platform.NameUnknown {
		t.Fatalf("expected %q, got %q", platform.NameUnknown, got)
	}
}

func TestAmbient_NativeProcessIsServer(t *testing.T) {
	if !platform.IsFileLoggingAvailable() {
		t.Fatalf("expected the test binary to classify as a server runtime")
	}
	if got := platform.PlatformName(); got != platform.NameServer {
		t.Fatalf("expected %q, got %q", platform.NameServer, got)
	}
	if !platform.DetectCurrent().IsServer {
		t.Fatalf("expected DetectCurrent to report a server")
	}
}
