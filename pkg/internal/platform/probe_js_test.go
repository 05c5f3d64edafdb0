//go:build js

package platform_test

import (
	"syscall/js"
	"testing"

	"github.com/joeydtaylor/logkit/pkg/internal/platform"
)

func TestAmbient_ExpoConstantsFalsy(t *testing.T) {
	global := js.Global()
	prev := global.Get("expo")
	t.Cleanup(func() { global.Set("expo", prev) })

	for _, constants := range []interface{}{false, 0, ""} {
		expo := js.Global().Get("Object").New()
		expo.Set("Constants", constants)
		global.Set("expo", expo)

		env := platform.Ambient()
		if env.Expo == nil {
			t.Fatalf("expected expo global to be seen")
		}
		if env.Expo.Constants != nil {
			t.Fatalf("falsy Constants %v must not be recorded", constants)
		}
		if platform.Detect(env).IsManagedMobile {
			t.Fatalf("falsy Constants %v must not classify as managed mobile", constants)
		}
	}

	expo := js.Global().Get("Object").New()
	expo.Set("Constants", js.Global().Get("Object").New())
	global.Set("expo", expo)
	if !platform.Detect(platform.Ambient()).IsManagedMobile {
		t.Fatalf("object Constants must classify as managed mobile")
	}
}
