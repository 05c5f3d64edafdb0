// Package platform classifies the host runtime so callers can tell which sinks
// are safe to construct. Classification is a pure function over an explicit
// Environment; the ambient environment is read by a Probe.
package platform

// Platform names reported by Name.
const (
	NameReactNative = "React Native"
	NameExpo        = "Expo"
	NameServer      = "Node.js"
	NameBrowser     = "Browser"
	NameUnknown     = "Unknown"
)

// ReactNativeProduct is the navigator product string of the mobile framework.
const ReactNativeProduct = "ReactNative"

// Navigator describes a navigator global.
type Navigator struct {
	Product string
}

// Expo describes the managed mobile tooling namespace. A nil Constants means
// the namespace exists without the member.
type Expo struct {
	Constants interface{}
}

// Process describes a process global. Versions maps runtime names ("node",
// "go") to their versions.
type Process struct {
	Versions map[string]string
	Platform string
}

// Environment is a snapshot of the globals detection looks at. Nil pointers mean
// the global is absent altogether.
type Environment struct {
	Navigator *Navigator
	Expo      *Expo
	Process   *Process
	Window    bool
	Document  bool
}

// Info is the classification of an Environment. The flags are not mutually
// exclusive; Name resolves them in priority order.
type Info struct {
	IsServer        bool
	IsMobileNative  bool
	IsBrowser       bool
	IsManagedMobile bool
}

// Detect classifies env. Every check tolerates missing globals.
func Detect(env Environment) Info {
	mobileNative := env.Navigator != nil && env.Navigator.Product == ReactNativeProduct
	managed := env.Expo != nil && env.Expo.Constants != nil
	server := hasServerRuntime(env.Process) && !env.Window && !mobileNative
	browser := env.Window && env.Document && !mobileNative && !managed

	return Info{
		IsServer:        server,
		IsMobileNative:  mobileNative,
		IsBrowser:       browser,
		IsManagedMobile: managed,
	}
}

func hasServerRuntime(p *Process) bool {
	if p == nil || p.Versions == nil {
		return false
	}
	return p.Versions["node"] != "" || p.Versions["go"] != ""
}

// Name returns a diagnostic name for info.
func Name(info Info) string {
	switch {
	case info.IsMobileNative:
		return NameReactNative
	case info.IsManagedMobile:
		return NameExpo
	case info.IsServer:
		return NameServer
	case info.IsBrowser:
		return NameBrowser
	default:
		return NameUnknown
	}
}

// IsMobile reports whether either mobile flag is set.
func (i Info) IsMobile() bool {
	return i.IsMobileNative || i.IsManagedMobile
}
