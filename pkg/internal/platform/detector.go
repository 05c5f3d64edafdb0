package platform

// Probe reads the current Environment.
type Probe func() Environment

// Detector classifies the environment returned by its probe. Results are never
// cached.
type Detector struct {
	probe Probe
}

// DetectorOption configures a Detector.
type DetectorOption func(*Detector)

// WithProbe replaces the ambient probe.
func WithProbe(probe Probe) DetectorOption {
	return func(d *Detector) {
		if probe != nil {
			d.probe = probe
		}
	}
}

// WithEnvironment makes the detector report a fixed environment.
func WithEnvironment(env Environment) DetectorOption {
	return WithProbe(func() Environment { return env })
}

// NewDetector creates a Detector backed by the Ambient probe unless configured otherwise.
func NewDetector(options ...DetectorOption) *Detector {
	d := &Detector{probe: Ambient}
	for _, option := range options {
		option(d)
	}
	return d
}

// Detect classifies the current environment.
func (d *Detector) Detect() Info {
	if d == nil || d.probe == nil {
		return Detect(Ambient())
	}
	return Detect(d.probe())
}

// IsFileLoggingAvailable reports whether the runtime is a server runtime.
func (d *Detector) IsFileLoggingAvailable() bool {
	return d.Detect().IsServer
}

// PlatformName returns the diagnostic name of the current runtime.
func (d *Detector) PlatformName() string {
	return Name(d.Detect())
}

var defaultDetector = NewDetector()

// Default returns the detector backed by the Ambient probe.
func Default() *Detector {
	return defaultDetector
}

// DetectCurrent classifies the ambient environment.
func DetectCurrent() Info {
	return defaultDetector.Detect()
}

// IsFileLoggingAvailable reports whether the ambient runtime can host a file sink.
func IsFileLoggingAvailable() bool {
	return defaultDetector.IsFileLoggingAvailable()
}

// PlatformName returns the diagnostic name of the ambient runtime.
func PlatformName() string {
	return defaultDetector.PlatformName()
}
