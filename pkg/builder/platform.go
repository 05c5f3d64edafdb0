package builder

import (
	"context"

	"github.com/joeydtaylor/logkit/pkg/internal/platform"
)

type Detector = platform.Detector

type DetectorOption = platform.DetectorOption

type PlatformInfo = platform.Info

type Environment = platform.Environment

type Navigator = platform.Navigator

type Expo = platform.Expo

type Process = platform.Process

type HostInfo = platform.HostInfo

// Detect classifies the current runtime. The result is recomputed on every call.
func Detect() PlatformInfo {
	return platform.DetectCurrent()
}

// IsFileLoggingAvailable reports whether NewFileSink can succeed here.
func IsFileLoggingAvailable() bool {
	return platform.IsFileLoggingAvailable()
}

// PlatformName returns "React Native", "Expo", "Node.js", "Browser" or "Unknown".
func PlatformName() string {
	return platform.PlatformName()
}

// DescribeHost reports host details for diagnostics.
func DescribeHost(ctx context.Context) (HostInfo, error) {
	return platform.Describe(ctx)
}

// NewDetector creates a detector; without options it reads the ambient runtime.
func NewDetector(options ...DetectorOption) *Detector {
	return platform.NewDetector(options...)
}

// DetectorWithEnvironment makes a detector report a fixed environment.
func DetectorWithEnvironment(env Environment) DetectorOption {
	return platform.WithEnvironment(env)
}
