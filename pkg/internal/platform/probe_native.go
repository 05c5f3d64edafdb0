//go:build !js

package platform

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/host"
)

// Ambient describes the running native process. A native Go binary has a
// process and no browser globals, so it classifies as a server runtime.
func Ambient() Environment {
	return Environment{
		Process: &Process{
			Versions: map[string]string{"go": runtime.Version()},
			Platform: runtime.GOOS,
		},
	}
}

// Describe reports details about the host for diagnostics.
func Describe(ctx context.Context) (HostInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return HostInfo{}, err
	}
	return HostInfo{
		Hostname:        info.Hostname,
		OS:              info.OS,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelVersion:   info.KernelVersion,
		KernelArch:      info.KernelArch,
		Uptime:          info.Uptime,
	}, nil
}
