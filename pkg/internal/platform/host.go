package platform

import "errors"

// ErrHostInfoUnavailable is returned by Describe where the host cannot be inspected.
var ErrHostInfoUnavailable = errors.New("host information is unavailable on this platform")

// HostInfo is a diagnostic description of the machine running the process.
type HostInfo struct {
	Hostname        string
	OS              string
	Platform        string
	PlatformVersion string
	KernelVersion   string
	KernelArch      string
	Uptime          uint64
}
