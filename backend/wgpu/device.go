//go:build !nogpu

package wgpu

import (
	"github.com/gogpu/gpucontext"
)

// DeviceHandle provides GPU device access from the host application.
//
// This is the integration point between paintbind and GPU frameworks
// like gogpu: the host implements DeviceHandle and passes it to
// [Backend.SetDeviceProvider], so binder uploads share the host's GPU
// device instead of opening a standalone one. Providers that also
// implement gpucontext.HalProvider expose the HAL device and queue the
// backend needs.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// paintbind-specific name for the interface while maintaining full
// compatibility with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle with no device. Passing it to
// SetDeviceProvider fails, which forces the standalone Init path; it
// exists for tests and for hosts that want explicit "no shared device"
// wiring.
type NullDeviceHandle struct{}

// Device returns nil.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }
