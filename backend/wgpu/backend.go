//go:build !nogpu

// Package wgpu provides a Pure Go WebGPU upload backend using gogpu/wgpu.
//
// Importing the package registers the "wgpu" backend:
//
//	import _ "github.com/gogpu/paintbind/backend/wgpu"
//
// The backend either shares a GPU device supplied by the host application
// (see [Backend.SetDeviceProvider]) or opens a standalone Vulkan device on
// Init.
package wgpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/paintbind/backend"
	"github.com/gogpu/paintbind/gpucore"
)

// Backend is the wgpu-backed upload backend.
//
// Device initialization is deferred to Init or to SetDeviceProvider, so
// importing the package never creates a GPU device that could interfere
// with one the host application provides later.
type Backend struct {
	mu sync.Mutex

	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	adapter  *Adapter

	// externalDevice marks a device owned by the host; Close must not
	// destroy it.
	externalDevice bool
	initialized    bool
}

func init() {
	backend.Register(backend.BackendWGPU, func() backend.UploadBackend {
		return &Backend{}
	})
}

// New creates an uninitialized wgpu backend.
func New() *Backend {
	return &Backend{}
}

// Name returns the backend identifier.
func (b *Backend) Name() string { return backend.BackendWGPU }

// SetDeviceProvider switches the backend to a shared GPU device from an
// external provider (e.g., gogpu). The provider must expose HAL types
// via HalDevice() any and HalQueue() any.
func (b *Backend) SetDeviceProvider(provider any) error {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return fmt.Errorf("wgpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return fmt.Errorf("wgpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return fmt.Errorf("wgpu: provider HalQueue is not hal.Queue")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.device = device
	b.queue = queue
	b.externalDevice = true
	b.adapter = NewAdapter(device, queue)
	b.initialized = true
	return nil
}

// Init opens a standalone Vulkan device unless a host device was already
// provided via SetDeviceProvider.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	be, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return fmt.Errorf("wgpu: vulkan backend not available")
	}
	instance, err := be.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("wgpu: create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return fmt.Errorf("wgpu: no GPU adapters found")
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return fmt.Errorf("wgpu: open device: %w", err)
	}

	b.instance = instance
	b.device = openDev.Device
	b.queue = openDev.Queue
	b.adapter = NewAdapter(b.device, b.queue)
	b.initialized = true

	paintlog().Info("wgpu: GPU initialized (standalone)", "adapter", selected.Info.Name)
	return nil
}

// Close releases the adapter and, for standalone devices, the device and
// instance. A device owned by the host application is left untouched.
func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.adapter != nil {
		b.adapter.DestroyAll()
		b.adapter = nil
	}

	if !b.externalDevice {
		if b.device != nil {
			b.device.Destroy()
			b.device = nil
		}
		if b.instance != nil {
			b.instance.Destroy()
			b.instance = nil
		}
	}
	b.initialized = false
}

// Adapter returns the upload adapter. Valid only between Init (or
// SetDeviceProvider) and Close.
func (b *Backend) Adapter() gpucore.UploadAdapter {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.adapter == nil {
		return nil
	}
	return b.adapter
}
