// Package backend selects the GPU upload backend paint binders hand
// their vertex data to.
//
// Backends register themselves via [Register], typically from init()
// functions, and are selected via [Get] or [Default]. The memory backend
// is always available; the wgpu backend registers when its package is
// imported:
//
//	import _ "github.com/gogpu/paintbind/backend/wgpu"
package backend

import (
	"errors"

	"github.com/gogpu/paintbind/gpucore"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// Backend name constants.
const (
	// BackendMemory is the name of the CPU-backed buffer backend.
	BackendMemory = "memory"
	// BackendWGPU is the name of the Pure Go GPU backend (gogpu/wgpu).
	BackendWGPU = "wgpu"
)

// UploadBackend is the interface for buffer upload backends. It
// abstracts where encoded paint vertex data ends up, allowing the
// library to target real GPU memory or plain CPU slices with the same
// binder code.
type UploadBackend interface {
	// Name returns the backend identifier (e.g., "memory", "wgpu").
	Name() string

	// Init initializes the backend.
	// This should be called before any upload operations.
	Init() error

	// Close releases all backend resources.
	// The backend should not be used after Close is called.
	Close()

	// Adapter returns the upload adapter binders write through.
	// Valid only between Init and Close.
	Adapter() gpucore.UploadAdapter
}
