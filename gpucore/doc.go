// Package gpucore provides the GPU buffer abstraction paint binders
// upload into.
//
// The package defines the [UploadAdapter] interface, which abstracts over
// different GPU backend implementations, allowing the same binder code to
// work with:
//   - gogpu/wgpu (Pure Go WebGPU via HAL)
//   - CPU-backed memory buffers (tests, headless tools)
//
// # Resource Management
//
// GPU buffers are addressed via opaque [BufferID] handles. Adapters are
// responsible for tracking the mapping between IDs and actual GPU
// resources. IDs become invalid after DestroyBuffer and must not be
// reused.
//
// Binders treat the adapter as a capability passed in for the duration of
// an upload; they retain only the resulting BufferID, never the adapter.
package gpucore
