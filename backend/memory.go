package backend

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/paintbind/gpucore"
)

// MemoryBackend is a CPU-backed upload backend. Buffers live in plain
// byte slices, which makes it the fallback for headless environments and
// the workhorse for tests that want to inspect uploaded vertex data.
type MemoryBackend struct {
	initialized bool
	adapter     *MemoryAdapter
}

// init registers the memory backend on package import.
func init() {
	Register(BackendMemory, func() UploadBackend {
		return NewMemoryBackend()
	})
}

// NewMemoryBackend creates a new CPU-backed upload backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// Name returns the backend identifier.
func (b *MemoryBackend) Name() string {
	return BackendMemory
}

// Init initializes the backend.
func (b *MemoryBackend) Init() error {
	b.adapter = NewMemoryAdapter()
	b.initialized = true
	return nil
}

// Close releases all backend resources.
func (b *MemoryBackend) Close() {
	b.adapter = nil
	b.initialized = false
}

// Adapter returns the upload adapter. Valid only between Init and Close.
func (b *MemoryBackend) Adapter() gpucore.UploadAdapter {
	return b.adapter
}

// MemoryAdapter implements gpucore.UploadAdapter over in-process byte
// slices.
//
// Thread Safety: MemoryAdapter is safe for concurrent use from multiple
// goroutines. All resource operations are protected by a mutex.
type MemoryAdapter struct {
	mu      sync.RWMutex
	buffers map[gpucore.BufferID][]byte
	usages  map[gpucore.BufferID]gpucore.BufferUsage

	nextID atomic.Uint64
}

// NewMemoryAdapter creates an adapter with no buffers.
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{
		buffers: make(map[gpucore.BufferID][]byte),
		usages:  make(map[gpucore.BufferID]gpucore.BufferUsage),
	}
}

// CreateBuffer creates a zeroed buffer of the given size.
func (a *MemoryAdapter) CreateBuffer(size int, usage gpucore.BufferUsage) (gpucore.BufferID, error) {
	if size <= 0 {
		return gpucore.InvalidID, fmt.Errorf("buffer size must be positive")
	}

	id := gpucore.BufferID(a.nextID.Add(1))

	a.mu.Lock()
	a.buffers[id] = make([]byte, size)
	a.usages[id] = usage
	a.mu.Unlock()

	return id, nil
}

// WriteBuffer copies data into the buffer at offset. Writes past the end
// of the buffer are truncated, matching the permissive queue semantics
// of GPU backends.
func (a *MemoryAdapter) WriteBuffer(id gpucore.BufferID, offset uint64, data []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()

	buf, ok := a.buffers[id]
	if !ok || offset >= uint64(len(buf)) {
		return
	}
	copy(buf[offset:], data)
}

// DestroyBuffer releases a buffer.
func (a *MemoryAdapter) DestroyBuffer(id gpucore.BufferID) {
	a.mu.Lock()
	delete(a.buffers, id)
	delete(a.usages, id)
	a.mu.Unlock()
}

// Buffer returns a copy of the buffer contents, for inspection in tests
// and tooling.
func (a *MemoryAdapter) Buffer(id gpucore.BufferID) ([]byte, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	buf, ok := a.buffers[id]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(buf))
	copy(out, buf)
	return out, true
}

// BufferCount returns the number of live buffers.
func (a *MemoryAdapter) BufferCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.buffers)
}

// Usage returns the usage flags a buffer was created with.
func (a *MemoryAdapter) Usage(id gpucore.BufferID) (gpucore.BufferUsage, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	u, ok := a.usages[id]
	return u, ok
}
