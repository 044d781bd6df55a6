package backend

import (
	"sync"
)

// BackendFactory creates a new backend instance.
type BackendFactory func() UploadBackend

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
	// Priority order for backend selection (first available wins).
	// WGPU > Memory (real GPU memory first, CPU slices as fallback).
	backendPriority = []string{BackendWGPU, BackendMemory}
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it will be replaced.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns a list of registered backend names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get returns a backend instance by name.
// Returns nil if the backend is not registered.
func Get(name string) UploadBackend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := backends[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available backend based on priority.
// Priority order: wgpu > memory.
// Returns nil if no backends are registered.
func Default() UploadBackend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range backendPriority {
		if factory, ok := backends[name]; ok {
			b := factory()
			if b != nil {
				return b
			}
		}
	}
	return nil
}

// MustDefault returns the best available backend or panics if none is
// registered. The memory backend registers on package import, so this
// only panics after an explicit Unregister.
func MustDefault() UploadBackend {
	b := Default()
	if b == nil {
		panic("backend: no upload backend registered")
	}
	return b
}

// InitDefault returns the best available backend, already initialized.
// Backends whose Init fails are skipped in priority order, so a missing
// GPU falls through to the memory backend.
func InitDefault() (UploadBackend, error) {
	registryMu.RLock()
	factories := make([]BackendFactory, 0, len(backendPriority))
	for _, name := range backendPriority {
		if factory, ok := backends[name]; ok {
			factories = append(factories, factory)
		}
	}
	registryMu.RUnlock()

	var firstErr error
	for _, factory := range factories {
		b := factory()
		if b == nil {
			continue
		}
		if err := b.Init(); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		return b, nil
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return nil, ErrBackendNotAvailable
}
