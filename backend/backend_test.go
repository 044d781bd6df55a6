package backend

import (
	"testing"

	"github.com/gogpu/paintbind/gpucore"
)

func TestMemoryBackendName(t *testing.T) {
	b := NewMemoryBackend()
	if b.Name() != BackendMemory {
		t.Errorf("Name() = %q, want %q", b.Name(), BackendMemory)
	}
}

func TestMemoryBackendInit(t *testing.T) {
	b := NewMemoryBackend()
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if b.Adapter() == nil {
		t.Error("Adapter() returned nil after Init")
	}
	b.Close()
}

func TestMemoryAdapterLifecycle(t *testing.T) {
	a := NewMemoryAdapter()

	id, err := a.CreateBuffer(16, gpucore.BufferUsageVertex|gpucore.BufferUsageCopyDst)
	if err != nil {
		t.Fatalf("CreateBuffer() error = %v", err)
	}
	if id == gpucore.InvalidID {
		t.Fatal("CreateBuffer() returned InvalidID")
	}
	if a.BufferCount() != 1 {
		t.Errorf("BufferCount() = %d, want 1", a.BufferCount())
	}

	a.WriteBuffer(id, 4, []byte{1, 2, 3, 4})
	buf, ok := a.Buffer(id)
	if !ok {
		t.Fatal("Buffer() not found after create")
	}
	if len(buf) != 16 {
		t.Errorf("len(buf) = %d, want 16", len(buf))
	}
	if buf[4] != 1 || buf[7] != 4 {
		t.Errorf("write at offset 4 not visible: % x", buf)
	}
	if buf[0] != 0 {
		t.Errorf("bytes before offset should stay zero: % x", buf)
	}

	usage, ok := a.Usage(id)
	if !ok || usage&gpucore.BufferUsageVertex == 0 {
		t.Errorf("Usage() = %v ok=%t, want vertex flag set", usage, ok)
	}

	a.DestroyBuffer(id)
	if a.BufferCount() != 0 {
		t.Errorf("BufferCount() after destroy = %d, want 0", a.BufferCount())
	}
	if _, ok := a.Buffer(id); ok {
		t.Error("Buffer() found destroyed buffer")
	}
}

func TestMemoryAdapterInvalidSize(t *testing.T) {
	a := NewMemoryAdapter()
	if _, err := a.CreateBuffer(0, gpucore.BufferUsageVertex); err == nil {
		t.Error("CreateBuffer(0) error = nil, want error")
	}
	if _, err := a.CreateBuffer(-4, gpucore.BufferUsageVertex); err == nil {
		t.Error("CreateBuffer(-4) error = nil, want error")
	}
}

func TestMemoryAdapterWriteTruncates(t *testing.T) {
	a := NewMemoryAdapter()
	id, err := a.CreateBuffer(4, gpucore.BufferUsageVertex)
	if err != nil {
		t.Fatal(err)
	}

	// Overlong writes truncate; out-of-range offsets are dropped.
	a.WriteBuffer(id, 2, []byte{9, 9, 9, 9})
	a.WriteBuffer(id, 100, []byte{7})
	a.WriteBuffer(gpucore.BufferID(999), 0, []byte{7})

	buf, _ := a.Buffer(id)
	want := []byte{0, 0, 9, 9}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf = % x, want % x", buf, want)
			break
		}
	}
}

func TestMemoryAdapterBufferIsCopy(t *testing.T) {
	a := NewMemoryAdapter()
	id, _ := a.CreateBuffer(2, gpucore.BufferUsageVertex)
	buf, _ := a.Buffer(id)
	buf[0] = 0xff

	again, _ := a.Buffer(id)
	if again[0] != 0 {
		t.Error("mutating the returned slice leaked into adapter state")
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	// Memory backend is auto-registered via init()
	if !IsRegistered(BackendMemory) {
		t.Error("memory backend should be auto-registered")
	}

	b := Get(BackendMemory)
	if b == nil {
		t.Fatal("Get(memory) returned nil")
	}
	if b.Name() != BackendMemory {
		t.Errorf("Get(memory).Name() = %q, want %q", b.Name(), BackendMemory)
	}
}

func TestRegistryGetUnregistered(t *testing.T) {
	if b := Get("nonexistent"); b != nil {
		t.Error("Get(nonexistent) should return nil")
	}
}

func TestRegistryAvailable(t *testing.T) {
	found := false
	for _, name := range Available() {
		if name == BackendMemory {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Available() should include %q", BackendMemory)
	}
}

func TestRegistryDefault(t *testing.T) {
	b := Default()
	if b == nil {
		t.Fatal("Default() returned nil")
	}
}

func TestRegistryMustDefault(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("MustDefault() panicked: %v", r)
		}
	}()
	if b := MustDefault(); b == nil {
		t.Error("MustDefault() returned nil")
	}
}

func TestRegistryInitDefault(t *testing.T) {
	b, err := InitDefault()
	if err != nil {
		t.Fatalf("InitDefault() error = %v", err)
	}
	defer b.Close()

	adapter := b.Adapter()
	if adapter == nil {
		t.Fatal("Backend from InitDefault() has no adapter")
	}
	if _, err := adapter.CreateBuffer(8, gpucore.BufferUsageVertex); err != nil {
		t.Errorf("adapter from InitDefault() unusable: %v", err)
	}
}

func TestRegistryUnregister(t *testing.T) {
	Register("test-backend", func() UploadBackend {
		return NewMemoryBackend()
	})
	if !IsRegistered("test-backend") {
		t.Error("test-backend should be registered")
	}

	Unregister("test-backend")
	if IsRegistered("test-backend") {
		t.Error("test-backend should be unregistered")
	}
}

func BenchmarkMemoryAdapterUpload(b *testing.B) {
	a := NewMemoryAdapter()
	data := make([]byte, 4096)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id, _ := a.CreateBuffer(len(data), gpucore.BufferUsageVertex|gpucore.BufferUsageCopyDst)
		a.WriteBuffer(id, 0, data)
		a.DestroyBuffer(id)
	}
}
