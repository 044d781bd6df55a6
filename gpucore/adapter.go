package gpucore

// UploadAdapter abstracts over GPU backend implementations for the one
// operation paint binders need: allocating a vertex buffer and filling it
// with encoded attribute data.
//
// Implementations must be safe for concurrent use; binder upload itself
// runs on the single thread owning the GPU context, but independent tile
// workers may share one adapter.
//
// Resource lifecycle:
//   - Buffers are created via CreateBuffer
//   - Buffers must be explicitly destroyed via DestroyBuffer
//   - IDs become invalid after destruction and must not be reused
type UploadAdapter interface {
	// CreateBuffer creates a GPU buffer.
	//
	// Parameters:
	//   - size: buffer size in bytes
	//   - usage: buffer usage flags (bitmask of BufferUsage*)
	//
	// Returns the buffer ID or an error if allocation fails.
	CreateBuffer(size int, usage BufferUsage) (BufferID, error)

	// WriteBuffer writes data to a buffer.
	// The data is copied to the GPU immediately or staged for later upload.
	WriteBuffer(id BufferID, offset uint64, data []byte)

	// DestroyBuffer releases a GPU buffer.
	DestroyBuffer(id BufferID)
}
