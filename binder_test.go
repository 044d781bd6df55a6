package paintbind

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/gogpu/paintbind/gpucore"
)

// recordingAdapter is a test double for gpucore.UploadAdapter that keeps
// uploaded bytes and counts calls.
type recordingAdapter struct {
	buffers    map[gpucore.BufferID][]byte
	usages     map[gpucore.BufferID]gpucore.BufferUsage
	nextID     gpucore.BufferID
	creates    int
	writes     int
	destroys   int
	failCreate error
}

func newRecordingAdapter() *recordingAdapter {
	return &recordingAdapter{
		buffers: make(map[gpucore.BufferID][]byte),
		usages:  make(map[gpucore.BufferID]gpucore.BufferUsage),
	}
}

func (a *recordingAdapter) CreateBuffer(size int, usage gpucore.BufferUsage) (gpucore.BufferID, error) {
	a.creates++
	if a.failCreate != nil {
		return gpucore.InvalidID, a.failCreate
	}
	a.nextID++
	a.buffers[a.nextID] = make([]byte, size)
	a.usages[a.nextID] = usage
	return a.nextID, nil
}

func (a *recordingAdapter) WriteBuffer(id gpucore.BufferID, offset uint64, data []byte) {
	a.writes++
	if buf, ok := a.buffers[id]; ok {
		copy(buf[offset:], data)
	}
}

func (a *recordingAdapter) DestroyBuffer(id gpucore.BufferID) {
	a.destroys++
	delete(a.buffers, id)
	delete(a.usages, id)
}

// lanesOf decodes an uploaded buffer back into float32 lanes.
func (a *recordingAdapter) lanesOf(id gpucore.BufferID) []float32 {
	buf, ok := a.buffers[id]
	if !ok {
		return nil
	}
	out := make([]float32, len(buf)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return out
}

var errCreateFailed = errors.New("create failed")

// Compile-time checks: all three strategies satisfy the binder contract
// and PropertyValue satisfies the erased live-value interface.
var (
	_ binder           = (*constantBinder[float64])(nil)
	_ binder           = (*sourceBinder[RGBA])(nil)
	_ binder           = (*compositeBinder[float64])(nil)
	_ AnyPropertyValue = PropertyValue[float64]{}
	_ AnyProperty      = Property[RGBA]{}
)
