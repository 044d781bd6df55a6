package paintbind

import (
	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/paintbind/gpucore"
)

// AttributeBinding tells the GPU layer whether a paint attribute reads
// from a vertex buffer or is a broadcast constant.
//
// Constant bindings carry the doubled (zoom-interpolated) lane layout
// padded into a vec4, the shape constant vertex attributes take at the
// API level. Buffer bindings describe where and how to read the uploaded
// vertex data.
type AttributeBinding struct {
	// Constant is the broadcast value, valid when Buffer is InvalidID.
	// Lanes beyond Lanes are zero.
	Constant f32.Vec4

	// Lanes is the number of meaningful lanes in Constant.
	Lanes int

	// Buffer is the uploaded vertex buffer, or InvalidID for a constant
	// binding.
	Buffer gpucore.BufferID

	// Offset is the byte offset of the first vertex in the buffer.
	Offset uint64

	// Stride is the byte stride between consecutive vertices.
	Stride uint64

	// Format is the per-vertex attribute format read from the buffer.
	Format gputypes.VertexFormat
}

// IsConstant reports whether the binding broadcasts a constant rather
// than reading from a buffer.
func (b AttributeBinding) IsConstant() bool {
	return b.Buffer == gpucore.InvalidID
}

// constantBinding broadcasts the same base-layout lanes into both the
// lower- and upper-stop halves of the doubled layout, so the shader's
// interpolation path degenerates harmlessly.
func constantBinding(lanes []float32) AttributeBinding {
	doubled := zoomInterpolatedLanes(lanes, lanes)
	var v f32.Vec4
	copy(v[:], doubled)
	return AttributeBinding{
		Constant: v,
		Lanes:    len(doubled),
	}
}

// NamedBinding pairs a property name with its current attribute binding.
type NamedBinding struct {
	Property string
	Binding  AttributeBinding
}

// UniformValue is one per-frame scalar uniform: the zoom interpolation
// factor of a property, named "<property>_t" after the convention the
// shader contract uses.
type UniformValue struct {
	Name  string
	Value float32
}
