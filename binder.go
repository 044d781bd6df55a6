package paintbind

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/paintbind/gpucore"
)

// binder is the per-property binding strategy. One implementation exists
// per PropertyValue tag; the strategy is decided once at construction so
// no per-vertex dispatch happens in the population loop.
type binder interface {
	// populateVertexVector grows the vertex data for one feature up to
	// length vertices, recording evaluated values in stats. Indices
	// already covered are left untouched.
	populateVertexVector(f Feature, length int, stats *Statistics)

	// upload hands the accumulated vertex data to the GPU layer. Called
	// once, after population completes.
	upload(adapter gpucore.UploadAdapter) error

	// attributeBinding answers the binding for the live evaluated value
	// of this draw, which may differ from the value the binder was built
	// from.
	attributeBinding(live AnyPropertyValue) AttributeBinding

	// interpolationFactor is the per-frame blend uniform for the given
	// display zoom.
	interpolationFactor(zoom float32) float32

	// attributeType reports the lane layout of the bound property.
	attributeType() AttributeType

	// vertexCount returns the number of populated vertices and whether
	// this strategy owns vertex data at all.
	vertexCount() (n int, owns bool)

	// destroy releases the owned vertex buffer, if any.
	destroy(adapter gpucore.UploadAdapter)
}

// AnyProperty is a declared paint property with its possibly-evaluated
// value, erased over the value type. Implemented by [Property].
type AnyProperty interface {
	// PropertyName returns the property identity used for bindings,
	// uniforms and statistics.
	PropertyName() string

	// AttributeType reports the lane layout of the property's values.
	AttributeType() AttributeType

	// newBinder dispatches on the PropertyValue tag. The zoom is consumed
	// by composite binders only.
	newBinder(zoom float32) (binder, error)
}

// Property declares one paint property for a style layer: its identity,
// the default used when per-feature evaluation fails, and the
// possibly-evaluated value from the cascade.
type Property[T AttributeValue] struct {
	Name    string
	Default T
	Value   PropertyValue[T]
}

// PropertyName implements AnyProperty.
func (p Property[T]) PropertyName() string { return p.Name }

// AttributeType implements AnyProperty.
func (p Property[T]) AttributeType() AttributeType { return attributeTypeOf[T]() }

// newBinder implements AnyProperty. Dispatch is exhaustive over the
// three tags, so construction fails only when a composite function
// cannot bracket the zoom.
func (p Property[T]) newBinder(zoom float32) (binder, error) {
	switch p.Value.kind {
	case KindSource:
		return &sourceBinder[T]{
			name:     p.Name,
			function: p.Value.source,
			def:      p.Default,
		}, nil
	case KindComposite:
		cov, err := p.Value.composite.CoveringRanges(zoom)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", p.Name, err)
		}
		return &compositeBinder[T]{
			name:     p.Name,
			function: p.Value.composite,
			def:      p.Default,
			covering: cov,
		}, nil
	default:
		return &constantBinder[T]{
			lanes: attributeLanes(p.Value.constant),
		}, nil
	}
}

// uploadVertexData allocates a vertex buffer sized for the packed lane
// data and writes it in one shot. Empty data allocates nothing; the
// resulting InvalidID binding broadcasts zeros, which only ever reaches
// a draw of zero vertices.
func uploadVertexData(adapter gpucore.UploadAdapter, data []float32) (gpucore.BufferID, error) {
	if len(data) == 0 {
		return gpucore.InvalidID, nil
	}
	size := len(data) * 4
	id, err := adapter.CreateBuffer(size, gpucore.BufferUsageVertex|gpucore.BufferUsageCopyDst)
	if err != nil {
		return gpucore.InvalidID, fmt.Errorf("paintbind: create vertex buffer: %w", err)
	}
	adapter.WriteBuffer(id, 0, laneBytes(data))
	Logger().Debug("paintbind: vertex buffer uploaded", "bytes", size)
	return id, nil
}

// laneBytes packs float32 lanes into the little-endian byte layout GPU
// buffers expect.
func laneBytes(data []float32) []byte {
	out := make([]byte, len(data)*4)
	for i, v := range data {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}
