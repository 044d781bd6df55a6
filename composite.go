package paintbind

import "github.com/gogpu/paintbind/gpucore"

// compositeBinder serves properties that depend on both zoom and feature
// attributes. Each vertex stores the value at the two zoom stops
// bracketing the zoom the tile was built for; the per-frame uniform
// blends between them, so a zoom change never re-uploads vertex data
// within the tile's lifetime.
type compositeBinder[T AttributeValue] struct {
	name     string
	function CompositeFunction[T]
	def      T

	// covering is fixed at construction from the tile's build zoom.
	covering CoveringRanges[T]

	data   []float32
	buffer gpucore.BufferID
}

// populateVertexVector evaluates the feature's value range over the
// covering stops and replicates the doubled-width encoding across every
// vertex index from the current size up to length.
func (b *compositeBinder[T]) populateVertexVector(f Feature, length int, stats *Statistics) {
	r := b.function.EvaluateRange(b.covering, f, b.def)
	stats.observe(b.name, any(r.Min))
	stats.observe(b.name, any(r.Max))

	lanes := zoomInterpolatedLanes(attributeLanes(r.Min), attributeLanes(r.Max))
	for i := len(b.data) / len(lanes); i < length; i++ {
		b.data = append(b.data, lanes...)
	}
}

func (b *compositeBinder[T]) upload(adapter gpucore.UploadAdapter) error {
	id, err := uploadVertexData(adapter, b.data)
	if err != nil {
		return err
	}
	b.buffer = id
	return nil
}

// attributeBinding applies the same live-constant override rule as the
// source strategy; otherwise both stop halves are read from storage.
func (b *compositeBinder[T]) attributeBinding(live AnyPropertyValue) AttributeBinding {
	if live != nil {
		if lanes, ok := live.constantLanes(); ok {
			return constantBinding(lanes)
		}
	}
	at := attributeTypeOf[T]()
	return AttributeBinding{
		Buffer: b.buffer,
		Offset: 0,
		Stride: uint64(at.Lanes()) * 2 * 4,
		Format: at.ZoomInterpolatedFormat(),
	}
}

// interpolationFactor blends from the bracket fixed at construction to
// the current display zoom, which keeps moving while the tile stays
// visible. This uniform is the only per-frame cost of a composite
// property.
func (b *compositeBinder[T]) interpolationFactor(zoom float32) float32 {
	return InterpolationFactor(1, b.covering.Zoom, zoom)
}

func (b *compositeBinder[T]) attributeType() AttributeType { return attributeTypeOf[T]() }

func (b *compositeBinder[T]) vertexCount() (int, bool) {
	return len(b.data) / (attributeTypeOf[T]().Lanes() * 2), true
}

func (b *compositeBinder[T]) destroy(adapter gpucore.UploadAdapter) {
	if b.buffer != gpucore.InvalidID {
		adapter.DestroyBuffer(b.buffer)
		b.buffer = gpucore.InvalidID
	}
}
