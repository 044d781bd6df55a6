package paintbind

import "github.com/gogpu/paintbind/gpucore"

// sourceBinder serves properties evaluated per feature from its
// attributes. It stores one base-layout value per vertex; zoom never
// changes the stored data, so the interpolation factor stays 0 and the
// shader reads the same value for both stop lanes.
type sourceBinder[T AttributeValue] struct {
	name     string
	function SourceFunction[T]
	def      T

	data   []float32
	buffer gpucore.BufferID
}

// populateVertexVector evaluates the feature once and replicates the
// encoded value across every vertex index from the current size up to
// length. Re-invoking with a smaller or equal length is a no-op.
func (b *sourceBinder[T]) populateVertexVector(f Feature, length int, stats *Statistics) {
	evaluated := b.function.evaluate(f, b.def)
	stats.observe(b.name, any(evaluated))

	lanes := attributeLanes(evaluated)
	for i := len(b.data) / len(lanes); i < length; i++ {
		b.data = append(b.data, lanes...)
	}
}

func (b *sourceBinder[T]) upload(adapter gpucore.UploadAdapter) error {
	id, err := uploadVertexData(adapter, b.data)
	if err != nil {
		return err
	}
	b.buffer = id
	return nil
}

// attributeBinding short-circuits to a broadcast when the live value for
// this draw is reported constant; the uploaded buffer stays resident but
// unread. This late-override path is decided by the cascade, not
// inferred from the original function shape.
func (b *sourceBinder[T]) attributeBinding(live AnyPropertyValue) AttributeBinding {
	if live != nil {
		if lanes, ok := live.constantLanes(); ok {
			return constantBinding(lanes)
		}
	}
	at := attributeTypeOf[T]()
	return AttributeBinding{
		Buffer: b.buffer,
		Offset: 0,
		Stride: uint64(at.Lanes()) * 4,
		Format: at.Format(),
	}
}

func (b *sourceBinder[T]) interpolationFactor(float32) float32 { return 0 }

func (b *sourceBinder[T]) attributeType() AttributeType { return attributeTypeOf[T]() }

func (b *sourceBinder[T]) vertexCount() (int, bool) {
	return len(b.data) / attributeTypeOf[T]().Lanes(), true
}

func (b *sourceBinder[T]) destroy(adapter gpucore.UploadAdapter) {
	if b.buffer != gpucore.InvalidID {
		adapter.DestroyBuffer(b.buffer)
		b.buffer = gpucore.InvalidID
	}
}
