package paintbind

import "github.com/gogpu/paintbind/gpucore"

// constantBinder serves properties whose value does not depend on
// feature attributes. It owns no vertex data; the value is broadcast as
// a constant attribute binding at draw time.
type constantBinder[T AttributeValue] struct {
	// lanes is the encoded construction-time constant.
	lanes []float32
}

func (b *constantBinder[T]) populateVertexVector(Feature, int, *Statistics) {}

func (b *constantBinder[T]) upload(gpucore.UploadAdapter) error { return nil }

// attributeBinding broadcasts the live constant when the cascade reports
// one for this draw, otherwise the constant fixed at construction.
func (b *constantBinder[T]) attributeBinding(live AnyPropertyValue) AttributeBinding {
	lanes := b.lanes
	if live != nil {
		if l, ok := live.constantLanes(); ok {
			lanes = l
		}
	}
	return constantBinding(lanes)
}

func (b *constantBinder[T]) interpolationFactor(float32) float32 { return 0 }

func (b *constantBinder[T]) attributeType() AttributeType { return attributeTypeOf[T]() }

func (b *constantBinder[T]) vertexCount() (int, bool) { return 0, false }

func (b *constantBinder[T]) destroy(gpucore.UploadAdapter) {}
