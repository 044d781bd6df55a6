package paintbind

import (
	"fmt"

	"github.com/gogpu/paintbind/gpucore"
)

// Binders aggregates one binder per declared paint property for a style
// layer, plus the statistics shared across them. Property membership is
// fixed at construction.
//
// Lifecycle: construct once per tile layer at the zoom the tile is
// parsed for, populate per feature on the tile worker, upload once on
// the GPU thread, then query bindings and uniforms read-only every
// frame. Destroy releases the vertex buffers when the layer's bucket is
// discarded.
type Binders struct {
	names   []string
	binders map[string]binder
	stats   Statistics

	// length is the declared vertex count, driven up by population.
	length   int
	uploaded bool
}

// NewBinders dispatches every declared property to the binder strategy
// matching its current value tag. The zoom is threaded into composite
// binders only. Construction fails only for duplicate property names and
// for composite functions that cannot bracket the zoom.
func NewBinders(zoom float32, props ...AnyProperty) (*Binders, error) {
	b := &Binders{
		names:   make([]string, 0, len(props)),
		binders: make(map[string]binder, len(props)),
		stats:   newStatistics(),
	}
	for _, p := range props {
		name := p.PropertyName()
		if _, dup := b.binders[name]; dup {
			return nil, fmt.Errorf("paintbind: duplicate property %q", name)
		}
		bd, err := p.newBinder(zoom)
		if err != nil {
			return nil, err
		}
		b.names = append(b.names, name)
		b.binders[name] = bd
	}
	return b, nil
}

// Properties returns the declared property names in declaration order.
func (b *Binders) Properties() []string {
	out := make([]string, len(b.names))
	copy(out, b.names)
	return out
}

// PopulateVertexVectors grows every binder's vertex data for one feature
// up to length vertices. Calls must be sequential and length
// monotonically non-decreasing across features; indices already covered
// are untouched.
func (b *Binders) PopulateVertexVectors(f Feature, length int) {
	if b.uploaded {
		panic("paintbind: PopulateVertexVectors called after Upload")
	}
	for _, name := range b.names {
		b.binders[name].populateVertexVector(f, length, &b.stats)
	}
	if length > b.length {
		b.length = length
	}
}

// Upload hands every binder's vertex data to the GPU layer. It must run
// exactly once, on the thread owning the GPU context, after population
// completes. A binder whose population did not cover the declared vertex
// count indicates an external sequencing bug and panics.
func (b *Binders) Upload(adapter gpucore.UploadAdapter) error {
	if b.uploaded {
		panic("paintbind: Upload called twice")
	}
	for _, name := range b.names {
		if n, owns := b.binders[name].vertexCount(); owns && n != b.length {
			panic(fmt.Sprintf("paintbind: property %q populated %d of %d vertices at upload",
				name, n, b.length))
		}
	}
	for _, name := range b.names {
		if err := b.binders[name].upload(adapter); err != nil {
			return fmt.Errorf("property %q: %w", name, err)
		}
	}
	b.uploaded = true
	return nil
}

// AttributeBindings returns one binding per property, in declaration
// order, computed from the live evaluated values for this draw. The live
// values are deliberately decoupled from the values the binders were
// built from; entries missing from current keep buffer-backed binders on
// their buffers.
func (b *Binders) AttributeBindings(current EvaluatedValues) []NamedBinding {
	out := make([]NamedBinding, 0, len(b.names))
	for _, name := range b.names {
		out = append(out, NamedBinding{
			Property: name,
			Binding:  b.binders[name].attributeBinding(current[name]),
		})
	}
	return out
}

// UniformValues returns the per-property interpolation factor uniforms
// for the current display zoom. Constant and source strategies always
// contribute 0.
func (b *Binders) UniformValues(zoom float32) []UniformValue {
	out := make([]UniformValue, 0, len(b.names))
	for _, name := range b.names {
		out = append(out, UniformValue{
			Name:  interpolationUniformName(name),
			Value: b.binders[name].interpolationFactor(zoom),
		})
	}
	return out
}

// Statistics exposes the accumulated per-property value ranges,
// read-only after population.
func (b *Binders) Statistics() *Statistics {
	return &b.stats
}

// Destroy releases all vertex buffers owned by the binders. The Binders
// must not be used afterward.
func (b *Binders) Destroy(adapter gpucore.UploadAdapter) {
	for _, name := range b.names {
		b.binders[name].destroy(adapter)
	}
}
