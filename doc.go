// Package paintbind turns declarative, data-driven paint properties into
// GPU-ready vertex data and per-frame scalar uniforms.
//
// # Overview
//
// A paint property (a color, a width, an opacity) can be a plain constant,
// a function of a feature's attributes ("source function"), or a function
// of both zoom and feature attributes ("composite function"). paintbind
// sits between a style evaluator, which decides per zoom which of the
// three shapes currently applies, and a rendering backend, which issues
// draw calls against fixed vertex and uniform bindings.
//
// The central constraint is that vertex buffers are built once per tile
// layer and never re-uploaded as the map zooms. Composite properties store
// the value at two bracketing zoom stops per vertex; the shader blends
// between them with a single per-property uniform that is recomputed every
// frame. Constant and source properties use the same doubled attribute
// layout with the blend factor pinned to zero, so one compiled shader
// variant serves every binding strategy.
//
// # Quick Start
//
//	width := paintbind.Property[float64]{
//	    Name:    "line-width",
//	    Default: 1,
//	    Value:   paintbind.Source(paintbind.NumberAttribute("width")),
//	}
//	binders, err := paintbind.NewBinders(14, width)
//	if err != nil {
//	    return err
//	}
//
//	for _, f := range features {
//	    vertexCount += f.VertexCount()
//	    binders.PopulateVertexVectors(f, vertexCount)
//	}
//
//	if err := binders.Upload(adapter); err != nil {
//	    return err
//	}
//
//	// Every frame:
//	bindings := binders.AttributeBindings(live)
//	uniforms := binders.UniformValues(currentZoom)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Property, PropertyValue, Binders, AttributeBinding
//   - gpucore: opaque-ID buffer abstraction implemented by backends
//   - Backends: memory (CPU-backed), wgpu (Pure Go WebGPU via gogpu/wgpu)
//
// # Threading
//
// A Binders instance is exclusively owned by the worker populating its
// tile layer. Population calls must be sequential. Upload runs once, on
// the thread owning the GPU context. After Upload the instance is
// immutable and AttributeBindings/UniformValues are safe to call from the
// render thread every frame.
package paintbind

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
