package paintbind

import (
	"errors"
	"sort"
)

// ErrNoStops is returned when a composite function is constructed with an
// empty zoom stop list. An empty stop list is a malformed function
// definition upstream; it is surfaced, never retried.
var ErrNoStops = errors.New("paintbind: composite function has no zoom stops")

// AttributeValue is the set of value types a paint property can carry:
// scalar numbers and RGBA colors.
type AttributeValue interface {
	float64 | RGBA
}

// Range is a pair of values bracketing an interval.
type Range[T any] struct {
	Min, Max T
}

// PropertyKind tags the three shapes a possibly-evaluated paint property
// can take after cascade evaluation.
type PropertyKind uint8

const (
	// KindConstant is a plain value, or the constant result of evaluating
	// a camera function at a fixed camera position.
	KindConstant PropertyKind = iota

	// KindSource is a function of a feature's attributes.
	KindSource

	// KindComposite is a function of both zoom and feature attributes.
	KindComposite
)

// String returns the kind name.
func (k PropertyKind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindSource:
		return "source"
	case KindComposite:
		return "composite"
	default:
		return "unknown"
	}
}

// PropertyValue is the tagged union handed over by the cascade evaluator:
// a constant, a source function, or a composite function. It is immutable
// once passed to NewBinders.
type PropertyValue[T AttributeValue] struct {
	kind      PropertyKind
	constant  T
	source    SourceFunction[T]
	composite CompositeFunction[T]
}

// Constant wraps a plain value.
func Constant[T AttributeValue](v T) PropertyValue[T] {
	return PropertyValue[T]{kind: KindConstant, constant: v}
}

// Source wraps a source function.
func Source[T AttributeValue](fn SourceFunction[T]) PropertyValue[T] {
	return PropertyValue[T]{kind: KindSource, source: fn}
}

// Composite wraps a composite function.
func Composite[T AttributeValue](fn CompositeFunction[T]) PropertyValue[T] {
	return PropertyValue[T]{kind: KindComposite, composite: fn}
}

// Kind returns the variant tag.
func (v PropertyValue[T]) Kind() PropertyKind { return v.kind }

// IsConstant reports whether the value is the constant variant.
func (v PropertyValue[T]) IsConstant() bool { return v.kind == KindConstant }

// Constant returns the constant payload, if the value is constant.
func (v PropertyValue[T]) Constant() (T, bool) {
	if v.kind != KindConstant {
		var zero T
		return zero, false
	}
	return v.constant, true
}

// ConstantOr returns the constant payload, or fallback for the function
// variants.
func (v PropertyValue[T]) ConstantOr(fallback T) T {
	if v.kind == KindConstant {
		return v.constant
	}
	return fallback
}

// constantLanes implements AnyPropertyValue.
func (v PropertyValue[T]) constantLanes() ([]float32, bool) {
	if v.kind != KindConstant {
		return nil, false
	}
	return attributeLanes(v.constant), true
}

// AnyPropertyValue erases the value type of a PropertyValue so that live
// values for heterogeneous properties can travel in one EvaluatedValues
// map. Only PropertyValue instantiations implement it.
type AnyPropertyValue interface {
	// constantLanes returns the encoded attribute lanes of the constant
	// payload, or ok=false for the function variants.
	constantLanes() ([]float32, bool)
}

// EvaluatedValues carries the live evaluated value per property name at
// bind time. The live value may reflect a different zoom or feature state
// than the value the binders were built from; a missing entry behaves
// like a non-constant value, so buffer-backed binders keep their buffers
// bound and constant binders fall back to their construction value.
type EvaluatedValues map[string]AnyPropertyValue

// SourceFunction maps a feature's attributes to a value. Evaluation is
// total: ok=false (absent or mistyped attribute) makes the caller fall
// back to the property's declared default.
type SourceFunction[T AttributeValue] struct {
	Evaluate func(f Feature) (value T, ok bool)
}

// evaluate applies the function with the default fallback policy.
func (fn SourceFunction[T]) evaluate(f Feature, def T) T {
	if fn.Evaluate == nil {
		return def
	}
	if v, ok := fn.Evaluate(f); ok {
		return v
	}
	return def
}

// NumberAttribute returns a source function that reads a single numeric
// feature attribute.
func NumberAttribute(key string) SourceFunction[float64] {
	return SourceFunction[float64]{
		Evaluate: func(f Feature) (float64, bool) {
			v, ok := f.Attribute(key)
			if !ok {
				return 0, false
			}
			return numberValue(v)
		},
	}
}

// ColorAttribute returns a source function that reads a single color
// feature attribute (RGBA or hex string).
func ColorAttribute(key string) SourceFunction[RGBA] {
	return SourceFunction[RGBA]{
		Evaluate: func(f Feature) (RGBA, bool) {
			v, ok := f.Attribute(key)
			if !ok {
				return RGBA{}, false
			}
			return colorValue(v)
		},
	}
}

// ZoomStop is one sample point of a composite function: the per-feature
// evaluation of the function at a fixed zoom.
type ZoomStop[T AttributeValue] struct {
	Zoom     float32
	Evaluate func(f Feature) (value T, ok bool)
}

// CompositeFunction maps (zoom, feature attributes) to a value by
// sampling the per-feature function at discrete zoom stops. Stops must be
// sorted by ascending zoom.
type CompositeFunction[T AttributeValue] struct {
	Stops []ZoomStop[T]
}

// CoveringRanges is the pair of zoom stops bracketing a display zoom,
// fixed once per tile at binder construction.
type CoveringRanges[T AttributeValue] struct {
	Zoom         Range[float32]
	Lower, Upper ZoomStop[T]
}

// CoveringRanges returns the stops bracketing zoom. Zooms outside the
// stop range clamp to the outermost pair. Returns ErrNoStops for an
// empty stop list.
func (fn CompositeFunction[T]) CoveringRanges(zoom float32) (CoveringRanges[T], error) {
	stops := fn.Stops
	if len(stops) == 0 {
		return CoveringRanges[T]{}, ErrNoStops
	}

	// First stop at or above zoom, stepped back one when possible, and
	// first stop strictly above zoom, clamped to the last.
	lo := sort.Search(len(stops), func(i int) bool { return stops[i].Zoom >= zoom })
	if lo > 0 {
		lo--
	}
	hi := sort.Search(len(stops), func(i int) bool { return stops[i].Zoom > zoom })
	if hi == len(stops) {
		hi--
	}

	return CoveringRanges[T]{
		Zoom:  Range[float32]{Min: stops[lo].Zoom, Max: stops[hi].Zoom},
		Lower: stops[lo],
		Upper: stops[hi],
	}, nil
}

// EvaluateRange evaluates the feature at both covering stops, falling
// back to def per stop when the attribute is absent or mistyped.
func (fn CompositeFunction[T]) EvaluateRange(cov CoveringRanges[T], f Feature, def T) Range[T] {
	r := Range[T]{Min: def, Max: def}
	if cov.Lower.Evaluate != nil {
		if v, ok := cov.Lower.Evaluate(f); ok {
			r.Min = v
		}
	}
	if cov.Upper.Evaluate != nil {
		if v, ok := cov.Upper.Evaluate(f); ok {
			r.Max = v
		}
	}
	return r
}
