package paintbind

import (
	"github.com/gogpu/gputypes"
)

// AttributeType describes the GPU lane layout of a paint property value.
type AttributeType uint8

const (
	// AttributeNumber is a scalar numeric value: one float32 lane.
	AttributeNumber AttributeType = iota

	// AttributeColor is an RGBA color packed into two float32 lanes.
	AttributeColor
)

// String returns the attribute type name.
func (t AttributeType) String() string {
	switch t {
	case AttributeNumber:
		return "number"
	case AttributeColor:
		return "color"
	default:
		return "unknown"
	}
}

// Lanes returns the number of float32 lanes of the base layout.
func (t AttributeType) Lanes() int {
	if t == AttributeColor {
		return 2
	}
	return 1
}

// Format returns the vertex format of the base layout.
func (t AttributeType) Format() gputypes.VertexFormat {
	if t == AttributeColor {
		return gputypes.VertexFormatFloat32x2
	}
	return gputypes.VertexFormatFloat32
}

// ZoomInterpolatedFormat returns the vertex format of the doubled layout
// carrying the value at both covering zoom stops: lanes [0..N) hold the
// lower-stop value, lanes [N..2N) the upper-stop value.
func (t AttributeType) ZoomInterpolatedFormat() gputypes.VertexFormat {
	if t == AttributeColor {
		return gputypes.VertexFormatFloat32x4
	}
	return gputypes.VertexFormatFloat32x2
}

// attributeTypeOf maps a property value type to its lane layout.
func attributeTypeOf[T AttributeValue]() AttributeType {
	var zero T
	if _, ok := any(zero).(RGBA); ok {
		return AttributeColor
	}
	return AttributeNumber
}

// attributeLanes encodes a property value into its base attribute lanes.
//
// Numbers pass through as a single lane. Colors pack two 8-bit channels
// per lane: each component is scaled by 255 and truncated to an integer,
// then lane0 = r*256+g, lane1 = b*256+a. Truncating (not rounding) keeps
// the fractional part of one channel from corrupting the low 8 bits
// reserved for the other, and the packed integers stay well inside the
// exactly-representable range of a float32.
func attributeLanes[T AttributeValue](v T) []float32 {
	switch v := any(v).(type) {
	case float64:
		return []float32{float32(v)}
	case RGBA:
		lane0, lane1 := PackColor(v)
		return []float32{lane0, lane1}
	default:
		return nil
	}
}

// PackColor encodes an RGBA color into two float lanes, matching the
// 8-bit precision of the authoring format.
func PackColor(c RGBA) (float32, float32) {
	r := uint16(c.R * 255)
	g := uint16(c.G * 255)
	b := uint16(c.B * 255)
	a := uint16(c.A * 255)
	return float32(r)*256 + float32(g), float32(b)*256 + float32(a)
}

// UnpackColor decodes the two packed lanes back to a color quantized to
// 8 bits per channel. It is the inverse of PackColor over 8-bit inputs.
func UnpackColor(lane0, lane1 float32) RGBA {
	v0 := uint16(lane0)
	v1 := uint16(lane1)
	return RGBA{
		R: float64(v0>>8) / 255,
		G: float64(v0&0xff) / 255,
		B: float64(v1>>8) / 255,
		A: float64(v1&0xff) / 255,
	}
}

// zoomInterpolatedLanes concatenates the lower- and upper-stop encodings
// into the doubled attribute layout.
func zoomInterpolatedLanes(min, max []float32) []float32 {
	out := make([]float32, 0, len(min)+len(max))
	out = append(out, min...)
	out = append(out, max...)
	return out
}
