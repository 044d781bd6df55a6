package paintbind

import (
	"fmt"
	"strings"
)

// The shader contract is the same for all three binding strategies: every
// paint attribute is declared at its doubled width (vec2 for numbers,
// vec4 for packed colors) and blended by a per-property "<name>_t"
// uniform. Constant and source strategies pin the uniform to zero so the
// blend degenerates to the lower half. Keeping the source constant per
// layer lets backends cache compiled shaders regardless of which strategy
// each property ended up with.

// sanitizeIdent rewrites a property name ("line-width") into a WGSL
// identifier ("line_width").
func sanitizeIdent(name string) string {
	var sb strings.Builder
	for i, r := range name {
		ok := r == '_' ||
			(r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9')
		if !ok {
			r = '_'
		}
		if i == 0 && r >= '0' && r <= '9' {
			sb.WriteByte('_')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// interpolationUniformName is the uniform naming convention shared with
// generated shader source.
func interpolationUniformName(property string) string {
	return sanitizeIdent(property) + "_t"
}

// wgslType returns the WGSL type of the doubled attribute layout.
func wgslType(t AttributeType) string {
	if t == AttributeColor {
		return "vec4<f32>"
	}
	return "vec2<f32>"
}

// VertexInputWGSL generates the WGSL declarations a vertex shader needs
// to consume the binder set: the vertex input struct with one location
// per property in declaration order, the interpolation uniform struct,
// and the unpack/blend helper functions.
func VertexInputWGSL(b *Binders) string {
	var sb strings.Builder

	if len(b.names) > 0 {
		sb.WriteString("struct PaintInput {\n")
		for i, name := range b.names {
			fmt.Fprintf(&sb, "    @location(%d) a_%s: %s,\n",
				i, sanitizeIdent(name), wgslType(b.binders[name].attributeType()))
		}
		sb.WriteString("}\n\n")

		sb.WriteString("struct PaintUniforms {\n")
		for _, name := range b.names {
			fmt.Fprintf(&sb, "    %s: f32,\n", interpolationUniformName(name))
		}
		sb.WriteString("}\n\n")
		sb.WriteString("@group(0) @binding(0) var<uniform> paint: PaintUniforms;\n\n")
	}

	sb.WriteString(`fn unpack_paint_color(packed: vec2<f32>) -> vec4<f32> {
    let hi = floor(packed / 256.0);
    let lo = packed - hi * 256.0;
    return vec4<f32>(hi.x, lo.x, hi.y, lo.y) / 255.0;
}

fn blend_paint(v: vec2<f32>, t: f32) -> f32 {
    return mix(v.x, v.y, clamp(t, 0.0, 1.0));
}

fn blend_paint_color(v: vec4<f32>, t: f32) -> vec4<f32> {
    return mix(unpack_paint_color(v.xy), unpack_paint_color(v.zw), clamp(t, 0.0, 1.0));
}
`)
	return sb.String()
}

// VertexShaderWGSL generates a complete, compilable vertex shader module
// over the binder set. The entry point folds every paint attribute into
// the output so validation exercises each declaration; it is meant for
// shader-contract validation and as a starting point for real layer
// shaders, not for direct rendering.
func VertexShaderWGSL(b *Binders) string {
	var sb strings.Builder
	sb.WriteString(VertexInputWGSL(b))
	sb.WriteString("\n@vertex\n")

	if len(b.names) == 0 {
		sb.WriteString("fn vs_main() -> @builtin(position) vec4<f32> {\n")
		sb.WriteString("    return vec4<f32>(0.0, 0.0, 0.0, 1.0);\n}\n")
		return sb.String()
	}

	sb.WriteString("fn vs_main(in: PaintInput) -> @builtin(position) vec4<f32> {\n")
	sb.WriteString("    var acc: f32 = 0.0;\n")
	for _, name := range b.names {
		ident := sanitizeIdent(name)
		if b.binders[name].attributeType() == AttributeColor {
			fmt.Fprintf(&sb, "    acc += blend_paint_color(in.a_%s, paint.%s_t).r;\n", ident, ident)
		} else {
			fmt.Fprintf(&sb, "    acc += blend_paint(in.a_%s, paint.%s_t);\n", ident, ident)
		}
	}
	sb.WriteString("    return vec4<f32>(acc, 0.0, 0.0, 1.0);\n}\n")
	return sb.String()
}
