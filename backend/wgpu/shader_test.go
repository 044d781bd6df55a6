//go:build !nogpu

package wgpu

import (
	"testing"

	types "github.com/gogpu/gputypes"

	"github.com/gogpu/paintbind"
	"github.com/gogpu/paintbind/gpucore"
)

// spirvMagic is the first word of every valid SPIR-V module.
const spirvMagic = 0x07230203

func TestCompileShaderPaintContract(t *testing.T) {
	b, err := paintbind.NewBinders(7,
		paintbind.Property[paintbind.RGBA]{
			Name:    "fill-color",
			Default: paintbind.Black,
			Value:   paintbind.Constant(paintbind.Red),
		},
		paintbind.Property[float64]{
			Name:    "line-width",
			Default: 1,
			Value:   paintbind.Source(paintbind.NumberAttribute("width")),
		},
	)
	if err != nil {
		t.Fatal(err)
	}

	words, err := CompileShader(paintbind.VertexShaderWGSL(b))
	if err != nil {
		t.Fatalf("CompileShader() error = %v", err)
	}
	if len(words) == 0 {
		t.Fatal("CompileShader() returned no SPIR-V words")
	}
	if words[0] != spirvMagic {
		t.Errorf("first word = %#x, want SPIR-V magic %#x", words[0], uint32(spirvMagic))
	}
}

func TestCompileShaderMemoizes(t *testing.T) {
	const src = "@vertex fn vs_main() -> @builtin(position) vec4<f32> { return vec4<f32>(0.0, 0.0, 0.0, 1.0); }"

	first, err := CompileShader(src)
	if err != nil {
		t.Fatal(err)
	}
	second, err := CompileShader(src)
	if err != nil {
		t.Fatal(err)
	}
	if &first[0] != &second[0] {
		t.Error("second compile of identical source did not hit the cache")
	}
}

func TestCompileShaderInvalid(t *testing.T) {
	if _, err := CompileShader("fn broken("); err == nil {
		t.Error("CompileShader() on invalid WGSL should return error")
	}
}

func TestConvertBufferUsage(t *testing.T) {
	tests := []struct {
		name string
		in   gpucore.BufferUsage
		want types.BufferUsage
	}{
		{"vertex+copydst", gpucore.BufferUsageVertex | gpucore.BufferUsageCopyDst,
			types.BufferUsageVertex | types.BufferUsageCopyDst},
		{"uniform", gpucore.BufferUsageUniform, types.BufferUsageUniform},
		{"index", gpucore.BufferUsageIndex, types.BufferUsageIndex},
		{"map pair", gpucore.BufferUsageMapRead | gpucore.BufferUsageMapWrite,
			types.BufferUsageMapRead | types.BufferUsageMapWrite},
		{"copysrc", gpucore.BufferUsageCopySrc, types.BufferUsageCopySrc},
		{"none", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := convertBufferUsage(tt.in); got != tt.want {
				t.Errorf("convertBufferUsage(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
