package paintbind

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{name: "short rgb", hex: "#f00", want: RGBA{1, 0, 0, 1}},
		{name: "short rgba", hex: "#f00f", want: RGBA{1, 0, 0, 1}},
		{name: "long rgb", hex: "#ff0000", want: RGBA{1, 0, 0, 1}},
		{name: "long rgba", hex: "#ff000080", want: RGBA{1, 0, 0, 128.0 / 255}},
		{name: "no hash", hex: "00ff00", want: RGBA{0, 1, 0, 1}},
		{name: "malformed", hex: "bogus", want: RGBA{0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			const tolerance = 0.001
			if absDiff(got.R, tt.want.R) > tolerance ||
				absDiff(got.G, tt.want.G) > tolerance ||
				absDiff(got.B, tt.want.B) > tolerance ||
				absDiff(got.A, tt.want.A) > tolerance {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestColorRoundtrip(t *testing.T) {
	// RGBA → color.Color → FromColor → RGBA
	original := RGBA{0.8, 0.3, 0.5, 1}
	roundtripped := FromColor(original.Color())
	const tolerance = 0.01
	if absDiff(original.R, roundtripped.R) > tolerance ||
		absDiff(original.G, roundtripped.G) > tolerance ||
		absDiff(original.B, roundtripped.B) > tolerance ||
		absDiff(original.A, roundtripped.A) > tolerance {
		t.Errorf("roundtrip: %v → %v", original, roundtripped)
	}
}

func TestColorClamps(t *testing.T) {
	out := RGBA{R: 1.5, G: -0.5, B: 0.5, A: 1}.Color().(color.NRGBA)
	if out.R != 255 || out.G != 0 {
		t.Errorf("out-of-range components = %v, want clamped to 255/0", out)
	}
}

func TestLerp(t *testing.T) {
	mid := Black.Lerp(White, 0.5)
	if mid.R != 0.5 || mid.G != 0.5 || mid.B != 0.5 || mid.A != 1 {
		t.Errorf("Black.Lerp(White, 0.5) = %v, want mid gray", mid)
	}
	if got := Red.Lerp(Blue, 0); got != Red {
		t.Errorf("Lerp at 0 = %v, want %v", got, Red)
	}
	if got := Red.Lerp(Blue, 1); got != Blue {
		t.Errorf("Lerp at 1 = %v, want %v", got, Blue)
	}
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
