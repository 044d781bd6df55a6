package paintbind

import "github.com/chewxy/math32"

// InterpolationFactor maps a zoom to the blend position inside a zoom
// bracket: 0 at r.Min, 1 at r.Max, following an exponential law with the
// given base. Base 1 is the linear case. Zooms outside the bracket
// extrapolate by the same law; callers that need clamping apply it in
// the shader.
//
// A degenerate bracket (Min == Max) yields 0, so single-stop composite
// functions never interpolate.
func InterpolationFactor(base float32, r Range[float32], zoom float32) float32 {
	zoomDiff := r.Max - r.Min
	if zoomDiff == 0 {
		return 0
	}
	zoomProgress := zoom - r.Min
	if base == 1 {
		return zoomProgress / zoomDiff
	}
	return (math32.Pow(base, zoomProgress) - 1) / (math32.Pow(base, zoomDiff) - 1)
}
