package paintbind

import (
	"errors"
	"testing"
)

func TestPropertyValueKinds(t *testing.T) {
	c := Constant(3.0)
	if c.Kind() != KindConstant || !c.IsConstant() {
		t.Errorf("Constant: kind = %v", c.Kind())
	}
	if v, ok := c.Constant(); !ok || v != 3.0 {
		t.Errorf("Constant() = (%g, %t), want (3, true)", v, ok)
	}

	s := Source(NumberAttribute("width"))
	if s.Kind() != KindSource || s.IsConstant() {
		t.Errorf("Source: kind = %v", s.Kind())
	}
	if _, ok := s.Constant(); ok {
		t.Error("Source: Constant() ok = true, want false")
	}
	if got := s.ConstantOr(7); got != 7 {
		t.Errorf("Source: ConstantOr(7) = %g, want 7", got)
	}

	comp := Composite(CompositeFunction[float64]{Stops: []ZoomStop[float64]{{Zoom: 5}}})
	if comp.Kind() != KindComposite {
		t.Errorf("Composite: kind = %v", comp.Kind())
	}
}

func TestSourceFunctionFallback(t *testing.T) {
	fn := NumberAttribute("width")

	tests := []struct {
		name string
		f    Feature
		want float64
	}{
		{"present", Properties{"width": 4.0}, 4},
		{"integer attribute", Properties{"width": 4}, 4},
		{"absent", Properties{}, 9},
		{"mistyped", Properties{"width": "wide"}, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fn.evaluate(tt.f, 9); got != tt.want {
				t.Errorf("evaluate = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestColorAttributeSource(t *testing.T) {
	fn := ColorAttribute("color")
	got := fn.evaluate(Properties{"color": "#ff0000"}, Black)
	if got != (RGBA{1, 0, 0, 1}) {
		t.Errorf("hex attribute = %v, want red", got)
	}
	if got := fn.evaluate(Properties{}, Blue); got != Blue {
		t.Errorf("absent attribute = %v, want default blue", got)
	}
}

func stopsAt(zooms ...float32) []ZoomStop[float64] {
	stops := make([]ZoomStop[float64], len(zooms))
	for i, z := range zooms {
		stops[i] = ZoomStop[float64]{Zoom: z}
	}
	return stops
}

func TestCoveringRanges(t *testing.T) {
	tests := []struct {
		name     string
		stops    []ZoomStop[float64]
		zoom     float32
		min, max float32
	}{
		{"between stops", stopsAt(5, 10), 7, 5, 10},
		{"at lower stop", stopsAt(5, 10), 5, 5, 10},
		{"at upper stop", stopsAt(5, 10), 10, 5, 10},
		{"below all stops", stopsAt(5, 10), 2, 5, 5},
		{"above all stops", stopsAt(5, 10), 14, 10, 10},
		{"construction zoom 10 over [8,12]", stopsAt(8, 12), 10, 8, 12},
		{"middle of three", stopsAt(4, 8, 16), 9, 8, 16},
		{"single stop", stopsAt(6), 11, 6, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := CompositeFunction[float64]{Stops: tt.stops}
			cov, err := fn.CoveringRanges(tt.zoom)
			if err != nil {
				t.Fatalf("CoveringRanges(%g) error = %v", tt.zoom, err)
			}
			if cov.Zoom.Min != tt.min || cov.Zoom.Max != tt.max {
				t.Errorf("CoveringRanges(%g) = [%g, %g], want [%g, %g]",
					tt.zoom, cov.Zoom.Min, cov.Zoom.Max, tt.min, tt.max)
			}
		})
	}
}

func TestCoveringRangesNoStops(t *testing.T) {
	fn := CompositeFunction[float64]{}
	if _, err := fn.CoveringRanges(10); !errors.Is(err, ErrNoStops) {
		t.Errorf("error = %v, want ErrNoStops", err)
	}
}

func TestEvaluateRange(t *testing.T) {
	fn := CompositeFunction[float64]{Stops: []ZoomStop[float64]{
		{Zoom: 5, Evaluate: func(f Feature) (float64, bool) {
			v, ok := f.Attribute("size")
			n, nok := numberValue(v)
			return n, ok && nok
		}},
		{Zoom: 10, Evaluate: func(f Feature) (float64, bool) {
			v, ok := f.Attribute("size")
			n, nok := numberValue(v)
			return n * 2, ok && nok
		}},
	}}
	cov, err := fn.CoveringRanges(7)
	if err != nil {
		t.Fatal(err)
	}

	r := fn.EvaluateRange(cov, Properties{"size": 3.0}, 1)
	if r.Min != 3 || r.Max != 6 {
		t.Errorf("EvaluateRange = [%g, %g], want [3, 6]", r.Min, r.Max)
	}

	// Absent attribute falls back to the default at both stops.
	r = fn.EvaluateRange(cov, Properties{}, 1)
	if r.Min != 1 || r.Max != 1 {
		t.Errorf("EvaluateRange fallback = [%g, %g], want [1, 1]", r.Min, r.Max)
	}
}
