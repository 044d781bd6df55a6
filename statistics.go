package paintbind

// Statistics accumulates the observed range of evaluated numeric values
// per property across all features populated into one Binders instance.
// Downstream consumers read it after population to calibrate effects
// that depend on the extremes, such as sizing an extrusion buffer to the
// widest line a layer produced.
//
// Color properties do not contribute: a component-wise color range has
// no consumer.
//
// Statistics is owned by its Binders and follows the same threading
// rules: writes only during the population phase, reads afterward.
type Statistics struct {
	ranges map[string]Range[float64]
}

func newStatistics() Statistics {
	return Statistics{ranges: make(map[string]Range[float64])}
}

// add widens the observed range of a property with one evaluated value.
func (s *Statistics) add(property string, v float64) {
	r, ok := s.ranges[property]
	if !ok {
		s.ranges[property] = Range[float64]{Min: v, Max: v}
		return
	}
	if v < r.Min {
		r.Min = v
	}
	if v > r.Max {
		r.Max = v
	}
	s.ranges[property] = r
}

// observe records an evaluated value if it is numeric.
func (s *Statistics) observe(property string, v any) {
	if n, ok := v.(float64); ok {
		s.add(property, n)
	}
}

// Range returns the observed value range of a numeric property and
// whether any value was recorded for it.
func (s *Statistics) Range(property string) (Range[float64], bool) {
	r, ok := s.ranges[property]
	return r, ok
}

// Max returns the largest observed value of a numeric property.
func (s *Statistics) Max(property string) (float64, bool) {
	r, ok := s.ranges[property]
	return r.Max, ok
}
