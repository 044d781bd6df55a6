package paintbind

// Feature is one discrete geographic record contributing vertices to a
// tile layer. paintbind only consumes its attribute set; geometry
// handling stays with the caller.
//
// Attribute returns the value stored under the given key and whether the
// key was present. Values are expected to be one of: float64, int, bool,
// string, or RGBA. Missing or unexpectedly typed attributes are never an
// error; source and composite evaluation falls back to the property's
// declared default.
type Feature interface {
	Attribute(key string) (any, bool)
}

// Properties is a map-backed Feature, convenient for tests and for
// sources that decode feature attributes into a generic map.
type Properties map[string]any

// Attribute implements Feature.
func (p Properties) Attribute(key string) (any, bool) {
	v, ok := p[key]
	return v, ok
}

// numberValue coerces a feature attribute to float64.
// Integral types appear when attributes are decoded from protobuf or
// JSON sources; everything else is a type mismatch.
func numberValue(v any) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}

// colorValue coerces a feature attribute to RGBA. Colors arrive either
// pre-parsed or as hex/CSS-ish strings.
func colorValue(v any) (RGBA, bool) {
	switch v := v.(type) {
	case RGBA:
		return v, true
	case string:
		if v == "" {
			return RGBA{}, false
		}
		return Hex(v), true
	default:
		return RGBA{}, false
	}
}
