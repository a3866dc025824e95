package overlay

// Properties is a layer's property bag. Keys are specific to the layer type
// and opaque to the engine; values are scalars, strings, booleans, points,
// or nested structures as produced by JSON decoding.
type Properties map[string]any

// Float returns the property as a float64, or def if absent or of another
// type. Integer-typed values are widened.
func (p Properties) Float(key string, def float64) float64 {
	v, ok := p[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return def
}

// Int returns the property as an int, or def.
func (p Properties) Int(key string, def int) int {
	v, ok := p[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return def
}

// String returns the property as a string, or def.
func (p Properties) String(key, def string) string {
	if s, ok := p[key].(string); ok {
		return s
	}
	return def
}

// Bool returns the property as a bool, or def.
func (p Properties) Bool(key string, def bool) bool {
	if b, ok := p[key].(bool); ok {
		return b
	}
	return def
}

// Color returns the property as a color. Hex strings and RGBA values are
// accepted; anything else yields def.
func (p Properties) Color(key string, def RGBA) RGBA {
	switch v := p[key].(type) {
	case string:
		return Hex(v)
	case RGBA:
		return v
	}
	return def
}

// Points returns the property as a point list. Each entry may be a Point or
// a {"x": .., "y": ..} map (the JSON decoding of one). Entries of any other
// shape are dropped.
func (p Properties) Points(key string) []Point {
	list, ok := p[key].([]any)
	if !ok {
		if pts, ok := p[key].([]Point); ok {
			out := make([]Point, len(pts))
			copy(out, pts)
			return out
		}
		return nil
	}
	out := make([]Point, 0, len(list))
	for _, e := range list {
		switch v := e.(type) {
		case Point:
			out = append(out, v)
		case map[string]any:
			x, xok := v["x"].(float64)
			y, yok := v["y"].(float64)
			if xok && yok {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}

// Clone returns a deep copy of the property bag. Nested maps and slices
// (the shapes JSON decoding produces) are copied; other values are shared.
func (p Properties) Clone() Properties {
	if p == nil {
		return nil
	}
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = cloneValue(e)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = cloneValue(e)
		}
		return s
	case []Point:
		s := make([]Point, len(t))
		copy(s, t)
		return s
	default:
		return v
	}
}

// merge shallow-merges partial into p. Keys with nil values in the partial
// are skipped entirely: they neither overwrite nor clear existing entries.
func (p Properties) merge(partial Properties) {
	for k, v := range partial {
		if v == nil {
			continue
		}
		p[k] = v
	}
}
