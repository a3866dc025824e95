package overlay

import (
	"strconv"
	"strings"
)

// DefaultDash is the dash pattern used when a guide declares no pattern or
// declares one with no usable entries.
var DefaultDash = []float64{6, 4}

// ParseDash parses a comma-separated dash pattern such as "6,4" or
// "10, 5, 2, 5". Non-numeric and non-positive entries are filtered out;
// if nothing usable remains, DefaultDash is returned.
func ParseDash(s string) []float64 {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || v <= 0 {
			continue
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		Logger().Warn("malformed dash pattern, using default", "pattern", s)
		return append([]float64(nil), DefaultDash...)
	}
	return out
}
