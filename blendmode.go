package overlay

import (
	"encoding/json"
	"fmt"
)

// BlendMode specifies how a layer's pixels combine with the content below
// it. BlendNormal is the default over operator; the remaining modes follow
// the W3C Compositing and Blending Level 1 specification.
type BlendMode uint8

// Blend mode constants.
const (
	BlendNormal BlendMode = iota

	// Separable modes
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion

	// Non-separable modes
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
)

// blendModeNames maps BlendMode values to their wire-format names.
var blendModeNames = [...]string{
	BlendNormal:     "normal",
	BlendMultiply:   "multiply",
	BlendScreen:     "screen",
	BlendOverlay:    "overlay",
	BlendDarken:     "darken",
	BlendLighten:    "lighten",
	BlendColorDodge: "color-dodge",
	BlendColorBurn:  "color-burn",
	BlendHardLight:  "hard-light",
	BlendSoftLight:  "soft-light",
	BlendDifference: "difference",
	BlendExclusion:  "exclusion",
	BlendHue:        "hue",
	BlendSaturation: "saturation",
	BlendColor:      "color",
	BlendLuminosity: "luminosity",
}

// String returns the wire-format name of the blend mode.
func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return "normal"
}

// ParseBlendMode maps a wire-format name to a BlendMode.
// Unknown names resolve to BlendNormal so that documents written by newer
// hosts still render.
func ParseBlendMode(name string) BlendMode {
	for m, n := range blendModeNames {
		if n == name {
			return BlendMode(m)
		}
	}
	return BlendNormal
}

// MarshalJSON encodes the blend mode as its wire-format name.
func (m BlendMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes a wire-format blend mode name.
func (m *BlendMode) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("blend mode: %w", err)
	}
	*m = ParseBlendMode(name)
	return nil
}
