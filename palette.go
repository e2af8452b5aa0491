package stepspiral

import "math"

// stepsPerLayer is how many palette transitions one spiral layer spans.
const stepsPerLayer = 2

// Palette is an ordered list of reference colors the spiral sweeps through.
// Each layer spans two palette steps, so consecutive layers continue the
// gradient where the previous one stopped.
type Palette []RGBA

// DefaultPalette is the rainbow used by the goal spiral, red through pink.
func DefaultPalette() Palette {
	return Palette{Red, Orange, Yellow, Green, Cyan, Blue, Purple, Pink}
}

// ParsePalette converts hex strings into a Palette.
func ParsePalette(hexes []string) (Palette, error) {
	p := make(Palette, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, err
		}
		p = append(p, c)
	}
	return p, nil
}

// At returns the interpolated color for a position within a layer.
// progress is the fraction through the layer in [0, 1]. Positions past
// either end of the palette clamp to the first or last color.
func (p Palette) At(layer int, progress float64) RGBA {
	if len(p) == 0 {
		return White
	}

	idx := float64(layer)*stepsPerLayer + progress*stepsPerLayer
	if idx <= 0 || math.IsNaN(idx) {
		return p[0]
	}

	last := len(p) - 1
	lo := int(math.Floor(idx))
	if lo >= last {
		return p[last]
	}

	return p[lo].Lerp(p[lo+1], idx-float64(lo))
}
