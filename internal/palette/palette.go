// Package palette generates pastel colors that keep a minimum mutual
// distance in RGB space, so every UDIM tile gets a visually distinct color.
package palette

import (
	"math"
	"math/rand/v2"
)

const (
	// DefaultMinDist is the default minimum pairwise Euclidean RGB
	// distance between generated colors.
	DefaultMinDist = 0.28

	// maxAttempts bounds the rejection sampling loop. When the palette is
	// saturated relative to the distance threshold the generator gives up
	// and returns its last candidate instead of looping forever.
	maxAttempts = 400

	pastelSaturation = 0.30
	pastelValue      = 1.00
)

// Color is an RGB triple with components in [0, 1].
type Color struct {
	R, G, B float64
}

// Dist returns the Euclidean distance between two colors in RGB space.
func (c Color) Dist(o Color) float64 {
	dr := c.R - o.R
	dg := c.G - o.G
	db := c.B - o.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Generator draws pastel colors one at a time, rejecting candidates that
// land too close to any previously drawn color. The random source is
// injected so batch runs can be made reproducible.
type Generator struct {
	rng     *rand.Rand
	minDist float64
	colors  []Color
}

// New returns a Generator using rng and the given minimum distance.
// A minDist <= 0 falls back to DefaultMinDist.
func New(rng *rand.Rand, minDist float64) *Generator {
	if minDist <= 0 {
		minDist = DefaultMinDist
	}
	return &Generator{rng: rng, minDist: minDist}
}

// Colors returns the colors drawn so far, in generation order.
func (g *Generator) Colors() []Color {
	return g.colors
}

// Next draws the next palette color.
//
// It samples random-hue pastel candidates and accepts the first one whose
// distance to every existing color is at least the threshold. If no
// candidate passes within the attempt budget, the last candidate is
// returned anyway and fallback is true; callers surface that as a soft
// warning, never as a failure.
func (g *Generator) Next() (c Color, fallback bool) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		c = pastel(g.rng.Float64())

		ok := true
		for _, old := range g.colors {
			if c.Dist(old) < g.minDist {
				ok = false
				break
			}
		}
		if ok {
			g.colors = append(g.colors, c)
			return c, false
		}
	}

	g.colors = append(g.colors, c)
	return c, true
}

// pastel converts a hue in [0,1) to RGB at fixed low saturation and full
// value via the standard six-sector HSV formula, biasing every candidate
// toward light pastel tones.
func pastel(h float64) Color {
	s := pastelSaturation
	v := pastelValue

	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	i %= 6

	switch i {
	case 0:
		return Color{v, t, p}
	case 1:
		return Color{q, v, p}
	case 2:
		return Color{p, v, t}
	case 3:
		return Color{p, q, v}
	case 4:
		return Color{t, p, v}
	default:
		return Color{v, p, q}
	}
}
