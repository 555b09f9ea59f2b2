package canvasrenderer

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Stop is one colour stop of a linear gradient.
type Stop struct {
	Offset float64
	Color  colorful.Color
}

// Gradient interpolates between its stops in sRGB, like a 2D canvas gradient.
type Gradient struct {
	Stops []Stop
}

// Rainbow returns the six-stop overlay used on every flyer.
func Rainbow() Gradient {
	return Gradient{Stops: []Stop{
		{Offset: 0, Color: mustHex("#E60000")},
		{Offset: 0.2, Color: mustHex("#FF8E00")},
		{Offset: 0.4, Color: mustHex("#FFEF00")},
		{Offset: 0.6, Color: mustHex("#00821B")},
		{Offset: 0.8, Color: mustHex("#004BFF")},
		{Offset: 1, Color: mustHex("#770089")},
	}}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("gradient: " + err.Error())
	}
	return c
}

// At returns the opaque colour at position t, clamped to [0,1].
func (g Gradient) At(t float64) color.RGBA {
	if len(g.Stops) == 0 {
		return color.RGBA{}
	}
	t = math.Max(0, math.Min(1, t))
	first, last := g.Stops[0], g.Stops[len(g.Stops)-1]
	if t <= first.Offset {
		return toRGBA(first.Color)
	}
	if t >= last.Offset {
		return toRGBA(last.Color)
	}
	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return toRGBA(b.Color)
		}
		return toRGBA(a.Color.BlendRgb(b.Color, (t-a.Offset)/span))
	}
	return toRGBA(last.Color)
}

// linearT projects the pixel centre (px, py) onto the gradient line (x0,y0)→(x1,y1).
func linearT(px, py, x0, y0, x1, y1 float64) float64 {
	dx, dy := x1-x0, y1-y0
	den := dx*dx + dy*dy
	if den == 0 {
		return 0
	}
	return ((px-x0)*dx + (py-y0)*dy) / den
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
