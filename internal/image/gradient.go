package imagepkg

import (
	"image/color"

	"github.com/fogleman/gg"
)

// gradientStart is the fraction of canvas height where the shade begins.
const gradientStart = 0.45

// gradientStop is a black stop whose alpha may be given outside 0..1.
type gradientStop struct {
	offset float64
	alpha  float64
}

// The first two alphas are out of range and clamp to opaque, which is the
// shade the published cards have always shown.
// TODO: confirm with product whether 1.0 and 0.9 were intended.
var gradientStops = []gradientStop{
	{offset: 0, alpha: 100},
	{offset: 0.2, alpha: 90},
	{offset: 1, alpha: 0},
}

func clampAlpha(a float64) uint8 {
	switch {
	case a <= 0:
		return 0
	case a >= 1:
		return 0xff
	}
	return uint8(a*0xff + 0.5)
}

// drawGradient shades the canvas from opaque black at the bottom edge to
// transparent at gradientStart of its height.
func drawGradient(c *Canvas) {
	w, h := float64(c.width), float64(c.height)
	top := h * gradientStart

	g := gg.NewLinearGradient(0, h, 0, top)
	for _, s := range gradientStops {
		g.AddColorStop(s.offset, color.NRGBA{A: clampAlpha(s.alpha)})
	}

	c.dc.Push()
	c.dc.SetFillStyle(g)
	c.dc.DrawRectangle(0, top, w, h-top)
	c.dc.Fill()
	c.dc.Pop()
}
