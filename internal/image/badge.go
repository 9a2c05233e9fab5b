package imagepkg

import "image/color"

const (
	badgeFontPx    = 36
	badgePaddingPx = 60
	badgeTextInset = 30
	badgeBaseline  = 40
	badgeHeightPx  = 54
	badgeRadiusPx  = 12
	badgeFillAlpha = 0.95
)

// BadgeFill is the accent color behind the category label (#1677ff).
var BadgeFill = color.RGBA{R: 0x16, G: 0x77, B: 0xff, A: 0xff}

// BadgeGeometry is the box drawn behind the category text.
type BadgeGeometry struct {
	X, Y          float64
	Width, Height float64
	CornerRadius  float64
}

// MeasureBadge sizes the badge for text anchored at (x, y). The width has no
// upper clamp; long categories grow the box past the canvas edge.
func MeasureBadge(m Measurer, text string, x, y float64) BadgeGeometry {
	return BadgeGeometry{
		X:            x,
		Y:            y,
		Width:        m.MeasureString(text, badgeFontPx) + badgePaddingPx,
		Height:       badgeHeightPx,
		CornerRadius: badgeRadiusPx,
	}
}

// RenderBadge draws the rounded box and the category text on top of it.
func RenderBadge(c *Canvas, text string, x, y float64) BadgeGeometry {
	g := MeasureBadge(c, text, x, y)
	dc := c.dc

	dc.Push()
	roundedRectPath(c, g)
	dc.SetRGBA(
		float64(BadgeFill.R)/255,
		float64(BadgeFill.G)/255,
		float64(BadgeFill.B)/255,
		badgeFillAlpha,
	)
	dc.Fill()
	dc.Pop()

	c.setFontSize(badgeFontPx)
	dc.SetColor(color.White)
	dc.DrawString(text, g.X+badgeTextInset, g.Y+badgeBaseline)
	return g
}

// roundedRectPath traces four edges joined by quadratic corners.
func roundedRectPath(c *Canvas, g BadgeGeometry) {
	dc := c.dc
	x, y, w, h, r := g.X, g.Y, g.Width, g.Height, g.CornerRadius

	dc.NewSubPath()
	dc.MoveTo(x+r, y)
	dc.LineTo(x+w-r, y)
	dc.QuadraticTo(x+w, y, x+w, y+r)
	dc.LineTo(x+w, y+h-r)
	dc.QuadraticTo(x+w, y+h, x+w-r, y+h)
	dc.LineTo(x+r, y+h)
	dc.QuadraticTo(x, y+h, x, y+h-r)
	dc.LineTo(x, y+r)
	dc.QuadraticTo(x, y, x+r, y)
	dc.ClosePath()
}
