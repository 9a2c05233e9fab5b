package imagepkg

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"
)

// Canvas is the drawing surface of a single render. It is owned by that
// render and passed by reference through the pipeline steps.
type Canvas struct {
	dc     *gg.Context
	width  int
	height int
	*FaceMeasurer
}

func NewCanvas(width, height int, f *Font) *Canvas {
	return &Canvas{
		dc:           gg.NewContext(width, height),
		width:        width,
		height:       height,
		FaceMeasurer: NewFaceMeasurer(f),
	}
}

func (c *Canvas) setFontSize(sizePx float64) {
	c.dc.SetFontFace(c.Face(sizePx))
}

// Rasterize encodes the current surface as PNG.
func (c *Canvas) Rasterize() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
