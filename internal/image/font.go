package imagepkg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/math/fixed"
)

// Font is a parsed bold TrueType font registered once at startup and shared
// read-only by every render. Faces are created per canvas because a font.Face
// keeps a glyph cache and is not safe for concurrent use.
type Font struct {
	Name string
	ttf  *truetype.Font
}

// ParseFont parses TrueType bytes into a Font.
func ParseFont(name string, data []byte) (*Font, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", name, err)
	}
	return &Font{Name: name, ttf: f}, nil
}

// DefaultFont returns the embedded Go Bold face.
func DefaultFont() (*Font, error) {
	return ParseFont("Go Bold", gobold.TTF)
}

// LoadFontOrDefault reads the font at path. When the file does not exist the
// embedded default is returned and fallback is true.
func LoadFontOrDefault(path string) (f *Font, fallback bool, err error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			f, err := ParseFont(path, data)
			return f, false, err
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, false, fmt.Errorf("read font %s: %w", path, err)
		}
	}
	f, err = DefaultFont()
	return f, true, err
}

// NewFace returns a face at sizePx pixels (72 DPI, so points == pixels).
func (f *Font) NewFace(sizePx float64) font.Face {
	return truetype.NewFace(f.ttf, &truetype.Options{Size: sizePx, DPI: 72, Hinting: font.HintingNone})
}

// Measurer reports the advance width in pixels of text set at sizePx.
type Measurer interface {
	MeasureString(text string, sizePx float64) float64
}

// FaceMeasurer measures with faces of a single Font. It caches one face per
// size and must not be shared between goroutines.
type FaceMeasurer struct {
	font  *Font
	faces map[float64]font.Face
}

func NewFaceMeasurer(f *Font) *FaceMeasurer {
	return &FaceMeasurer{font: f, faces: map[float64]font.Face{}}
}

func (m *FaceMeasurer) Face(sizePx float64) font.Face {
	if face, ok := m.faces[sizePx]; ok {
		return face
	}
	face := m.font.NewFace(sizePx)
	m.faces[sizePx] = face
	return face
}

func (m *FaceMeasurer) MeasureString(text string, sizePx float64) float64 {
	return fixedToFloat(font.MeasureString(m.Face(sizePx), text))
}

// Ascent is the distance from the top of the em box to the baseline.
func (m *FaceMeasurer) Ascent(sizePx float64) float64 {
	return fixedToFloat(m.Face(sizePx).Metrics().Ascent)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
