package imagepkg

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
)

// Canvas size is a contract with the social platforms (4:5 portrait).
const (
	CanvasWidth  = 1080
	CanvasHeight = 1350
)

const (
	pagePadding    = 56
	boxHeight      = 260
	verticalOffset = 80
	boxTop         = CanvasHeight - boxHeight - verticalOffset

	badgeX = pagePadding + 8
	badgeY = boxTop + 24

	titleX         = pagePadding + 8
	titleY         = boxTop + 80
	titleMaxWidth  = CanvasWidth - 2*pagePadding
	titleMaxHeight = boxHeight - 100

	logoX       = 56
	logoY       = 56
	logoWidth   = 220
	logoOpacity = 0.96

	qrSize  = 160
	qrInset = 56
)

// RenderRequest is everything a single card needs.
type RenderRequest struct {
	Category   string
	Title      string
	Background image.Image
	Fit        FitMode
	// Link, when set, is stamped as a QR code in the top-right corner.
	Link string
}

// Renderer composes cards. It holds only read-only state and is safe for
// concurrent use; each Render works on its own Canvas.
type Renderer struct {
	font     *Font
	assets   AssetLoader
	logoName string
}

// NewRenderer requires a registered font. assets may be nil, in which case no logo is drawn.
func NewRenderer(f *Font, assets AssetLoader, logoName string) (*Renderer, error) {
	if f == nil {
		return nil, errors.New("renderer: font must be registered before rendering")
	}
	return &Renderer{font: f, assets: assets, logoName: logoName}, nil
}

// Render draws the card and returns it as PNG bytes. Nothing is returned on
// a fatal error.
func (r *Renderer) Render(req RenderRequest) ([]byte, error) {
	if req.Background == nil {
		return nil, fmt.Errorf("%w: no background bitmap", ErrBackgroundDecode)
	}
	log := logrus.WithFields(logrus.Fields{
		"category": req.Category,
		"fit":      req.Fit.String(),
	})

	c := NewCanvas(CanvasWidth, CanvasHeight, r.font)

	if err := drawBackground(c, req.Background, req.Fit); err != nil {
		return nil, err
	}
	drawGradient(c)

	if err := r.drawLogo(c); err != nil {
		log.WithError(err).Warn("logo skipped")
	}

	RenderBadge(c, req.Category, badgeX, badgeY)

	block, err := Layout(c, req.Title, DefaultLayoutOptions(titleMaxWidth, titleMaxHeight))
	if err != nil {
		if !errors.Is(err, ErrTextDoesNotFit) {
			return nil, err
		}
		log.WithError(err).Warn("title overflows its box")
	}
	drawTitle(c, block, titleX, titleY, titleMaxWidth)

	if req.Link != "" {
		if err := drawLinkQR(c, req.Link); err != nil {
			return nil, err
		}
	}

	return c.Rasterize()
}

func drawBackground(c *Canvas, bg image.Image, mode FitMode) error {
	b := bg.Bounds()
	fit, err := Fit(b.Dx(), b.Dy(), c.width, c.height, mode)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}

	c.dc.SetColor(color.Black)
	c.dc.Clear()

	src, dst := visibleArea(fit, b, c.width, c.height)
	if dst.Empty() {
		return nil
	}
	scaled := imaging.Resize(imaging.Crop(bg, src), dst.Dx(), dst.Dy(), imaging.Lanczos)
	c.dc.DrawImage(scaled, dst.Min.X, dst.Min.Y)
	return nil
}

// visibleArea returns the part of the source that lands on a targetW x targetH
// surface and the target rectangle it is drawn into. Only that part is ever
// resampled, so the work is bounded by the target size.
func visibleArea(fit FitResult, src image.Rectangle, targetW, targetH int) (image.Rectangle, image.Rectangle) {
	x0 := math.Max(fit.OffsetX, 0)
	y0 := math.Max(fit.OffsetY, 0)
	x1 := math.Min(fit.OffsetX+fit.DrawWidth, float64(targetW))
	y1 := math.Min(fit.OffsetY+fit.DrawHeight, float64(targetH))
	dst := image.Rect(
		int(math.Round(x0)), int(math.Round(y0)),
		int(math.Round(x1)), int(math.Round(y1)),
	)

	sx := fit.DrawWidth / float64(src.Dx())
	sy := fit.DrawHeight / float64(src.Dy())
	crop := image.Rect(
		src.Min.X+int(math.Floor((x0-fit.OffsetX)/sx)),
		src.Min.Y+int(math.Floor((y0-fit.OffsetY)/sy)),
		src.Min.X+int(math.Ceil((x1-fit.OffsetX)/sx)),
		src.Min.Y+int(math.Ceil((y1-fit.OffsetY)/sy)),
	).Intersect(src)
	if crop.Empty() {
		return crop, image.Rectangle{}
	}
	return crop, dst
}

func (r *Renderer) drawLogo(c *Canvas) error {
	if r.assets == nil || r.logoName == "" {
		return fmt.Errorf("%w: no logo configured", ErrAssetMissing)
	}
	logo, err := r.assets.LoadAsset(r.logoName)
	if err != nil {
		return err
	}
	b := logo.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return fmt.Errorf("logo %s: %w", r.logoName, ErrInvalidImageDimensions)
	}

	h := int(math.Round(logoWidth * float64(b.Dy()) / float64(b.Dx())))
	scaled := imaging.Resize(logo, logoWidth, max(h, 1), imaging.Lanczos)
	faded := imaging.AdjustFunc(scaled, func(px color.NRGBA) color.NRGBA {
		px.A = uint8(math.Round(float64(px.A) * logoOpacity))
		return px
	})
	c.dc.DrawImage(faded, logoX, logoY)
	return nil
}

// drawTitle draws left-aligned lines with y as the top of the first line.
// Lines wider than maxWidth are squeezed horizontally to fit.
func drawTitle(c *Canvas, block TextBlock, x, y, maxWidth float64) {
	size := float64(block.FontSizePx)
	c.setFontSize(size)
	c.dc.SetColor(color.White)
	ascent := c.Ascent(size)

	for i, line := range block.Lines {
		top := y + float64(i*block.LineHeightPx)
		w := c.MeasureString(line, size)
		if w <= maxWidth {
			c.dc.DrawString(line, x, top+ascent)
			continue
		}
		c.dc.Push()
		c.dc.ScaleAbout(maxWidth/w, 1, x, top)
		c.dc.DrawString(line, x, top+ascent)
		c.dc.Pop()
	}
}

func drawLinkQR(c *Canvas, link string) error {
	q, err := GenerateQRImage(link, qrSize)
	if err != nil {
		return fmt.Errorf("link qr: %w", err)
	}
	c.dc.DrawImage(q, c.width-qrInset-qrSize, qrInset)
	return nil
}
