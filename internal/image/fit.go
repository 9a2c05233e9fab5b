package imagepkg

import "fmt"

// FitMode selects how a source bitmap is placed on a target surface.
type FitMode int

const (
	// FitCover scales the source until it covers the target and crops the overflow.
	FitCover FitMode = iota
	// FitContain scales the source until it fits inside the target and letterboxes the rest.
	// Sources wider than the target keep the full width; others keep the full height.
	FitContain
)

// ParseFitMode maps a request value to a FitMode. Unknown or empty values mean cover.
func ParseFitMode(s string) FitMode {
	if s == "contain" {
		return FitContain
	}
	return FitCover
}

func (m FitMode) String() string {
	if m == FitContain {
		return "contain"
	}
	return "cover"
}

// FitResult describes where a source bitmap lands on the target.
type FitResult struct {
	Scale      float64
	OffsetX    float64
	OffsetY    float64
	DrawWidth  float64
	DrawHeight float64
}

// Fit computes the placement of a sourceW x sourceH bitmap onto a targetW x targetH surface.
func Fit(sourceW, sourceH, targetW, targetH int, mode FitMode) (FitResult, error) {
	if sourceW <= 0 || sourceH <= 0 {
		return FitResult{}, fmt.Errorf("%w: source %dx%d", ErrInvalidImageDimensions, sourceW, sourceH)
	}
	if targetW <= 0 || targetH <= 0 {
		return FitResult{}, fmt.Errorf("%w: target %dx%d", ErrInvalidImageDimensions, targetW, targetH)
	}

	sw, sh := float64(sourceW), float64(sourceH)
	tw, th := float64(targetW), float64(targetH)

	if mode == FitContain {
		return containFit(sw, sh, tw, th), nil
	}

	scale := tw / sw
	if s := th / sh; s > scale {
		scale = s
	}
	res := FitResult{Scale: scale, DrawWidth: sw * scale, DrawHeight: sh * scale}
	// the axis that set the scale is exact; the other one overflows
	if scale == tw/sw {
		res.DrawWidth = tw
	} else {
		res.DrawHeight = th
	}
	res.OffsetX = (tw - res.DrawWidth) / 2
	res.OffsetY = (th - res.DrawHeight) / 2
	return res, nil
}

func containFit(sw, sh, tw, th float64) FitResult {
	sourceRatio := sw / sh
	targetRatio := tw / th

	if sourceRatio > targetRatio {
		// wider than the target: width is the binding axis
		drawH := tw / sourceRatio
		return FitResult{
			Scale:      tw / sw,
			DrawWidth:  tw,
			DrawHeight: drawH,
			OffsetY:    (th - drawH) / 2,
		}
	}
	drawW := th * sourceRatio
	return FitResult{
		Scale:      th / sh,
		DrawWidth:  drawW,
		DrawHeight: th,
		OffsetX:    (tw - drawW) / 2,
	}
}
