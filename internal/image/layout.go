package imagepkg

import (
	"fmt"
	"strings"
)

const (
	DefaultStartFontPx   = 54
	DefaultMinFontPx     = 24
	DefaultFontStepPx    = 2
	DefaultLineSpacingPx = 2
)

// LayoutOptions bounds the title block and the font sizes tried.
type LayoutOptions struct {
	MaxWidth      float64
	MaxHeight     float64
	StartFontPx   int
	MinFontPx     int
	StepPx        int
	LineSpacingPx int
}

// DefaultLayoutOptions returns the 54px..24px, 2px step, 2px spacing sizing.
func DefaultLayoutOptions(maxWidth, maxHeight float64) LayoutOptions {
	return LayoutOptions{
		MaxWidth:      maxWidth,
		MaxHeight:     maxHeight,
		StartFontPx:   DefaultStartFontPx,
		MinFontPx:     DefaultMinFontPx,
		StepPx:        DefaultFontStepPx,
		LineSpacingPx: DefaultLineSpacingPx,
	}
}

// TextBlock is a wrapped title ready to be drawn.
type TextBlock struct {
	FontSizePx   int
	Lines        []string
	LineHeightPx int
}

// Height is the vertical space the block occupies.
func (b TextBlock) Height() int {
	return len(b.Lines) * b.LineHeightPx
}

// Layout wraps text greedily and shrinks the font until the block fits
// opts.MaxHeight. When even the minimum size overflows, the minimum size block
// is returned together with ErrTextDoesNotFit.
func Layout(m Measurer, text string, opts LayoutOptions) (TextBlock, error) {
	step := opts.StepPx
	if step <= 0 {
		step = 1
	}
	minSize := opts.MinFontPx
	if minSize > opts.StartFontPx {
		minSize = opts.StartFontPx
	}

	words := strings.Fields(text)
	size := opts.StartFontPx
	for {
		block := TextBlock{
			FontSizePx:   size,
			Lines:        wrapWords(m, words, float64(size), opts.MaxWidth),
			LineHeightPx: size + opts.LineSpacingPx,
		}
		if float64(block.Height()) <= opts.MaxHeight {
			return block, nil
		}
		if size <= minSize {
			return block, fmt.Errorf("%w: %d lines at %dpx need %dpx, have %.0fpx",
				ErrTextDoesNotFit, len(block.Lines), size, block.Height(), opts.MaxHeight)
		}
		size -= step
		if size < minSize {
			size = minSize
		}
	}
}

// wrapWords fills each line with as many words as fit. Candidates are measured
// with a trailing space; a line that already holds a word is closed when the
// next word would push it strictly past maxWidth. A lone word wider than
// maxWidth stays on its own line.
func wrapWords(m Measurer, words []string, sizePx, maxWidth float64) []string {
	var lines []string
	line := ""
	count := 0
	for _, word := range words {
		candidate := line + word + " "
		if count > 0 && m.MeasureString(candidate, sizePx) > maxWidth {
			lines = append(lines, strings.TrimSpace(line))
			line = word + " "
			count = 1
			continue
		}
		line = candidate
		count++
	}
	return append(lines, strings.TrimSpace(line))
}
