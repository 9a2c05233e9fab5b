package imagepkg

import "errors"

var (
	// ErrBackgroundDecode is returned when the background payload is empty,
	// corrupt or in a format no registered decoder understands.
	ErrBackgroundDecode = errors.New("background decode failed")

	// ErrInvalidImageDimensions guards the fit math against zero or negative sizes.
	ErrInvalidImageDimensions = errors.New("invalid image dimensions")

	// ErrTextDoesNotFit is non-fatal: the layout is still returned at the minimum font size.
	ErrTextDoesNotFit = errors.New("text does not fit")

	// ErrAssetMissing is non-fatal for the logo; the step is skipped.
	ErrAssetMissing = errors.New("asset missing")
)
