package imagepkg

import (
	"fmt"
	"image"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	minQRSize = 64
	maxQRSize = 2048
)

// GenerateQRPNG returns PNG bytes of a QR code for the given text.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	if err := checkQRSize(size); err != nil {
		return nil, err
	}
	b, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return b, nil
}

// GenerateQRImage returns an image.Image for further composition.
func GenerateQRImage(text string, size int) (image.Image, error) {
	if err := checkQRSize(size); err != nil {
		return nil, err
	}
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return q.Image(size), nil
}

func checkQRSize(size int) error {
	if size < minQRSize || size > maxQRSize {
		return fmt.Errorf("qr size %d out of range [%d, %d]", size, minQRSize, maxQRSize)
	}
	return nil
}
