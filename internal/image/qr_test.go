package imagepkg

import "testing"

func TestGenerateQRPNG(t *testing.T) {
	b, err := GenerateQRPNG("https://example.com", 256)
	if err != nil {
		t.Fatalf("GenerateQRPNG() failed: %v", err)
	}
	img := decodePNG(t, b)
	if s := img.Bounds(); s.Dx() != 256 || s.Dy() != 256 {
		t.Errorf("size = %dx%d, want 256x256", s.Dx(), s.Dy())
	}
}

func TestGenerateQR_SizeOutOfRange(t *testing.T) {
	for _, size := range []int{0, -1, 10, 5000} {
		if _, err := GenerateQRPNG("x", size); err == nil {
			t.Errorf("GenerateQRPNG(size=%d) expected error", size)
		}
		if _, err := GenerateQRImage("x", size); err == nil {
			t.Errorf("GenerateQRImage(size=%d) expected error", size)
		}
	}
}
