package imagepkg

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
)

func TestLoadFontOrDefault(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "Bold.ttf")
	if err := os.WriteFile(custom, gobold.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	broken := filepath.Join(dir, "broken.ttf")
	if err := os.WriteFile(broken, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		path         string
		wantFallback bool
		wantErr      bool
	}{
		{"file present", custom, false, false},
		{"file missing", filepath.Join(dir, "Montserrat-Bold.ttf"), true, false},
		{"no path", "", true, false},
		{"corrupt file", broken, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, fallback, err := LoadFontOrDefault(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadFontOrDefault() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if fallback != tt.wantFallback {
				t.Errorf("fallback = %v, want %v", fallback, tt.wantFallback)
			}
			if f == nil {
				t.Fatal("font is nil")
			}
		})
	}
}

func TestFaceMeasurer(t *testing.T) {
	m := NewFaceMeasurer(testFont(t))

	small := m.MeasureString("Headline", 24)
	large := m.MeasureString("Headline", 54)
	if small <= 0 || large <= small {
		t.Errorf("widths 24px=%.1f 54px=%.1f, want 0 < small < large", small, large)
	}
	if m.MeasureString("", 54) != 0 {
		t.Error("empty string should measure 0")
	}
	if a := m.Ascent(54); a <= 0 || a > 2*54 {
		t.Errorf("Ascent(54) = %.1f, want within (0, 108]", a)
	}
	if m.Face(30) != m.Face(30) {
		t.Error("faces should be cached per size")
	}
}
