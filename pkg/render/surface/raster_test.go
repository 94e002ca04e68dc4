package surface

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/nhansendev/drawnet/pkg/errors"
)

func TestNewRasterDefaultFont(t *testing.T) {
	r, err := NewRaster(RasterSpec{})
	if err != nil {
		t.Fatalf("NewRaster() with the embedded font should not fail: %v", err)
	}
	if r.scale != DefaultScale {
		t.Errorf("scale = %g, want default %g", r.scale, DefaultScale)
	}
}

func TestNewRasterUnknownFont(t *testing.T) {
	_, err := NewRaster(RasterSpec{Font: "definitely-not-a-real-font-name.ttf"})
	if !errors.Is(err, errors.ErrCodeFontNotFound) {
		t.Errorf("unknown font should fail with FONT_NOT_FOUND, got %v", err)
	}
}

func TestRasterDraw(t *testing.T) {
	r, err := NewRaster(RasterSpec{Scale: 2})
	if err != nil {
		t.Fatalf("NewRaster() error = %v", err)
	}
	if err := r.Draw(testFrame()); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	img := r.Image()
	if img == nil {
		t.Fatal("Image() should be available after Draw")
	}
	// Content is 100x50 plus default margins, doubled by the scale.
	b := img.Bounds()
	if b.Dx() < 200 || b.Dy() < 100 {
		t.Errorf("image size = %dx%d, smaller than the scaled content", b.Dx(), b.Dy())
	}
}

func TestRasterWriteToProducesPNG(t *testing.T) {
	r, err := NewRaster(RasterSpec{})
	if err != nil {
		t.Fatalf("NewRaster() error = %v", err)
	}
	if err := r.Draw(testFrame()); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	var buf bytes.Buffer
	if _, err := r.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("output should be a decodable PNG: %v", err)
	}
}

func TestRasterBeforeDraw(t *testing.T) {
	r, err := NewRaster(RasterSpec{})
	if err != nil {
		t.Fatalf("NewRaster() error = %v", err)
	}
	if r.Image() != nil {
		t.Error("Image before Draw should be nil")
	}
	if _, err := r.WriteTo(&bytes.Buffer{}); err == nil {
		t.Error("WriteTo before Draw should fail")
	}
}
