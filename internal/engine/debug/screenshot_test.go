package debug

import (
	"image/png"
	"os"
	"testing"
)

func TestCaptureFromPixels(t *testing.T) {
	tmpDir := t.TempDir()
	sc := NewScreenshotCapture(tmpDir, "shot")

	const w, h = 4, 2
	pixels := make([]byte, w*h*4)
	// Bottom row red, top row blue, as OpenGL would hand it over.
	for x := 0; x < w; x++ {
		pixels[x*4] = 255   // bottom row R
		pixels[x*4+3] = 255 // bottom row A
		top := (h-1)*w*4 + x*4
		pixels[top+2] = 255 // top row B
		pixels[top+3] = 255 // top row A
	}

	path, err := sc.CaptureFromPixels(pixels, w, h)
	if err != nil {
		t.Fatalf("capture failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening screenshot: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding screenshot: %v", err)
	}

	if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
		t.Fatalf("screenshot is %v, want %dx%d", img.Bounds(), w, h)
	}

	// After the vertical flip the GL top row (blue) is image row 0.
	r, _, b, _ := img.At(0, 0).RGBA()
	if b>>8 != 255 || r>>8 != 0 {
		t.Errorf("row 0 should be blue after flip, got r=%d b=%d", r>>8, b>>8)
	}
	r, _, b, _ = img.At(0, h-1).RGBA()
	if r>>8 != 255 || b>>8 != 0 {
		t.Errorf("last row should be red after flip, got r=%d b=%d", r>>8, b>>8)
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "shot")

	if _, err := sc.CaptureFromPixels(make([]byte, 10), 4, 2); err == nil {
		t.Error("expected size mismatch error, got nil")
	}
}
