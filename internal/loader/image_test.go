package loader

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/kestrelrender/go-pathtracer/internal/core"
)

func writeTestPNG(t *testing.T, path string) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255}) // top-left: white
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})     // top-right: red
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})     // bottom-left: green
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})     // bottom-right: blue

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test PNG: %v", err)
	}
}

func checkColour(t *testing.T, name string, got, want core.Colour) {
	t.Helper()
	const tolerance = 0.01
	if abs(got.X-want.X) > tolerance || abs(got.Y-want.Y) > tolerance || abs(got.Z-want.Z) > tolerance {
		t.Errorf("%s: want %v, got %v", name, want, got)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func TestLoadImageDecodesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.png")
	writeTestPNG(t, path)

	data, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if data.Width != 2 || data.Height != 2 {
		t.Fatalf("expected 2x2 image, got %dx%d", data.Width, data.Height)
	}
	if len(data.Pixels) != 4 {
		t.Fatalf("expected 4 pixels, got %d", len(data.Pixels))
	}

	checkColour(t, "top-left", data.Pixels[0], core.New(1, 1, 1))
	checkColour(t, "top-right", data.Pixels[1], core.New(1, 0, 0))
	checkColour(t, "bottom-left", data.Pixels[2], core.New(0, 1, 0))
	checkColour(t, "bottom-right", data.Pixels[3], core.New(0, 0, 1))
}

func TestLoadImageMissingFileReturnsError(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "nonexistent.png")); err == nil {
		t.Error("expected an error for a missing file, got nil")
	}
}

func TestLoadImageCorruptFileReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}
	if _, err := LoadImage(path); err == nil {
		t.Error("expected an error for a corrupt file, got nil")
	}
}

func TestLoadTextureSucceedsReturnsRealPixels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.png")
	writeTestPNG(t, path)

	tex := LoadTexture(path)
	got := tex.Value(0, 1, core.Point3{}) // u=0,v=1 samples the top-left pixel
	checkColour(t, "loaded top-left", got, core.New(1, 1, 1))
}

func TestLoadTextureFailureDegradesToDebugColour(t *testing.T) {
	tex := LoadTexture(filepath.Join(t.TempDir(), "missing.png"))
	got := tex.Value(0.5, 0.5, core.Point3{})
	checkColour(t, "debug texture", got, core.New(0, 1, 1))
}
