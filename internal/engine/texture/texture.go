// Package texture handles texture loading, the procedural fallback, and
// GL upload.
package texture

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"unsafe"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Patryk0329/DayNightSimulation/internal/logger"
)

// PlaceholderSize is the side length of the generated fallback texture.
const PlaceholderSize = 64

// LoadRGBA reads and decodes an image file into RGBA pixels.
func LoadRGBA(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return ImageToRGBA(img), nil
}

// LoadOrPlaceholder loads the texture at path, falling back to the
// deterministic placeholder if the file is missing or fails to decode.
// The miss is a warning, never a failure.
func LoadOrPlaceholder(path string) *image.RGBA {
	img, err := LoadRGBA(path)
	if err != nil {
		logger.Warn("texture unavailable, using generated placeholder",
			zap.String("path", path),
			zap.Error(err),
		)
		return Placeholder()
	}
	return img
}

// Placeholder generates the deterministic grass substitute: a solid
// green base with a fixed-seed perlin shade so the terrain still reads
// as ground rather than a flat fill.
func Placeholder() *image.RGBA {
	noise := perlin.NewPerlin(2, 2, 2, 1)
	img := image.NewRGBA(image.Rect(0, 0, PlaceholderSize, PlaceholderSize))

	for y := 0; y < PlaceholderSize; y++ {
		for x := 0; x < PlaceholderSize; x++ {
			n := noise.Noise2D(float64(x)/PlaceholderSize*4, float64(y)/PlaceholderSize*4)
			shade := uint8(25 * (n + 1)) // 0..50
			img.SetRGBA(x, y, color.RGBA{
				R: 60 + shade/2,
				G: 140 + shade,
				B: 60,
				A: 255,
			})
		}
	}

	return img
}

// ImageToRGBA converts any image.Image to *image.RGBA.
func ImageToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			rgba.SetRGBA(x, y, color.RGBA{
				R: uint8(r16 >> 8),
				G: uint8(g16 >> 8),
				B: uint8(b16 >> 8),
				A: uint8(a16 >> 8),
			})
		}
	}

	return rgba
}

// Upload creates a GL texture from RGBA pixels with mipmaps and
// repeat wrapping.
func Upload(img *image.RGBA) uint32 {
	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))

	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)

	return texID
}
