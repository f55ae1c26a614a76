// Package imageio writes a rendered core.IntensityBuffer out as a PNG
// file: the final encode step after filter/render has produced a
// gamma-corrected, [0,1]-clamped image.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"pathtracer/core"
)

// WritePNG quantizes buf to 8 bits per channel and encodes it as a
// PNG at path. buf is expected already gamma-corrected and clamped to
// [0,1]; WritePNG only scales and rounds.
func WritePNG(path string, buf *core.IntensityBuffer) error {
	img := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			c := buf.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: quantize(c.X),
				G: quantize(c.Y),
				B: quantize(c.Z),
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: creating %q: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("imageio: encoding %q: %w", path, err)
	}
	return nil
}

func quantize(v float32) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(v*255 + 0.5)
}
