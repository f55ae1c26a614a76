// Package textures implements the image-backed materials.Texture: a
// decoded PNG sampled by UV, tinted by a constant color multiplier.
package textures

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"pathtracer/math"
)

// ImageTexture samples a decoded image by UV with nearest-neighbor
// lookup and scales the result by Tint (the r g b triple every
// image-backed texture literal carries alongside its filename).
type ImageTexture struct {
	img  image.Image
	Tint math.Vec3
}

// LoadImageTexture decodes the PNG at path and returns a texture that
// multiplies every sampled pixel by tint.
func LoadImageTexture(path string, tint math.Vec3) (*ImageTexture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("textures: opening %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("textures: decoding %q: %w", path, err)
	}
	return &ImageTexture{img: img, Tint: tint}, nil
}

// Value samples the image at uv (u, v each expected in [0,1], v
// measured from the bottom as the original texture convention does)
// and returns the tinted color. Out-of-range coordinates are clamped
// rather than wrapped, matching the original's nearest-sample lookup.
func (t *ImageTexture) Value(uv math.Vec2, _ math.Vec3) math.Vec3 {
	bounds := t.img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return math.Vec3Zero
	}

	x := clampInt(int(uv.X*float32(w)), 0, w-1)
	y := clampInt(int((1-uv.Y)*float32(h)), 0, h-1)

	r, g, b, _ := t.img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
	const maxVal = float32(0xffff)
	color := math.Vec3{X: float32(r) / maxVal, Y: float32(g) / maxVal, Z: float32(b) / maxVal}
	return color.MulVec(t.Tint)
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
