package filter

import (
	"testing"

	"pathtracer/core"
	"pathtracer/math"
)

func TestLowPassOfAConstantBufferIsUnchanged(t *testing.T) {
	src := core.NewIntensityBuffer(4, 4)
	color := math.Vec3{X: 0.3, Y: 0.5, Z: 0.7}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color)
		}
	}
	dst := core.NewIntensityBuffer(4, 4)
	LowPass(src, dst)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			got := dst.At(x, y)
			if d := got.Sub(color).Length(); d > 1e-4 {
				t.Fatalf("pixel (%d,%d): expected %+v, got %+v", x, y, color, got)
			}
		}
	}
}

func TestLowPassSmoothsASingleSpike(t *testing.T) {
	src := core.NewIntensityBuffer(3, 3)
	dst := core.NewIntensityBuffer(3, 3)
	src.Set(1, 1, math.Vec3{X: 16, Y: 16, Z: 16})

	LowPass(src, dst)

	center := dst.At(1, 1)
	if diff := center.X - 4; diff < -1e-4 || diff > 1e-4 {
		t.Fatalf("expected the spike's center weight (4/16 of 16) to be 4, got %v", center.X)
	}
	corner := dst.At(0, 0)
	if diff := corner.X - 1; diff < -1e-4 || diff > 1e-4 {
		t.Fatalf("expected the spike's corner weight (1/16 of 16) to be 1, got %v", corner.X)
	}
}

func TestMedianRejectsASingleOutlier(t *testing.T) {
	src := core.NewIntensityBuffer(3, 3)
	dst := core.NewIntensityBuffer(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			src.Set(x, y, math.Vec3{X: 0.2, Y: 0.2, Z: 0.2})
		}
	}
	// A single bright outlier at the center must not survive the
	// median of its 3x3 neighborhood.
	src.Set(1, 1, math.Vec3{X: 100, Y: 100, Z: 100})

	Median(src, dst)

	center := dst.At(1, 1)
	if diff := center.X - 0.2; diff < -1e-4 || diff > 1e-4 {
		t.Fatalf("expected the outlier to be rejected by the median, got %v", center.X)
	}
}

func TestMedianOnEdgeClampsOutOfBoundsSamples(t *testing.T) {
	src := core.NewIntensityBuffer(2, 2)
	dst := core.NewIntensityBuffer(2, 2)
	src.Set(0, 0, math.Vec3{X: 1, Y: 1, Z: 1})
	src.Set(1, 0, math.Vec3{X: 2, Y: 2, Z: 2})
	src.Set(0, 1, math.Vec3{X: 3, Y: 3, Z: 3})
	src.Set(1, 1, math.Vec3{X: 4, Y: 4, Z: 4})

	// Must not panic reading neighbors outside the 2x2 buffer.
	Median(src, dst)
}
